package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"board-api/internal/apperror"
	"board-api/internal/response"
	"board-api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorHandler is the single boundary that turns errors pushed with c.Error
// (and panics raised by handlers) into the JSON error body. Handlers never
// render errors themselves.
func ErrorHandler(logger *zap.Logger, translator *validation.Translator, exposeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				if c.Writer.Written() {
					logger.Error("Panic after response was written", zap.Any("panic", rec))
					c.Abort()
					return
				}
				renderError(c, logger, translator, exposeStack, apperror.Internal(fmt.Errorf("panic: %v", rec)))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		renderError(c, logger, translator, exposeStack, c.Errors.Last().Err)
	}
}

func renderError(c *gin.Context, logger *zap.Logger, translator *validation.Translator, exposeStack bool, err error) {
	lang := Language(c)
	appErr := apperror.As(err)
	status := appErr.Kind.Status()
	message := appErr.Message.Localize(lang)

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		body := response.ServerErrorBody{StatusCode: status, Message: message}
		if exposeStack {
			body.Stack = appErr.Stack
		}
		c.AbortWithStatusJSON(status, body)
		return
	}

	logger.Debug("Request rejected",
		zap.String("path", c.Request.URL.Path),
		zap.String("kind", appErr.Kind.String()),
		zap.String("error_code", appErr.Code()),
		zap.Error(err),
	)

	data := appErr.Data
	var verrs validator.ValidationErrors
	if translator != nil && errors.As(appErr, &verrs) {
		data = translator.Translate(verrs, lang)
	}

	c.AbortWithStatusJSON(status, response.ErrorBody{
		StatusCode: status,
		ErrorCode:  appErr.Code(),
		Message:    message,
		Data:       data,
		Error:      http.StatusText(status),
	})
}
