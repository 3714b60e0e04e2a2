package middleware

import (
	"board-api/internal/i18n"

	"github.com/gin-gonic/gin"
)

const languageKey = "language"

// LanguageMiddleware resolves the response language once per request from
// Accept-Language.
func LanguageMiddleware(negotiator *i18n.Negotiator) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := negotiator.Negotiate(c.GetHeader("Accept-Language"))
		c.Set(languageKey, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

func Language(c *gin.Context) string {
	if lang := c.GetString(languageKey); lang != "" {
		return lang
	}
	return i18n.KO
}
