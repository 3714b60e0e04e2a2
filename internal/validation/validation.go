// Package validation configures gin's request binding once for every input
// struct: unknown JSON fields are rejected, field names are reported by their
// JSON name, and validator messages are translated per request language.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"board-api/internal/apperror"
	"board-api/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ko"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Translator struct {
	uni *ut.UniversalTranslator
}

var (
	setupOnce  sync.Once
	translator *Translator
	setupErr   error
)

// Setup installs the binding configuration. It is safe to call more than once.
func Setup() (*Translator, error) {
	setupOnce.Do(func() {
		translator, setupErr = setup()
	})
	return translator, setupErr
}

func setup() (*Translator, error) {
	binding.EnableDecoderDisallowUnknownFields = true

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("gin validator engine is not go-playground/validator")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, ko.New())

	enTrans, _ := uni.GetTranslator(i18n.EN)
	if err := en_translations.RegisterDefaultTranslations(v, enTrans); err != nil {
		return nil, fmt.Errorf("register en translations: %w", err)
	}

	koTrans, _ := uni.GetTranslator(i18n.KO)
	if err := registerKorean(v, koTrans); err != nil {
		return nil, fmt.Errorf("register ko translations: %w", err)
	}

	return &Translator{uni: uni}, nil
}

var koreanMessages = []struct {
	tag       string
	text      string
	withParam bool
}{
	{tag: "required", text: "{0} 항목은 필수입니다"},
	{tag: "min", text: "{0} 항목은 최소 {1}자 이상이어야 합니다", withParam: true},
	{tag: "max", text: "{0} 항목은 최대 {1}자까지 입력할 수 있습니다", withParam: true},
	{tag: "uuid", text: "{0} 항목은 올바른 UUID 형식이어야 합니다"},
	{tag: "gte", text: "{0} 항목은 {1} 이상이어야 합니다", withParam: true},
}

func registerKorean(v *validator.Validate, trans ut.Translator) error {
	for _, m := range koreanMessages {
		m := m
		err := v.RegisterTranslation(m.tag, trans,
			func(t ut.Translator) error {
				return t.Add(m.tag, m.text, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				params := []string{fe.Field()}
				if m.withParam {
					params = append(params, fe.Param())
				}
				msg, err := t.T(m.tag, params...)
				if err != nil {
					return fe.Error()
				}
				return msg
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Translate renders validation failures in lang, keeping the field order.
func (t *Translator) Translate(errs validator.ValidationErrors, lang string) []FieldError {
	trans, found := t.uni.GetTranslator(lang)
	if !found {
		trans, _ = t.uni.GetTranslator(i18n.EN)
	}
	out := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, FieldError{Field: fe.Field(), Message: fe.Translate(trans)})
	}
	return out
}

func BindJSON(c *gin.Context, obj any) error {
	return classify(c.ShouldBindJSON(obj))
}

func BindQuery(c *gin.Context, obj any) error {
	return classify(c.ShouldBindQuery(obj))
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.Wrap(apperror.KindBadRequest, apperror.MsgValidationFailed, verrs)
	}
	return apperror.Wrap(apperror.KindBadRequest, apperror.MsgInvalidRequestBody, err)
}
