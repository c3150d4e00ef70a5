// Package validate holds the shared struct validator with english messages
// and the custom tags used by the exercises.
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags
	notBlankTag = "notblank"
	noDelimTag  = "nodelim"
)

// Delimiters are the characters reserved by the line-oriented save files.
const Delimiters = ",:"

func init() {
	Validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use yaml tag names in messages when present.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = Validate.RegisterValidation(noDelimTag, noDelimValidation)

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, noDelimTag} {
		_ = Validate.RegisterTranslation(tag, Translator, registerFn, translateCustomErrs)
	}
}

func translateCustomErrs(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case noDelimTag:
		return fe.Field() + " cannot contain ',' or ':'"
	default:
		return fe.Field() + " is invalid"
	}
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func noDelimValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return !strings.ContainsAny(str, Delimiters)
	}
	return false
}

// Error carries one translated message per failed field.
type Error struct {
	Fields   []string
	Messages []string
}

func (e *Error) Error() string { return strings.Join(e.Messages, "; ") }

// Struct validates v and translates field errors into an *Error.
func Struct(v interface{}) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, fe.Namespace())
		out.Messages = append(out.Messages, fe.Translate(Translator))
	}
	return out
}
