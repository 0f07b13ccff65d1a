// Package validation checks request and entity structs against their
// `validate` tags and turns failures into human-readable messages.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"course_backend/internal/shared/apperr"
)

// Validator wraps a go-playground validator with English translations.
// Field names in messages are taken from the json tag.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator. It panics only if the bundled translations fail to register.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(fmt.Sprintf("validation: register translations: %v", err))
	}
	return &Validator{validate: v, trans: trans}
}

// Struct validates s. Rule violations come back as a KindValidation
// apperr.Error with one message per failing field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(v.trans))
	}
	return apperr.New(apperr.KindValidation, msgs...)
}

var defaultValidator = sync.OnceValue(New)

// Struct validates s with the shared Validator.
func Struct(s any) error {
	return defaultValidator().Struct(s)
}

// IgnoreEmptyBody treats a request without a body as an empty JSON object,
// so field rules report every missing field instead of a single decode error.
func IgnoreEmptyBody(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// FromBindError converts a JSON decoding failure into a KindValidation error.
func FromBindError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperr.Wrap(apperr.KindValidation, err, "request body is not valid JSON")
	case errors.As(err, &typeErr):
		return apperr.Wrap(apperr.KindValidation, err, fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type))
	}
	return apperr.Wrap(apperr.KindValidation, err, "request body is invalid")
}
