package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
)

const (
	clockTag = "clock"
	phoneTag = "phone"
)

var (
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}[0-9]$`)
)

// Validator wraps go-playground/validator with English messages that use JSON field names.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator builds the shared validator.
func NewValidator() *Validator {
	validate := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// lenient scalars validate as their primitive values
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch v := field.Interface().(type) {
		case models.Money:
			return v.InexactFloat64()
		case models.Date:
			return v.String()
		}
		return nil
	}, models.Money{}, models.Date{})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return float64(field.Interface().(models.Number))
	}, models.Number(0))
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return int64(field.Interface().(models.Int))
	}, models.Int(0))

	_ = validate.RegisterValidation(clockTag, func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation(phoneTag, func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	registerFn := func(ut.Translator) error { return nil }
	_ = validate.RegisterTranslation(clockTag, translator, registerFn, translateCustom)
	_ = validate.RegisterTranslation(phoneTag, translator, registerFn, translateCustom)

	return &Validator{validate: validate, translator: translator}
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case clockTag:
		return fe.Field() + " must be a time in HH:MM format"
	case phoneTag:
		return fe.Field() + " must be a valid phone number"
	}
	return fe.Field() + " is invalid"
}

// Check runs tag validation and the record's own Validate hook, returning a ValidationError naming the first failure.
func (v *Validator) Check(rec interface{}) error {
	if err := v.validate.Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return appErrors.Clone(appErrors.ErrValidation, fieldErrs[0].Translate(v.translator))
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if checker, ok := rec.(interface{ Validate() error }); ok {
		if err := checker.Validate(); err != nil {
			return appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
	}
	return nil
}

// CanonicalID returns the lowercase canonical form of a UUID or an InvalidIdError.
func CanonicalID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", appErrors.Clone(appErrors.ErrInvalidID, "invalid identifier: "+raw)
	}
	return id.String(), nil
}

// trimStrings trims every string reachable from v, which must be a pointer.
func trimStrings(v interface{}) {
	trimValue(reflect.ValueOf(v))
}

func trimValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			trimValue(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				trimValue(v.Field(i))
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			trimValue(v.Index(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(strings.TrimSpace(v.String()))
		}
	}
}
