package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func New(locale string) (*Validator, error) {
	translator := en.New()
	uni := ut.New(translator, translator)

	trans, found := uni.GetTranslator(locale)
	if !found {
		return nil, fmt.Errorf("%s translator not found", locale)
	}

	v := validator.New()

	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v, trans: trans}, nil
}

// Struct validates s and returns the translated field messages joined in
// field order, or nil.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := ExtractErrorMap(v.trans, verrs)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Var validates a single value against tag, reporting it under name.
func (v *Validator) Var(name string, value any, tag string) error {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return fmt.Errorf("%s%s", name, strings.TrimPrefix(verrs[0].Translate(v.trans), verrs[0].Field()))
}

func ExtractErrorMap(trans ut.Translator, verrs validator.ValidationErrors) map[string]string {
	res := make(map[string]string)

	for _, e := range verrs {
		res[e.Field()] = e.Translate(trans)
	}

	return res
}
