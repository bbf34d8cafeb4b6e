package config

import (
	"fmt"
	"os/exec"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("command", isCommandAvailable); err != nil {
		return nil, nil, fmt.Errorf("failed to register command validation: %w", err)
	}
	if err := validate.RegisterTranslation("command", trans, func(ut ut.Translator) error {
		return ut.Add("command", "{0} must name an executable available in PATH", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("command", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register command translation: %w", err)
	}

	return validate, trans, nil
}

func isCommandAvailable(fl validator.FieldLevel) bool {
	command := fl.Field().String()
	if command == "" {
		return false
	}

	_, err := exec.LookPath(command)
	return err == nil
}
