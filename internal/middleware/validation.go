package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/akademik/internal/app/identifier"
	"github.com/yigit/akademik/internal/pkg/validation"
)

// RegisterValidators adds the custom binding tags to gin's validator engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	if err := validation.Register(v); err != nil {
		return err
	}
	return v.RegisterValidation("studentid", func(fl validator.FieldLevel) bool {
		return identifier.ValidateFormat(fl.Field().String())
	})
}
