// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"outreach_backend/platform/contact"
)

// Validator wraps the go-playground validator for structured validation.
// Using a struct allows for dependency injection and easier testing.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance with the domain rules registered.
func New() *Validator {
	val := &Validator{v: validator.New()}
	registerDomainRules(val.v)
	return val
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

// RegisterGinBindings installs the domain rules on gin's binding engine so
// they can be used as binding tags in transport DTOs.
func RegisterGinBindings() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerDomainRules(v)
	}
}

func registerDomainRules(v *validator.Validate) {
	v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		_, ok := contact.CleanZip(fl.Field().String())
		return ok
	})
}
