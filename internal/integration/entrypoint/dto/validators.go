// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
)

// RegisterValidators adds the domain validation tags to gin's binding engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("direction", validateDirection); err != nil {
		return fmt.Errorf("failed to register direction validator: %w", err)
	}
	if err := v.RegisterValidation("category_kind", validateCategoryKind); err != nil {
		return fmt.Errorf("failed to register category_kind validator: %w", err)
	}
	return nil
}

func validateDirection(fl validator.FieldLevel) bool {
	return entity.Direction(fl.Field().String()).IsValid()
}

func validateCategoryKind(fl validator.FieldLevel) bool {
	return entity.CategoryKind(fl.Field().String()).IsValid()
}
