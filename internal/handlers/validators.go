package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
)

// RegisterCustomValidators installs the request validation tags used by the
// DTOs on gin's binding engine. Call once at startup before routes are served.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("supportedcurrency", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case domain.CurrencyUSD, domain.CurrencyINR:
			return true
		}
		return false
	})
}
