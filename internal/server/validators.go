package server

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"b2fy-web/internal/handlers"
)

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("datafechamento", validDataFechamento)
	}
}

// validDataFechamento enforces the minimum closing-date lead time before the
// request ever reaches the backend. ISO dates compare lexicographically.
func validDataFechamento(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return false
	}
	min := time.Now().AddDate(0, 0, handlers.MinDiasFechamento).Format("2006-01-02")
	return value >= min
}
