package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors turns validator failures into a field -> message
// map suitable for the error envelope.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " é obrigatório"
			case "email":
				errors[field] = field + " deve ser um endereço de email válido"
			case "min":
				errors[field] = field + " deve ter pelo menos " + e.Param() + " caracteres"
			case "max":
				errors[field] = field + " deve ter no máximo " + e.Param() + " caracteres"
			case "len":
				errors[field] = field + " deve ter exatamente " + e.Param() + " caracteres"
			case "numeric":
				errors[field] = field + " deve conter apenas dígitos"
			case "oneof":
				errors[field] = field + " deve ser um de: " + e.Param()
			case "uuid":
				errors[field] = field + " deve ser um UUID válido"
			case "gte":
				errors[field] = field + " deve ser maior ou igual a " + e.Param()
			case "lte":
				errors[field] = field + " deve ser menor ou igual a " + e.Param()
			default:
				errors[field] = field + " é inválido"
			}
		}
	}

	return errors
}
