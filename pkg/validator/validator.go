package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct valida las etiquetas `validate` de un DTO y devuelve todas las
// violaciones encontradas (nunca solo la primera), legibles para el operador.
func ValidateStruct(data interface{}) []string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	for _, fe := range errs {
		out = append(out, describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es requerido", fe.Field())
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("el campo %s debe ser al menos %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("el campo %s debe ser a lo más %s", fe.Field(), fe.Param())
	case "uuid4":
		return fmt.Sprintf("el campo %s debe ser un UUID válido", fe.Field())
	default:
		return fmt.Sprintf("el campo %s no cumple la regla %s", fe.Field(), fe.Tag())
	}
}
