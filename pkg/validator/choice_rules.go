package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           "invalid_choice",
			Message:        fmt.Sprintf("Selecione uma opção válida: %s.", strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": strings.Join(allowedValues, ", "),
			},
		},
	}
}

// OneOf is InListString for typed string enums.
func OneOf[T ~string](field string, value T, options []T) Rule {
	allowed := make([]string, 0, len(options))
	for _, o := range options {
		allowed = append(allowed, string(o))
	}
	return InListString(field, string(value), allowed)
}
