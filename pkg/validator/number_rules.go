package validator

import "fmt"

// MinInt validates that value is at least min.
func MinInt(field string, value, min int) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: ValidationError{
			Field:          field,
			Code:           "min_value",
			Message:        fmt.Sprintf("Certifique-se de que este valor seja maior ou igual a %d.", min),
			TranslationKey: "validation.min_value",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
