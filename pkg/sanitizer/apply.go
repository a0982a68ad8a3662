package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable pipeline out of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Limit adapts SanitizeString to the single-argument shape used by Apply and Compose.
func Limit(maxLength int) func(string) string {
	return func(s string) string {
		return SanitizeString(s, maxLength)
	}
}
