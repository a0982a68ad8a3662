// Package validator validates Brazilian personal data fields (CPF, phone
// numbers, passwords) and provides a small set of composable rules for
// generic form fields.
//
// Two styles of API are offered. The value functions (ValidateCPF,
// FormatCPF, ValidatePhone, FormatPhone, PhoneE164) normalize or render a
// single value and return a *ValueError on failure. The Rule constructors
// (ValidCPF, ValidBRPhone, ComplexPassword, RequiredString, ValidEmail and
// friends) wrap the same checks with field metadata so that several fields
// can be validated in one Apply call.
//
// # Errors
//
// A *ValueError unwraps to ErrInvalidLength or ErrInvalidValue:
//
//	digits, err := validator.ValidateCPF("111.444.777-35")
//	if errors.Is(err, validator.ErrInvalidLength) {
//	    // wrong number of digits
//	}
//
// Apply and ApplyFirst return ValidationErrors, a slice of ValidationError
// values carrying a stable Code, a default Portuguese Message and a
// TranslationKey for i18n lookups. Every ValidationErrors value matches
// ErrValidationFailed with errors.Is.
//
//	err := validator.Apply(
//	    validator.RequiredString("name", form.Name),
//	    validator.ValidEmail("email", form.Email),
//	    validator.ValidCPF("cpf", form.CPF),
//	    validator.ValidBRPhone("phone", form.Phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.Field, e.Code)
//	    }
//	}
//
// # Passwords
//
// ComplexPasswordValidator checks for an uppercase letter, a lowercase
// letter, a digit and a symbol, in that order, and reports only the first
// unmet requirement. PasswordPolicy chains several PasswordValidator
// implementations and reports every failure; DefaultPasswordPolicy adds
// user attribute similarity, a minimum length of 8, the common password
// list and the all-numeric check in front of the complexity check.
//
// # Struct tags
//
// StructValidator wraps go-playground/validator and registers the cpf,
// br_phone and complex_password tags. Field errors are converted into
// ValidationErrors named after the JSON field.
//
// All functions are stateless and safe for concurrent use.
package validator
