package validator

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nyaruka/phonenumbers"
	"google.golang.org/protobuf/proto"
)

const (
	brazilCountryCode = 55

	minDDD = 11
	maxDDD = 99

	CodePhoneInvalidLength = "phone_invalid_length"
	CodePhoneInvalidDDD    = "phone_invalid_ddd"
)

// PhoneKind tells mobile numbers (11 digits, nine-digit subscriber) from
// landlines (10 digits).
type PhoneKind string

const (
	PhoneKindUnknown  PhoneKind = "unknown"
	PhoneKindMobile   PhoneKind = "mobile"
	PhoneKindLandline PhoneKind = "landline"
)

// ValidatePhone validates a Brazilian phone number (area code plus subscriber)
// and returns its digits. Punctuation and spaces are ignored.
func ValidatePhone(phone string) (string, error) {
	digits := onlyDigits(phone)

	if len(digits) != 10 && len(digits) != 11 {
		return "", newLengthError(CodePhoneInvalidLength, "Telefone deve conter 10 ou 11 dígitos.", "validation.phone_length")
	}

	ddd, _ := strconv.Atoi(digits[:2])
	if ddd < minDDD || ddd > maxDDD {
		return "", newInvalidValueError(CodePhoneInvalidDDD, "DDD inválido.", "validation.phone_ddd")
	}

	return digits, nil
}

// FormatPhone validates the number and renders it as (DD) XXXXX-XXXX for
// mobiles or (DD) XXXX-XXXX for landlines.
func FormatPhone(phone string) (string, error) {
	digits, err := ValidatePhone(phone)
	if err != nil {
		return "", err
	}

	if len(digits) == 11 {
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:]), nil
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:]), nil
}

// PhoneE164 validates the number and renders it in E.164 form, e.g. +5511999887766.
func PhoneE164(phone string) (string, error) {
	digits, err := ValidatePhone(phone)
	if err != nil {
		return "", err
	}

	// Built from the digits directly: parsing with BR metadata strips a
	// leading 90 as a carrier prefix, which is also a valid area code.
	national, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return "", errors.Join(ErrInvalidFormat, err)
	}
	num := &phonenumbers.PhoneNumber{
		CountryCode:    proto.Int32(brazilCountryCode),
		NationalNumber: proto.Uint64(national),
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// PhoneKindOf reports whether phone is a mobile or a landline number.
// Invalid numbers yield PhoneKindUnknown.
func PhoneKindOf(phone string) PhoneKind {
	digits, err := ValidatePhone(phone)
	if err != nil {
		return PhoneKindUnknown
	}
	if len(digits) == 11 {
		return PhoneKindMobile
	}
	return PhoneKindLandline
}

// ValidBRPhone validates that value is a Brazilian phone number with a valid area code.
func ValidBRPhone(field, value string) Rule {
	_, err := ValidatePhone(value)

	rule := Rule{
		Check: func() bool { return err == nil },
		Error: ValidationError{
			Field:          field,
			Code:           CodePhoneInvalidLength,
			Message:        "Telefone deve conter 10 ou 11 dígitos.",
			TranslationKey: "validation.phone_length",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}

	var verr *ValueError
	if errors.As(err, &verr) {
		rule.Error = verr.ToValidationError(field)
	}
	return rule
}
