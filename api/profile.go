package api

import (
	"context"
	"log/slog"

	"github.com/armoredgo/armored/pkg/logger"
	"github.com/armoredgo/armored/pkg/sanitizer"
	"github.com/armoredgo/armored/pkg/validator"
)

// ProfileType is the role a user profile is registered with.
type ProfileType string

const (
	ProfileTypeAdmin     ProfileType = "admin"
	ProfileTypeDeveloper ProfileType = "developer"
	ProfileTypeUser      ProfileType = "user"
)

// ProfileTypes lists the accepted profile types.
var ProfileTypes = []ProfileType{ProfileTypeAdmin, ProfileTypeDeveloper, ProfileTypeUser}

type profileRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=150"`
	LastName    string `json:"last_name" validate:"max=150"`
	Username    string `json:"username" validate:"required,max=150"`
	Email       string `json:"email" validate:"required,email"`
	CPF         string `json:"cpf" validate:"required,cpf"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,br_phone"`
	ProfileType string `json:"profile_type" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type profileResponse struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	CPF              string `json:"cpf"`
	CPFFormatted     string `json:"cpf_formatted"`
	Phone            string `json:"phone,omitempty"`
	PhoneFormatted   string `json:"phone_formatted,omitempty"`
	PhoneE164        string `json:"phone_e164,omitempty"`
	ProfileType      string `json:"profile_type"`
	ProfileTypeLabel string `json:"profile_type_label"`
}

// cleanName drops control sequences and markup from names before the
// whitespace cleanup.
var cleanName = sanitizer.Compose(
	sanitizer.RemoveNullBytes,
	sanitizer.RemoveControlSequences,
	sanitizer.StripHTML,
	sanitizer.Limit(0),
)

// normalize cleans the free-form fields before validation.
func (p profileRequest) normalize() profileRequest {
	p.FirstName = cleanName(p.FirstName)
	p.LastName = cleanName(p.LastName)
	p.Username = cleanName(p.Username)
	p.Email = sanitizer.NormalizeEmail(p.Email)
	p.CPF = sanitizer.Trim(p.CPF)
	p.Phone = sanitizer.Trim(p.Phone)
	p.ProfileType = sanitizer.TrimToLower(p.ProfileType)
	return p
}

// validateProfile sanitizes the profile, validates it field by field and
// checks the password against the policy with the profile as user context.
// Every failure is reported together.
func (s *Service) validateProfile(ctx context.Context, req profileRequest) Response {
	p := req.normalize()

	var errs validator.ValidationErrors
	if err := s.structs.Struct(p); err != nil {
		verrs := validator.ExtractValidationErrors(err)
		if verrs == nil {
			return Fail(err)
		}
		errs = append(errs, verrs...)
	}

	if p.ProfileType != "" {
		if err := validator.Apply(validator.OneOf("profile_type", ProfileType(p.ProfileType), ProfileTypes)); err != nil {
			errs = append(errs, validator.ExtractValidationErrors(err)...)
		}
	}

	if p.Password != "" {
		user := &validator.PasswordUser{
			Username:  p.Username,
			Email:     p.Email,
			FirstName: p.FirstName,
			LastName:  p.LastName,
		}
		errs = append(errs, validator.ExtractValidationErrors(s.policy.Validate(p.Password, user))...)
	}

	if !errs.IsEmpty() {
		return Fail(errs)
	}

	resp := profileResponse{
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Username:         p.Username,
		Email:            p.Email,
		ProfileType:      p.ProfileType,
		ProfileTypeLabel: s.tr.Tc(ctx, "profile_type."+p.ProfileType),
	}

	var err error
	if resp.CPF, err = validator.ValidateCPF(p.CPF); err != nil {
		return Fail(fieldError("cpf", err))
	}
	if resp.CPFFormatted, err = validator.FormatCPF(resp.CPF); err != nil {
		return Fail(fieldError("cpf", err))
	}

	if p.Phone != "" {
		if resp.Phone, err = validator.ValidatePhone(p.Phone); err != nil {
			return Fail(fieldError("phone", err))
		}
		if resp.PhoneFormatted, err = validator.FormatPhone(resp.Phone); err != nil {
			return Fail(fieldError("phone", err))
		}
		if resp.PhoneE164, err = validator.PhoneE164(resp.Phone); err != nil {
			return Fail(fieldError("phone", err))
		}
	}

	attrs := []slog.Attr{
		logger.Component("api"),
		slog.String("email", sanitizer.MaskEmail(resp.Email)),
		slog.String("cpf", sanitizer.MaskCPF(resp.CPF)),
	}
	if resp.Phone != "" {
		attrs = append(attrs, slog.String("phone", sanitizer.MaskPhone(resp.Phone)))
	}
	s.log.LogAttrs(ctx, slog.LevelDebug, "profile validated", attrs...)

	return JSON(resp)
}
