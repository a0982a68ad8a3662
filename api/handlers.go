package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/armoredgo/armored/pkg/sanitizer"
	"github.com/armoredgo/armored/pkg/validator"
)

// Password policies selectable by clients.
const (
	PolicyDefault = "default"
	PolicyComplex = "complex"
)

var policies = []string{PolicyDefault, PolicyComplex}

type valueRequest struct {
	Value string `json:"value"`
}

type cpfResponse struct {
	CPF       string `json:"cpf"`
	Formatted string `json:"formatted"`
	Masked    string `json:"masked"`
}

type phoneResponse struct {
	Phone     string `json:"phone"`
	Formatted string `json:"formatted"`
	E164      string `json:"e164"`
	Kind      string `json:"kind"`
	Masked    string `json:"masked"`
}

type passwordRequest struct {
	Password  string `json:"password"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Policy    string `json:"policy,omitempty"`
}

type policyQuery struct {
	Policy string
}

type sanitizeRequest struct {
	Text        *string `json:"text"`
	MaxLength   int     `json:"max_length"`
	StripMarkup bool    `json:"strip_markup"`
}

// fieldError reports a *validator.ValueError as a failure of field.
func fieldError(field string, err error) error {
	var verr *validator.ValueError
	if errors.As(err, &verr) {
		return validator.ValidationErrors{verr.ToValidationError(field)}
	}
	return err
}

func (s *Service) validateCPF(_ context.Context, req valueRequest) Response {
	digits, err := validator.ValidateCPF(req.Value)
	if err != nil {
		return Fail(fieldError("value", err))
	}
	formatted, err := validator.FormatCPF(digits)
	if err != nil {
		return Fail(err)
	}

	return JSON(cpfResponse{
		CPF:       digits,
		Formatted: formatted,
		Masked:    sanitizer.MaskCPF(digits),
	})
}

func (s *Service) validatePhone(_ context.Context, req valueRequest) Response {
	digits, err := validator.ValidatePhone(req.Value)
	if err != nil {
		return Fail(fieldError("value", err))
	}
	formatted, err := validator.FormatPhone(digits)
	if err != nil {
		return Fail(err)
	}
	e164, err := validator.PhoneE164(digits)
	if err != nil {
		return Fail(fieldError("value", err))
	}

	return JSON(phoneResponse{
		Phone:     digits,
		Formatted: formatted,
		E164:      e164,
		Kind:      string(validator.PhoneKindOf(digits)),
		Masked:    sanitizer.MaskPhone(digits),
	})
}

// passwordPolicy resolves a policy name; the empty name selects the default.
func (s *Service) passwordPolicy(name string) (*validator.PasswordPolicy, error) {
	if name == "" {
		name = PolicyDefault
	}
	if err := validator.Apply(validator.InListString("policy", name, policies)); err != nil {
		return nil, err
	}
	if name == PolicyComplex {
		return validator.NewPasswordPolicy(validator.ComplexPasswordValidator{}), nil
	}
	return s.policy, nil
}

func (s *Service) validatePassword(_ context.Context, req passwordRequest) Response {
	policy, err := s.passwordPolicy(req.Policy)
	if err != nil {
		return Fail(err)
	}

	user := &validator.PasswordUser{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := policy.Validate(req.Password, user); err != nil {
		return Fail(err)
	}
	return JSON(map[string]bool{"valid": true})
}

func bindPolicyQuery(r *http.Request, v any) error {
	q, ok := v.(*policyQuery)
	if !ok {
		return ErrBadRequest
	}
	q.Policy = r.URL.Query().Get("policy")
	return nil
}

func (s *Service) passwordHelp(ctx context.Context, req policyQuery) Response {
	policy, err := s.passwordPolicy(req.Policy)
	if err != nil {
		return Fail(err)
	}

	validators := policy.Validators()
	texts := make([]string, 0, len(validators))
	for _, v := range validators {
		texts = append(texts, s.tr.Tvc(ctx, v.HelpTextKey(), v.HelpText(), validator.HelpTextValues(v)))
	}
	return JSON(map[string][]string{"help_texts": texts})
}

func (s *Service) sanitize(_ context.Context, req sanitizeRequest) Response {
	if err := validator.Apply(validator.MinInt("max_length", req.MaxLength, 0)); err != nil {
		return Fail(err)
	}
	if req.StripMarkup && req.Text != nil {
		return JSON(map[string]string{"text": sanitizer.CleanText(*req.Text, req.MaxLength)})
	}
	return JSON(map[string]string{"text": sanitizer.SanitizeStringPtr(req.Text, req.MaxLength)})
}
