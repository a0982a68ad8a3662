// Package cli implements the brcheck subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/armoredgo/armored/locales"
	"github.com/armoredgo/armored/pkg/i18n"
	"github.com/armoredgo/armored/pkg/sanitizer"
	"github.com/armoredgo/armored/pkg/validator"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

const usage = `usage: brcheck <command> [flags] [args]

commands:
  cpf <value>          validate and format a CPF
  phone <value>        validate and format a Brazilian phone number
  password <password>  check a password against a policy
  sanitize <text>      collapse whitespace and truncate text (-max, -strip-markup)
  help-text            print the password requirements

common flags:
  -lang string   message language: pt-br or en (default "pt-br")
  -json          print the result as JSON
`

// App runs brcheck commands against the given output streams.
type App struct {
	out io.Writer
	err io.Writer
	tr  *i18n.Translator
}

// New loads the embedded translations.
func New(ctx context.Context, stdout, stderr io.Writer) (*App, error) {
	tr, err := locales.NewTranslator(ctx)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	return &App{out: stdout, err: stderr, tr: tr}, nil
}

// Run dispatches args (without the program name) and returns the exit code.
func (a *App) Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.err, usage)
		return ExitUsage
	}

	switch args[0] {
	case "cpf":
		return a.cmdCPF(args[1:])
	case "phone":
		return a.cmdPhone(args[1:])
	case "password":
		return a.cmdPassword(args[1:])
	case "sanitize":
		return a.cmdSanitize(args[1:])
	case "help-text":
		return a.cmdHelpText(args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return ExitOK
	default:
		fmt.Fprintf(a.err, "brcheck: unknown command %q\n\n%s", args[0], usage)
		return ExitUsage
	}
}

type commonFlags struct {
	lang   string
	asJSON bool
}

func (a *App) flagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet("brcheck "+name, flag.ContinueOnError)
	fs.SetOutput(a.err)

	c := &commonFlags{}
	fs.StringVar(&c.lang, "lang", a.tr.DefaultLanguage(), "message language")
	fs.BoolVar(&c.asJSON, "json", false, "print the result as JSON")
	return fs, c
}

// parse parses flags and requires exactly want positional arguments, or at
// least one when want is negative.
func (a *App) parse(fs *flag.FlagSet, args []string, want int) ([]string, bool) {
	if err := fs.Parse(args); err != nil {
		return nil, false
	}
	rest := fs.Args()
	if (want >= 0 && len(rest) != want) || (want < 0 && len(rest) == 0) {
		fmt.Fprintf(a.err, "%s: wrong number of arguments\n", fs.Name())
		fs.Usage()
		return nil, false
	}
	return rest, true
}

type field struct {
	name  string
	value string
}

func (a *App) print(c *commonFlags, fields ...field) {
	if c.asJSON {
		m := make(map[string]string, len(fields))
		for _, f := range fields {
			m[f.name] = f.value
		}
		enc := json.NewEncoder(a.out)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(m)
		return
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.name))
	}
	for _, f := range fields {
		fmt.Fprintf(a.out, "%-*s  %s\n", width+1, f.name+":", f.value)
	}
}

// fail prints every validation failure translated into c.lang.
func (a *App) fail(c *commonFlags, field string, err error) int {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		var verr *validator.ValueError
		if !errors.As(err, &verr) {
			fmt.Fprintf(a.err, "brcheck: %v\n", err)
			return ExitInvalid
		}
		verrs = validator.ValidationErrors{verr.ToValidationError(field)}
	}

	if c.asJSON {
		type failure struct {
			Field   string `json:"field"`
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		out := make([]failure, 0, len(verrs))
		for _, e := range verrs {
			out = append(out, failure{e.Field, e.Code, a.tr.Tv(c.lang, e.TranslationKey, e.Message, e.TranslationValues)})
		}
		_ = json.NewEncoder(a.out).Encode(map[string]any{"errors": out})
		return ExitInvalid
	}

	for _, e := range verrs {
		fmt.Fprintf(a.err, "%s: %s (%s)\n", e.Field, a.tr.Tv(c.lang, e.TranslationKey, e.Message, e.TranslationValues), e.Code)
	}
	return ExitInvalid
}

func (a *App) cmdCPF(args []string) int {
	fs, c := a.flagSet("cpf")
	rest, ok := a.parse(fs, args, 1)
	if !ok {
		return ExitUsage
	}

	formatted, err := validator.FormatCPF(rest[0])
	if err != nil {
		return a.fail(c, "cpf", err)
	}
	digits := sanitizer.KeepDigits(formatted)
	a.print(c,
		field{"cpf", digits},
		field{"formatted", formatted},
		field{"masked", sanitizer.MaskCPF(digits)},
	)
	return ExitOK
}

func (a *App) cmdPhone(args []string) int {
	fs, c := a.flagSet("phone")
	rest, ok := a.parse(fs, args, 1)
	if !ok {
		return ExitUsage
	}

	digits, err := validator.ValidatePhone(rest[0])
	if err != nil {
		return a.fail(c, "phone", err)
	}
	formatted, err := validator.FormatPhone(digits)
	if err != nil {
		return a.fail(c, "phone", err)
	}
	e164, err := validator.PhoneE164(digits)
	if err != nil {
		return a.fail(c, "phone", err)
	}
	a.print(c,
		field{"phone", digits},
		field{"formatted", formatted},
		field{"e164", e164},
		field{"kind", string(validator.PhoneKindOf(digits))},
		field{"masked", sanitizer.MaskPhone(digits)},
	)
	return ExitOK
}

func policyByName(name string) (*validator.PasswordPolicy, error) {
	switch name {
	case "", "default":
		return validator.DefaultPasswordPolicy(), nil
	case "complex":
		return validator.NewPasswordPolicy(validator.ComplexPasswordValidator{}), nil
	}
	return nil, validator.Apply(validator.InListString("policy", name, []string{"default", "complex"}))
}

func (a *App) cmdPassword(args []string) int {
	fs, c := a.flagSet("password")
	policyName := fs.String("policy", "default", "password policy: default or complex")
	user := &validator.PasswordUser{}
	fs.StringVar(&user.Username, "username", "", "username to compare against")
	fs.StringVar(&user.Email, "email", "", "e-mail to compare against")
	fs.StringVar(&user.FirstName, "first-name", "", "first name to compare against")
	fs.StringVar(&user.LastName, "last-name", "", "last name to compare against")

	rest, ok := a.parse(fs, args, 1)
	if !ok {
		return ExitUsage
	}

	policy, err := policyByName(*policyName)
	if err != nil {
		return a.fail(c, "policy", err)
	}
	if err := policy.Validate(rest[0], user); err != nil {
		return a.fail(c, "password", err)
	}
	a.print(c, field{"valid", "true"})
	return ExitOK
}

func (a *App) cmdSanitize(args []string) int {
	fs, c := a.flagSet("sanitize")
	maxLength := fs.Int("max", 0, "maximum length in characters, 0 for no limit")
	stripMarkup := fs.Bool("strip-markup", false, "remove HTML tags, escape sequences and null bytes")

	rest, ok := a.parse(fs, args, -1)
	if !ok {
		return ExitUsage
	}
	if err := validator.Apply(validator.MinInt("max", *maxLength, 0)); err != nil {
		return a.fail(c, "max", err)
	}

	clean := sanitizer.SanitizeString
	if *stripMarkup {
		clean = sanitizer.CleanText
	}
	a.print(c, field{"text", clean(strings.Join(rest, " "), *maxLength)})
	return ExitOK
}

func (a *App) cmdHelpText(args []string) int {
	fs, c := a.flagSet("help-text")
	policyName := fs.String("policy", "default", "password policy: default or complex")

	if _, ok := a.parse(fs, args, 0); !ok {
		return ExitUsage
	}

	policy, err := policyByName(*policyName)
	if err != nil {
		return a.fail(c, "policy", err)
	}

	texts := make([]string, 0, len(policy.Validators()))
	for _, v := range policy.Validators() {
		texts = append(texts, a.tr.Tv(c.lang, v.HelpTextKey(), v.HelpText(), validator.HelpTextValues(v)))
	}

	if c.asJSON {
		_ = json.NewEncoder(a.out).Encode(map[string][]string{"help_texts": texts})
		return ExitOK
	}
	for _, t := range texts {
		fmt.Fprintf(a.out, "- %s\n", t)
	}
	return ExitOK
}
