package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armoredgo/armored/internal/cli"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app, err := cli.New(context.Background(), &stdout, &stderr)
	require.NoError(t, err)

	code := app.Run(args)
	return code, stdout.String(), stderr.String()
}

func runJSON(t *testing.T, args ...string) (int, map[string]any) {
	t.Helper()

	code, stdout, _ := run(t, args...)
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &out), stdout)
	return code, out
}

func TestCPF(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := run(t, "cpf", "111.444.777-35")
	assert.Equal(t, cli.ExitOK, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "cpf:        11144477735\nformatted:  111.444.777-35\nmasked:     ***.444.777-**\n", stdout)

	code, stdout, stderr = run(t, "cpf", "12345678900")
	assert.Equal(t, cli.ExitInvalid, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "cpf: CPF inválido. (cpf_invalid)\n", stderr)

	code, _, stderr = run(t, "cpf", "-lang", "en", "123")
	assert.Equal(t, cli.ExitInvalid, code)
	assert.Equal(t, "cpf: CPF must contain 11 digits. (cpf_invalid_length)\n", stderr)
}

func TestPhone(t *testing.T) {
	t.Parallel()

	code, out := runJSON(t, "phone", "-json", "(11) 99988-7766")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, map[string]any{
		"phone":     "11999887766",
		"formatted": "(11) 99988-7766",
		"e164":      "+5511999887766",
		"kind":      "mobile",
		"masked":    "*******7766",
	}, out)

	code, out = runJSON(t, "phone", "-json", "09999887766")
	assert.Equal(t, cli.ExitInvalid, code)
	assert.Equal(t, []any{map[string]any{
		"field":   "phone",
		"code":    "phone_invalid_ddd",
		"message": "DDD inválido.",
	}}, out["errors"])
}

func TestPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		code  int
		codes []string
	}{
		{"strong", []string{"SenhaForte123!"}, cli.ExitOK, nil},
		{"complex policy", []string{"-policy", "complex", "senhafraca123!"}, cli.ExitInvalid, []string{"password_no_upper"}},
		{"similar to username", []string{"-username", "maria", "Maria#2024x"}, cli.ExitInvalid, []string{"password_too_similar"}},
		{"numeric", []string{"98765432101"}, cli.ExitInvalid, []string{"password_entirely_numeric", "password_no_upper"}},
		{"unknown policy", []string{"-policy", "strict", "x"}, cli.ExitInvalid, []string{"invalid_choice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := append([]string{"password", "-json"}, tt.args...)
			code, out := runJSON(t, args...)
			assert.Equal(t, tt.code, code)

			if tt.codes == nil {
				assert.Equal(t, map[string]any{"valid": "true"}, out)
				return
			}
			var codes []string
			for _, e := range out["errors"].([]any) {
				codes = append(codes, e.(map[string]any)["code"].(string))
			}
			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"  Hello   World  "}, "text:  Hello World\n"},
		{[]string{"Hello", "\t", "World"}, "text:  Hello World\n"},
		{[]string{"-max", "10", "This is a long text"}, "text:  This is a \n"},
		{[]string{"<i>Olá</i>", "mundo"}, "text:  <i>Olá</i> mundo\n"},
		{[]string{"-strip-markup", "<i>Olá</i>", "mundo"}, "text:  Olá mundo\n"},
	}
	for _, tt := range tests {
		code, stdout, _ := run(t, append([]string{"sanitize"}, tt.args...)...)
		assert.Equal(t, cli.ExitOK, code)
		assert.Equal(t, tt.want, stdout)
	}

	code, _, stderr := run(t, "sanitize", "-max", "-1", "text")
	assert.Equal(t, cli.ExitInvalid, code)
	assert.Contains(t, stderr, "min_value")
}

func TestHelpText(t *testing.T) {
	t.Parallel()

	code, stdout, _ := run(t, "help-text", "-lang", "en", "-policy", "complex")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "- Your password must contain at least one uppercase letter, one lowercase letter, one number and one special character.\n", stdout)

	code, out := runJSON(t, "help-text", "-json")
	assert.Equal(t, cli.ExitOK, code)
	texts := out["help_texts"].([]any)
	require.Len(t, texts, 5)
	assert.Equal(t, "Sua senha precisa conter pelo menos 8 caracteres.", texts[1])
}

func TestUsage(t *testing.T) {
	t.Parallel()

	code, _, stderr := run(t)
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr, "usage: brcheck")

	code, _, stderr = run(t, "cnpj", "123")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr, `unknown command "cnpj"`)

	code, _, _ = run(t, "cpf")
	assert.Equal(t, cli.ExitUsage, code)

	code, _, _ = run(t, "cpf", "-bogus", "1")
	assert.Equal(t, cli.ExitUsage, code)

	code, stdout, _ := run(t, "help")
	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, "help-text")
}
