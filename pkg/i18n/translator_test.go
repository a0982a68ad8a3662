package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armoredgo/armored/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"pt_BR": {
			"hello":   "Olá",
			"welcome": "Bem-vindo, %{name}!",
			"validation": map[string]any{
				"max_length": "No máximo %{max} caracteres.",
			},
			"items": map[string]any{
				"zero":  "Nenhum item",
				"one":   "%{count} item",
				"other": "%{count} itens",
			},
		},
		"en": {
			"hello":   "Hello",
			"welcome": "Welcome, %{name}!",
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("normalizes language codes", func(t *testing.T) {
		tr := newTestTranslator(t)
		assert.Equal(t, []string{"en", "pt-br"}, tr.SupportedLanguages())
		assert.Equal(t, "pt-br", tr.DefaultLanguage())
	})

	t.Run("rejects nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("rejects empty language", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguageCode)
	})

	t.Run("rejects nil translations", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}})
		assert.ErrorIs(t, err, i18n.ErrNilTranslations)
	})

	t.Run("empty adapter is allowed", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	tests := []struct {
		name     string
		lang     string
		key      string
		args     []string
		expected string
	}{
		{name: "simple", lang: "en", key: "hello", expected: "Hello"},
		{name: "lang is normalized", lang: "PT-BR", key: "hello", expected: "Olá"},
		{name: "placeholder", lang: "pt-br", key: "welcome", args: []string{"name", "Maria"}, expected: "Bem-vindo, Maria!"},
		{name: "nested key", lang: "pt-br", key: "validation.max_length", args: []string{"max", "10"}, expected: "No máximo 10 caracteres."},
		{name: "missing key falls back to default language", lang: "en", key: "validation.max_length", args: []string{"max", "3"}, expected: "No máximo 3 caracteres."},
		{name: "unknown language uses default", lang: "fr", key: "hello", expected: "Olá"},
		{name: "missing everywhere returns key", lang: "en", key: "nope.missing", expected: "nope.missing"},
		{name: "unknown placeholder is kept", lang: "en", key: "welcome", expected: "Welcome, %{name}!"},
		{name: "odd args are ignored", lang: "en", key: "welcome", args: []string{"name"}, expected: "Welcome, %{name}!"},
		{name: "subtree is not a string", lang: "pt-br", key: "validation", expected: "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_NoFallbackToKey(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t, i18n.WithFallbackToKey(false), i18n.WithDefaultLanguage("en"))
	assert.Equal(t, "", tr.T("en", "missing"))
	assert.Equal(t, "Hello", tr.T("fr", "hello"))
}

func TestTranslator_TdTv(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	assert.Equal(t, "Olá", tr.Td("pt-br", "hello", "fallback"))
	assert.Equal(t, "fallback Ana", tr.Td("pt-br", "missing", "fallback %{name}", "name", "Ana"))

	values := map[string]any{"field": "name", "max": 20}
	assert.Equal(t, "No máximo 20 caracteres.", tr.Tv("pt-br", "validation.max_length", "", values))
	assert.Equal(t, "max 20", tr.Tv("en", "missing", "max %{max}", values))
}

func TestTranslator_N(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	assert.Equal(t, "Nenhum item", tr.N("pt-br", "items", 0))
	assert.Equal(t, "1 item", tr.N("pt-br", "items", 1))
	assert.Equal(t, "5 itens", tr.N("pt-br", "items", 5))
	assert.Equal(t, "muitos itens", tr.N("pt-br", "items", 7, "count", "muitos"))
	assert.Equal(t, "Olá", tr.N("pt-br", "hello", 3), "plain key when no plural forms")
	assert.Equal(t, "nope", tr.N("pt-br", "nope", 2))
}

func TestTranslator_Context(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	ctx := i18n.SetLocale(context.Background(), "en")

	assert.Equal(t, "Welcome, Ana!", tr.Tc(ctx, "welcome", "name", "Ana"))
	assert.Equal(t, "1 item", tr.Nc(context.Background(), "items", 1))
	assert.Equal(t, "No máximo 5 caracteres.", tr.Tvc(ctx, "validation.max_length", "", map[string]any{"max": 5}))
}

func TestTranslator_HasTranslationAndExport(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("pt-BR", "validation.max_length"))
	assert.False(t, tr.HasTranslation("en", "validation.max_length"))
	assert.False(t, tr.HasTranslation("fr", "hello"))

	tree, err := tr.Export("en")
	require.NoError(t, err)
	assert.Equal(t, "Hello", tree["hello"])

	_, err = tr.Export("fr")
	assert.ErrorIs(t, err, i18n.ErrLanguageNotSupported)
}

type flakyAdapter struct {
	data map[string]map[string]any
	err  error
}

func (a *flakyAdapter) Load(context.Context) (map[string]map[string]any, error) {
	return a.data, a.err
}

func TestTranslator_Reload(t *testing.T) {
	t.Parallel()

	adapter := &flakyAdapter{data: map[string]map[string]any{"en": {"hello": "Hello"}}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, i18n.WithDefaultLanguage("en"))
	require.NoError(t, err)

	adapter.data = map[string]map[string]any{"en": {"hello": "Hi"}}
	require.NoError(t, tr.Reload(context.Background()))
	assert.Equal(t, "Hi", tr.T("en", "hello"))

	adapter.err = errors.New("unavailable")
	assert.Error(t, tr.Reload(context.Background()))
	assert.Equal(t, "Hi", tr.T("en", "hello"), "failed reload keeps translations")
}
