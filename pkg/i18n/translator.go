package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Translator resolves translation keys for a language. Translations are
// loaded once from a TranslationAdapter; lookups are safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
// Language keys are normalized, so "pt_BR" and "pt-BR" both become "pt-br".
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	normalized, err := t.normalizeTranslations(translations)
	if err != nil {
		return nil, err
	}

	t.translations = normalized
	t.logger.InfoContext(ctx, "translations loaded",
		slog.Any("languages", t.supportedLanguages()),
		slog.String("default", t.defaultLang),
	)
	return t, nil
}

// Reload reads the translations from the adapter again and swaps them in.
// On error the current translations are kept.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	normalized, err := t.normalizeTranslations(translations)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = normalized
	t.mu.Unlock()
	return nil
}

func (t *Translator) normalizeTranslations(trans map[string]map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(trans))
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return result, nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if translations == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilTranslations, lang)
		}
		result[NormalizeLanguage(lang)] = translations
	}
	return result, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the normalized codes of every loaded language, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a requested one is not loaded.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[NormalizeLanguage(lang)]
	if !ok {
		return false
	}

	_, ok = lookup(langMap, key)
	return ok
}

// lookup traverses a nested map using dot-separated keys, so
// "validation.cpf_invalid" reads m["validation"]["cpf_invalid"].
func lookup(m map[string]any, key string) (any, bool) {
	current := m
	parts := strings.Split(key, ".")

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// resolve finds the string for key in lang, falling back to the default
// language when lang is not loaded or lacks the key.
func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lang = NormalizeLanguage(lang)
	candidates := []string{lang}
	if lang != t.defaultLang {
		candidates = append(candidates, t.defaultLang)
	}

	for _, l := range candidates {
		langMap, ok := t.translations[l]
		if !ok {
			continue
		}
		val, ok := lookup(langMap, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		}
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", l, "key", key, "type", fmt.Sprintf("%T", val))
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	return "", false
}

// paramRegex finds named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown placeholders are kept.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// pairs converts key, value, key, value arguments into a map.
// An odd trailing argument is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// T translates a key for the given language, substituting %{name}
// placeholders from key/value argument pairs:
//
//	// "welcome": "Olá, %{name}!"
//	translator.T("pt-br", "welcome", "name", "Maria") // "Olá, Maria!"
//
// Missing translations return the key when fallback to key is enabled,
// otherwise an empty string.
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.resolve(lang, key); ok {
		return substitute(tmpl, pairs(args))
	}
	if t.fallbackToKey {
		return substitute(key, pairs(args))
	}
	return ""
}

// Td translates a key with an explicit fallback used when no translation exists.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.resolve(lang, key); ok {
		return substitute(tmpl, pairs(args))
	}
	return substitute(defaultValue, pairs(args))
}

// Tv is Td with placeholder values taken from a map. Values are rendered
// with fmt.Sprint, so validation metadata can be passed as is.
func (t *Translator) Tv(lang, key, defaultValue string, values map[string]any) string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		params[k] = fmt.Sprint(v)
	}

	if tmpl, ok := t.resolve(lang, key); ok {
		return substitute(tmpl, params)
	}
	return substitute(defaultValue, params)
}

// N translates a key with pluralization. It looks up key+".zero" (n == 0),
// key+".one" (n == 1) or key+".other", then the key itself. The count is
// available to the template as %{count} unless provided explicitly.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	params := pairs(args)
	if _, ok := params["count"]; !ok {
		params["count"] = strconv.Itoa(n)
	}

	var forms []string
	switch n {
	case 0:
		forms = []string{key + ".zero", key + ".other"}
	case 1:
		forms = []string{key + ".one"}
	default:
		forms = []string{key + ".other"}
	}
	forms = append(forms, key)

	for _, k := range forms {
		if tmpl, ok := t.resolve(lang, k); ok {
			return substitute(tmpl, params)
		}
	}
	if t.fallbackToKey {
		return substitute(key, params)
	}
	return ""
}

// Tc translates a key using the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Tvc is Tv with the language taken from ctx.
func (t *Translator) Tvc(ctx context.Context, key, defaultValue string, values map[string]any) string {
	return t.Tv(GetLocale(ctx), key, defaultValue, values)
}

// Nc translates a plural key using the language from ctx.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.N(GetLocale(ctx), key, n, args...)
}

// Export returns the raw translation tree of a language.
func (t *Translator) Export(lang string) (map[string]any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[NormalizeLanguage(lang)]
	if !ok {
		return nil, errors.Join(ErrLanguageNotSupported, fmt.Errorf("language %q", lang))
	}
	return translations, nil
}
