// Package locales embeds the translation files shipped with the service.
package locales

import (
	"context"
	"embed"

	"github.com/armoredgo/armored/pkg/i18n"
)

//go:embed *.yaml
var FS embed.FS

// Supported lists the languages shipped in FS. The first one is the default.
var Supported = []string{"pt-br", "en"}

// NewTranslator returns a translator over the embedded files, defaulting to Portuguese.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	opts = append([]i18n.Option{i18n.WithDefaultLanguage(Supported[0])}, opts...)
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), FS, "."), opts...)
}
