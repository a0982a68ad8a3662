// Package i18n translates message keys into localized text and detects the
// language of HTTP requests.
//
// Translations are nested maps keyed by language code and loaded once through
// a TranslationAdapter: MapAdapter for in-memory data, FileAdapter for a
// single file and FSAdapter for a directory inside any fs.FS (embed.FS
// included). YAML and JSON parsers are provided.
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, ".")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("pt-br"))
//	if err != nil {
//		return err
//	}
//
//	tr.T("en", "validation.max_length", "max", "20")
//	tr.Tv("pt-br", verr.TranslationKey, verr.Message, verr.TranslationValues)
//
// Placeholders use the %{name} form. Language codes are normalized with
// golang.org/x/text/language and lower-cased, so "pt_BR" and "pt-BR" select
// the same translations. A key missing in the requested language is looked
// up in the default language before falling back to the key itself.
//
// # HTTP
//
// Middleware stores the detected language in the request context, where
// GetLocale and the T*c helpers read it. DefaultLangExtractor checks a
// cookie, a query parameter, a custom header and finally Accept-Language.
//
//	router.Use(i18n.Middleware(
//		i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("pt-br", "en")),
//		"pt-br",
//	))
package i18n
