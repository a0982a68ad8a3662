package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armoredgo/armored/pkg/i18n"
)

const ptYAML = `
pt-br:
  validation:
    cpf_invalid: "CPF inválido."
`

const enJSON = `{"en": {"validation": {"cpf_invalid": "Invalid CPF."}}}`

func TestParsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	data, err := i18n.NewYAMLParser().Parse(ctx, ptYAML)
	require.NoError(t, err)
	assert.Contains(t, data, "pt-br")

	data, err = i18n.NewJSONParser().Parse(ctx, enJSON)
	require.NoError(t, err)
	assert.Contains(t, data, "en")

	_, err = i18n.NewYAMLParser().Parse(ctx, "en: just a string")
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	_, err = i18n.NewYAMLParser().Parse(ctx, "")
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)

	_, err = i18n.NewJSONParser().Parse(ctx, "{")
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = i18n.NewYAMLParser().Parse(cancelled, ptYAML)
	assert.ErrorIs(t, err, i18n.ErrParsingCancelled)
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("pt-br.yml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/en.YAML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.json"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))

	assert.True(t, i18n.NewYAMLParser().SupportsFileExtension(".yml"))
	assert.False(t, i18n.NewJSONParser().SupportsFileExtension("yaml"))
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "pt-br.yaml")
	require.NoError(t, os.WriteFile(file, []byte(ptYAML), 0o600))

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFileAdapter(i18n.NewParserForFile(file), file))
	require.NoError(t, err)
	assert.Equal(t, "CPF inválido.", tr.T("pt-br", "validation.cpf_invalid"))

	assert.Nil(t, i18n.NewFileAdapter(nil, file))
	assert.Nil(t, i18n.NewFileAdapter(i18n.NewYAMLParser(), ""))

	_, err = i18n.NewFileAdapter(i18n.NewYAMLParser(), filepath.Join(dir, "missing.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = i18n.NewFileAdapter(i18n.NewYAMLParser(), empty).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/pt-br.yaml": {Data: []byte(ptYAML)},
		"locales/en.yml":     {Data: []byte("en:\n  validation:\n    cpf_invalid: \"Invalid CPF.\"\n")},
		"locales/README.md":  {Data: []byte("ignored")},
	}

	data, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, data, 2)

	_, err = i18n.NewFSAdapter(i18n.NewJSONParser(), fsys, "locales").Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrNoTranslationFile)

	_, err = i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "missing").Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)

	broken := fstest.MapFS{"bad.yaml": {Data: []byte("en: [")}}
	_, err = i18n.NewFSAdapter(i18n.NewYAMLParser(), broken, "").Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)

	assert.Nil(t, i18n.NewFSAdapter(nil, fsys, "locales"))
	assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), nil, "locales"))
}
