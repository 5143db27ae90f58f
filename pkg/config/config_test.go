package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ttejas123/sql-formatter-cli/pkg/config"
	"github.com/ttejas123/sql-formatter-cli/pkg/format"
)

func TestLoadConfig(t *testing.T) {
	yamlData := `
indent: 4
keyword_case: lower
keywords:
  - SELECT
  - FROM
`

	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
	require.NoError(t, err)

	opts := cfg.FormatOptions()
	require.Equal(t, 4, opts.IndentSize)
	require.Equal(t, format.KeywordCaseLower, opts.KeywordCase)
	require.Equal(t, []format.Keyword{"SELECT", "FROM"}, opts.Keywords)
}

func TestLoadConfig_emptyDocumentUsesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)

	opts := cfg.FormatOptions()
	require.Equal(t, format.DefaultOptions(), opts)
}

func TestLoadConfig_rejectsNegativeIndent(t *testing.T) {
	_, err := config.LoadConfig(strings.NewReader("indent: -1"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "indent must be non-negative")
}

func TestLoadConfig_rejectsUnknownKeywordCase(t *testing.T) {
	_, err := config.LoadConfig(strings.NewReader("keyword_case: shouty"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid keyword_case")
}

func TestLoadConfig_rejectsMalformedYAML(t *testing.T) {
	_, err := config.LoadConfig(strings.NewReader("indent: [not a number"))
	require.Error(t, err)
}

func TestConfig_FormatOptions_nilReceiver(t *testing.T) {
	var cfg *config.Config
	require.Equal(t, format.DefaultOptions(), cfg.FormatOptions())
}

func TestLoadConfigFile_missingFile(t *testing.T) {
	_, err := config.LoadConfigFile("nope/definitely-missing.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open file")
}
