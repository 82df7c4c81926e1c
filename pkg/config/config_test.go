package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAnalyzerConfigIsValid(t *testing.T) {
	cfg := DefaultAnalyzerConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 15, cfg.OptionScanWindow)
	assert.Equal(t, 10, cfg.MaxOptions)
	assert.Equal(t, 250, cfg.WordsPerPage)
	assert.Contains(t, cfg.Keywords.QuestionPrefixes, "pregunta")
}

func TestValidateRejectsEmptyKeywordLists(t *testing.T) {
	cfg := DefaultAnalyzerConfig()
	cfg.Keywords.Imperatives = nil
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsZeroLimits(t *testing.T) {
	cfg := DefaultAnalyzerConfig()
	cfg.OptionScanWindow = 0
	assert.Error(t, cfg.Validate())
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analyzer.yaml")

	cfg := DefaultAnalyzerConfig()
	cfg.MaxBullets = 8
	cfg.Keywords.QuizKeywords = []string{"klausur"}
	require.NoError(t, cfg.ToYAMLFile(path))

	loaded := &AnalyzerConfig{}
	require.NoError(t, loaded.FromYAMLFile(path))

	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 8, loaded.MaxBullets)
	assert.Equal(t, []string{"klausur"}, loaded.Keywords.QuizKeywords)
}

func TestFromYAMLFileMissing(t *testing.T) {
	cfg := &AnalyzerConfig{}
	err := cfg.FromYAMLFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFromYAMLFileInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")

	// ToYAMLFile does not validate, so the bad value lands on disk
	cfg := DefaultAnalyzerConfig()
	cfg.WordsPerPage = 0
	require.NoError(t, cfg.ToYAMLFile(path))

	loaded := &AnalyzerConfig{}
	assert.Error(t, loaded.FromYAMLFile(path))
}
