package corrector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
dictionary_path: /data/ru.txt
filter:
  min_count: 3
  short_len: 4
  short_min_count: 20
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/ru.txt", cfg.DictionaryPath)
	assert.Equal(t, "train.csv", cfg.TrainPath, "незаданные поля берутся из умолчаний")
	assert.Equal(t, "correct_text", cfg.TextColumn)
	assert.Equal(t, FilterConfig{MinCount: 3, ShortLen: 4, ShortMinCount: 20}, cfg.Filter)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "нет.yaml"))
	require.Error(t, err)
}
