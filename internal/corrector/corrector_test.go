package corrector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentcorrect/internal/dataset"
)

var testVocab = []string{"привет", "как", "дела", "у", "меня", "всё", "-хорошо"}

var testRecords = []string{
	"Привет, как дела?",
	"У меня всё хорошо.",
	"Привет! Всё хорошо.",
}

func TestCorrectRoundTrip(t *testing.T) {
	sc := Build(testVocab, testRecords)
	got := sc.Correct("Привет, как дела? У меня всё харашо!")
	assert.Equal(t, "привет как дела у меня всё хорошо", got)
}

func TestCorrectKeepsKnownTokens(t *testing.T) {
	sc := Build([]string{"сон", "тон"}, []string{"сон тон", "сон тон"})
	// «сон» — ключ лексикона: замена невозможна, даже при равноудалённом «тон».
	assert.Equal(t, "сон", sc.Correct("сон"))
	assert.Equal(t, "тон", sc.Correct("тон"))
}

func TestCorrectEmptyInput(t *testing.T) {
	sc := Build(testVocab, testRecords)
	assert.Equal(t, "", sc.Correct(""))
	assert.Equal(t, "", sc.Correct("12345 !@#$"))
}

func TestCorrectPreservesOrder(t *testing.T) {
	sc := Build(testVocab, testRecords)
	assert.Equal(t, "дела как привет", sc.Correct("Дела как привет"))
}

func TestBuildExtraWords(t *testing.T) {
	records := []string{"гиперлуп едет"}

	plain := Build(nil, records)
	assert.False(t, plain.Lexicon().Contains("гиперлуп"),
		"одиночное несловарное слово отфильтровывается")

	custom := Build(nil, records, WithExtraWords("Гиперлуп"))
	assert.True(t, custom.Lexicon().Contains("гиперлуп"),
		"пользовательское слово освобождено от фильтра")
	assert.Equal(t, 1, custom.Lexicon().Frequency("гиперлуп"))
}

func TestBuildVocabularyWordsNotSeeded(t *testing.T) {
	sc := Build([]string{"паровоз"}, []string{"привет привет привет привет привет"})
	assert.False(t, sc.Lexicon().Contains("паровоз"),
		"словарные слова вне корпуса в лексикон не попадают")
}

func TestBuildSentinelAlwaysPresent(t *testing.T) {
	for _, records := range [][]string{nil, {""}, testRecords} {
		sc := Build(testVocab, records)
		assert.True(t, sc.Lexicon().Contains(""))
		assert.Equal(t, 1, sc.Lexicon().Frequency(""))
	}
}

func writeTrainCSV(t *testing.T, dir, header string) string {
	t.Helper()
	path := filepath.Join(dir, "train.csv")
	data := header + "\n1,Привет как дела\n2,У меня всё хорошо\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestBuildFromFiles(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "russian.txt")
	require.NoError(t, os.WriteFile(dictPath,
		[]byte("привет\nкак\nдела\nу\nменя\nвсё\n-хорошо\n"), 0o644))

	cfg := DefaultConfig()
	cfg.DictionaryPath = dictPath
	cfg.TrainPath = writeTrainCSV(t, dir, "id,correct_text")

	sc, err := BuildFromFiles(cfg)
	require.NoError(t, err)
	assert.Equal(t, "привет как дела", sc.Correct("превет кагг дила"))
}

func TestBuildFromFilesMissingDictionary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DictionaryPath = filepath.Join(t.TempDir(), "нет.txt")

	_, err := BuildFromFiles(cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, dataset.ErrMissingColumn)
}

func TestBuildFromFilesMissingColumn(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "russian.txt")
	require.NoError(t, os.WriteFile(dictPath, []byte("привет\n"), 0o644))

	cfg := DefaultConfig()
	cfg.DictionaryPath = dictPath
	cfg.TrainPath = writeTrainCSV(t, dir, "id,text")

	_, err := BuildFromFiles(cfg)
	require.ErrorIs(t, err, dataset.ErrMissingColumn)
}
