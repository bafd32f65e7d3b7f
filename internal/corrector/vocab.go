package corrector

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	mmap "github.com/edsrzf/mmap-go"
)

// variantMarker помечает в списке слов морфологический вариант;
// в словарь слово попадает без самой пометки.
const variantMarker = '-'

// Vocabulary — базовый словарь заведомо правильных слов. Хранит только
// членство, без частот; используется исключительно как исключение из
// частотной фильтрации.
type Vocabulary struct {
	words mapset.Set[string]
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{words: mapset.NewThreadUnsafeSet[string]()}
}

// ParseVocabulary собирает словарь из сырых строк списка слов,
// по одному слову на строку.
func ParseVocabulary(lines []string) *Vocabulary {
	v := NewVocabulary()
	for _, line := range lines {
		v.addLine(line)
	}
	return v
}

func (v *Vocabulary) addLine(line string) {
	word := strings.TrimSpace(line)
	if len(word) > 0 && word[0] == variantMarker {
		word = word[1:]
	}
	v.words.Add(word)
}

func (v *Vocabulary) Add(word string)           { v.words.Add(word) }
func (v *Vocabulary) Contains(word string) bool { return v.words.Contains(word) }
func (v *Vocabulary) Len() int                  { return v.words.Cardinality() }

// LoadVocabularyFile читает список слов целиком через mmap: файл нужен
// только на время построения лексикона и может быть большим.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("открытие словаря %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("словарь %s: %w", path, err)
	}
	if fi.Size() == 0 {
		return NewVocabulary(), nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap словаря %s: %w", path, err)
	}
	defer mm.Unmap()

	v := NewVocabulary()
	s := bufio.NewScanner(bytes.NewReader(mm))
	for s.Scan() {
		v.addLine(s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("чтение словаря %s: %w", path, err)
	}
	return v, nil
}
