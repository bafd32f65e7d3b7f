package corrector

import (
	"strings"

	"sentcorrect/internal/dataset"
)

// =====================
// Корректор предложений
// =====================

// SentenceCorrector заменяет незнакомые токены ближайшими словами лексикона.
// Лексикон строится один раз при создании и далее только читается, поэтому
// Correct и Resolve безопасны для параллельного вызова.
type SentenceCorrector struct {
	lexicon  Lexicon
	resolver *resolver
}

// Build строит корректор из сырых строк базового словаря и обучающих
// записей (значений колонки исправленного текста).
func Build(vocabLines, trainingRecords []string, opts ...Option) *SentenceCorrector {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt.Apply(&o)
	}

	vocab := ParseVocabulary(vocabLines)
	for _, w := range o.extraWords {
		vocab.Add(strings.ToLower(w))
	}

	lex := filterFrequencies(buildFrequencies(trainingRecords), vocab, o.filter)
	return newCorrector(lex, o.dist)
}

// BuildFromFiles загружает словарь и обучающий CSV по путям из конфига.
// Нечитаемый словарь и набор без нужной колонки — разные ошибки, обе
// фатальны для построения: частичный корректор не возвращается.
func BuildFromFiles(cfg Config, opts ...Option) (*SentenceCorrector, error) {
	vocab, err := LoadVocabularyFile(cfg.DictionaryPath)
	if err != nil {
		return nil, err
	}

	records, err := dataset.ReadColumn(cfg.TrainPath, cfg.TextColumn)
	if err != nil {
		return nil, err
	}

	o := defaultBuildOptions()
	o.filter = cfg.Filter
	for _, opt := range opts {
		opt.Apply(&o)
	}
	for _, w := range o.extraWords {
		vocab.Add(strings.ToLower(w))
	}

	lex := filterFrequencies(buildFrequencies(records), vocab, o.filter)
	return newCorrector(lex, o.dist), nil
}

func newCorrector(lex Lexicon, dist DistanceFunc) *SentenceCorrector {
	return &SentenceCorrector{lexicon: lex, resolver: newResolver(lex, dist)}
}

// Lexicon возвращает лексикон корректора. Изменять его нельзя.
func (sc *SentenceCorrector) Lexicon() Lexicon { return sc.lexicon }

// Resolve возвращает ближайшее слово лексикона для одного токена.
func (sc *SentenceCorrector) Resolve(token string) string {
	return sc.resolver.Resolve(token)
}

// Correct токенизирует предложение, оставляет известные лексикону токены
// как есть, остальные заменяет ближайшими словами и собирает результат
// через одиночные пробелы, сохраняя порядок. Ошибок не бывает: на любой
// корректной строке возвращается строка.
func (sc *SentenceCorrector) Correct(sentence string) string {
	tokens := Tokenize(sentence)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if sc.lexicon.Contains(tok) {
			out[i] = tok
		} else {
			out[i] = sc.resolver.Resolve(tok)
		}
	}
	return strings.Join(out, " ")
}
