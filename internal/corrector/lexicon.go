package corrector

// Lexicon — отфильтрованная таблица частот токенов; единственная структура,
// к которой обращается исправление. После построения не меняется, поэтому
// её можно читать из нескольких горутин без блокировок.
//
// Инвариант: пустой токен всегда присутствует с частотой 1 — резолвер
// никогда не работает с пустым множеством кандидатов.
type Lexicon map[string]int

func (l Lexicon) Contains(token string) bool {
	_, ok := l[token]
	return ok
}

func (l Lexicon) Frequency(token string) int { return l[token] }
func (l Lexicon) Len() int                   { return len(l) }

// buildFrequencies прогоняет обучающие записи через токенизатор и
// накапливает счётчики вхождений. Таблица строится только из корпуса:
// словарные слова, не встретившиеся в записях, сюда не попадают.
func buildFrequencies(records []string) map[string]int {
	freq := make(map[string]int)
	for _, rec := range records {
		for _, tok := range Tokenize(rec) {
			freq[tok]++
		}
	}
	return freq
}

// filterFrequencies применяет правила удержания: редкие токены вне базового
// словаря и короткие низкочастотные токены отбрасываются, словарные слова
// сохраняются при любой частоте. Длина считается в рунах.
func filterFrequencies(freq map[string]int, vocab *Vocabulary, cfg FilterConfig) Lexicon {
	lex := make(Lexicon, len(freq))
	for word, count := range freq {
		if !vocab.Contains(word) {
			if count < cfg.MinCount {
				continue
			}
			if len([]rune(word)) < cfg.ShortLen && count < cfg.ShortMinCount {
				continue
			}
		}
		lex[word] = count
	}
	lex[""] = 1
	return lex
}
