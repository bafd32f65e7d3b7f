package corrector

import (
	"sync"

	"github.com/hbollon/go-edlib"
)

// DistanceFunc возвращает редакционное расстояние между двумя токенами.
type DistanceFunc func(a, b string) int

// UnitLevenshtein — классический Левенштейн: вставка, удаление и замена
// по цене 1, без транспозиций.
func UnitLevenshtein(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// resolver ищет ближайший ключ лексикона полным перебором. Лексикон после
// построения неизменяем, поэтому Resolve безопасно звать из нескольких
// горутин; кэш только запоминает готовые ответы и на результат не влияет.
type resolver struct {
	lex   Lexicon
	dist  DistanceFunc
	cache sync.Map // map[string]string
}

func newResolver(lex Lexicon, dist DistanceFunc) *resolver {
	if dist == nil {
		dist = UnitLevenshtein
	}
	return &resolver{lex: lex, dist: dist}
}

// Resolve возвращает ближайшее слово лексикона: минимальное расстояние,
// при равенстве — бо́льшая частота, при равенстве частот — лексикографически
// меньший ключ. Токен, уже известный лексикону, возвращается как есть.
func (r *resolver) Resolve(token string) string {
	if r.lex.Contains(token) {
		return token
	}
	if v, ok := r.cache.Load(token); ok {
		return v.(string)
	}

	// Защитный fallback: при пустом лексиконе токен остаётся как есть.
	best := token
	minDist := -1
	for word, freq := range r.lex {
		d := r.dist(token, word)
		switch {
		case minDist < 0 || d < minDist:
			minDist = d
			best = word
		case d == minDist:
			if bf := r.lex[best]; freq > bf || (freq == bf && word < best) {
				best = word
			}
		}
	}

	r.cache.Store(token, best)
	return best
}
