package corrector

// Option настраивает построение корректора.
type Option interface {
	Apply(o *buildOptions)
}

type buildOptions struct {
	dist       DistanceFunc
	filter     FilterConfig
	extraWords []string
}

func defaultBuildOptions() buildOptions {
	return buildOptions{
		dist:   UnitLevenshtein,
		filter: DefaultConfig().Filter,
	}
}

type funcOption struct {
	f func(o *buildOptions)
}

func (fo funcOption) Apply(o *buildOptions) { fo.f(o) }

func newFuncOption(f func(o *buildOptions)) Option { return funcOption{f: f} }

// WithDistance подменяет функцию расстояния — например, на взвешенную
// с учётом SonorityEquivalent.
func WithDistance(dist DistanceFunc) Option {
	return newFuncOption(func(o *buildOptions) {
		if dist != nil {
			o.dist = dist
		}
	})
}

// WithFilter задаёт пороги фильтрации вместо значений по умолчанию.
func WithFilter(filter FilterConfig) Option {
	return newFuncOption(func(o *buildOptions) {
		o.filter = filter
	})
}

// WithExtraWords добавляет слова в базовый словарь поверх списка из файла —
// например, пользовательский словарь из redis. Такие слова не подпадают
// под частотную фильтрацию.
func WithExtraWords(words ...string) Option {
	return newFuncOption(func(o *buildOptions) {
		o.extraWords = append(o.extraWords, words...)
	})
}
