package corrector

// sonorityPairs — пары звонких и глухих согласных. Задел под взвешенную
// функцию расстояния, где фонетически близкая замена стоит дешевле;
// алгоритмом разрешения пока не используется.
var sonorityPairs = map[rune]rune{
	'б': 'п', 'в': 'ф', 'г': 'к', 'д': 'т', 'ж': 'ш', 'з': 'с',
	'п': 'б', 'ф': 'в', 'к': 'г', 'т': 'д', 'ш': 'ж', 'с': 'з',
}

// SonorityEquivalent сообщает, образуют ли две буквы пару по звонкости.
// Может использоваться в собственной DistanceFunc, передаваемой через
// WithDistance.
func SonorityEquivalent(a, b rune) bool {
	p, ok := sonorityPairs[a]
	return ok && p == b
}
