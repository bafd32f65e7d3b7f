package corrector

import (
	"regexp"
	"strings"
)

// Класс «шумовых» символов: цифры, латиница и пунктуация. При токенизации
// каждый такой символ заменяется пробелом. Класс обязан совпадать при
// построении лексикона и при исправлении, иначе токены не найдутся по ключам.
var noiseRe = regexp.MustCompile(`[0-9a-z!@#$\-,.?¬\]\['"]`)

// Tokenize приводит строку к нижнему регистру, вычищает шумовые символы
// и разбивает результат по пробельным участкам, отбрасывая пустые фрагменты.
func Tokenize(text string) []string {
	cleaned := noiseRe.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}
