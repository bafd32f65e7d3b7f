// Package dataset читает обучающий набор — табличный CSV, из которого
// нужна одна колонка исправленного текста.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// ErrMissingColumn возвращается, когда в наборе нет требуемой колонки.
var ErrMissingColumn = errors.New("в обучающем наборе нет требуемой колонки")

// ReadColumn извлекает значения колонки name из CSV-файла path.
// Нечитаемый файл или отсутствующая колонка — ошибка; битые записи
// пропускаются и на остальные не влияют.
func ReadColumn(path, name string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("открытие обучающего набора %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadColumnFrom(f, name)
	if err != nil {
		return nil, fmt.Errorf("обучающий набор %s: %w", path, err)
	}
	return records, nil
}

// ReadColumnFrom извлекает значения колонки name из CSV-потока r.
func ReadColumnFrom(r io.Reader, name string) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("чтение заголовка: %w", err)
	}

	col := -1
	for i, h := range header {
		if h == name {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	var out []string
	skipped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil || col >= len(rec) {
			skipped++
			continue
		}
		out = append(out, rec[col])
	}
	if skipped > 0 {
		log.Printf("обучающий набор: пропущено записей: %d", skipped)
	}
	return out, nil
}
