package corrector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FilterConfig — пороги удержания токена в лексиконе.
type FilterConfig struct {
	MinCount      int `yaml:"min_count"`       // минимальная частота для несловарного токена
	ShortLen      int `yaml:"short_len"`       // граница «короткого» токена, в рунах
	ShortMinCount int `yaml:"short_min_count"` // минимальная частота для короткого несловарного токена
}

type Config struct {
	DictionaryPath string       `yaml:"dictionary_path"`
	TrainPath      string       `yaml:"train_path"`
	TextColumn     string       `yaml:"text_column"`
	Filter         FilterConfig `yaml:"filter"`
}

func DefaultConfig() Config {
	return Config{
		DictionaryPath: "russian.txt",
		TrainPath:      "train.csv",
		TextColumn:     "correct_text",
		Filter: FilterConfig{
			MinCount:      5,
			ShortLen:      4,
			ShortMinCount: 50,
		},
	}
}

// LoadConfig накладывает значения из yaml-файла поверх значений по умолчанию.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("чтение конфига %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("разбор конфига %s: %w", path, err)
	}
	return cfg, nil
}
