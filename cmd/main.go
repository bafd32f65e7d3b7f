package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"sentcorrect/internal/corrector"
)

func main() {
	var (
		text        string
		interactive bool
		configPath  string
	)

	rootCmd := &cobra.Command{
		Use:           "sentcorrect",
		Short:         "Исправление опечаток в русском тексте",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := corrector.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = corrector.LoadConfig(configPath); err != nil {
					return err
				}
			}

			sc, err := corrector.BuildFromFiles(cfg)
			if err != nil {
				return err
			}

			switch {
			case text != "":
				runOnce(sc, text)
			case interactive:
				runInteractive(sc)
			default:
				runDemo(sc)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&text, "text", "t", "", "текст для исправления")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "интерактивный режим (ввод текста после запуска)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "путь к yaml-конфигу")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runOnce(sc *corrector.SentenceCorrector, text string) {
	fmt.Printf("Исходное предложение: %s\n", text)
	fmt.Printf("Исправленное предложение: %s\n", sc.Correct(text))
}

func isExit(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	return l == "выход" || l == "exit"
}

func runInteractive(sc *corrector.SentenceCorrector) {
	fmt.Println("Введите текст для исправления (для выхода введите 'выход' или 'exit'):")

	lines := make(chan string)
	go func() {
		in := bufio.NewScanner(os.Stdin)
		for in.Scan() {
			lines <- in.Text()
		}
		close(lines)
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	fmt.Print("> ")
	for {
		select {
		case <-interrupt:
			fmt.Println("\nПрограмма завершена")
			return
		case line, ok := <-lines:
			if !ok || isExit(line) {
				return
			}
			if strings.TrimSpace(line) != "" {
				fmt.Printf("Исправленное предложение: %s\n", sc.Correct(line))
			}
			fmt.Print("> ")
		}
	}
}

func runDemo(sc *corrector.SentenceCorrector) {
	const sample = "Привет, как дела? У меня всё харашо!"
	runOnce(sc, sample)
	fmt.Println()
	fmt.Println("Для использования программы:")
	fmt.Println("1. Передайте текст через аргумент --text или -t:")
	fmt.Println("   sentcorrect --text 'Ваш текст здесь'")
	fmt.Println("2. Или запустите в интерактивном режиме:")
	fmt.Println("   sentcorrect --interactive")
}
