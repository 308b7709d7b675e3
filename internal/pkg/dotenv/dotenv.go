package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Load подтягивает переменные из .env (или из файла в ENV_FILE), не перетирая
// уже заданные в окружении. Отсутствие файла не ошибка: в контейнере env приходит снаружи.
// Флаг -port переопределяет PORT.
func Load() error {
	return load(os.Getenv("ENV_FILE"), os.Args[1:])
}

func load(path string, args []string) error {
	if path == "" {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	flags := flag.NewFlagSet("onboarding", flag.ContinueOnError)
	portFlag := flags.String("port", "", "Server port (overrides PORT environment variable)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *portFlag != "" {
		err := os.Setenv("PORT", *portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
