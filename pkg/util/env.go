package util

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cast"
)

// LoadEnv loads .env and then .env.<env>. Values already present in the
// process environment are never overridden.
func LoadEnv(env string) error {
	if err := loadEnvFile(".env"); err != nil && !os.IsNotExist(err) {
		return err
	}
	if env != "" {
		if err := loadEnvFile(".env." + env); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetIntEnv(key string) int64 {
	return cast.ToInt64(os.Getenv(key))
}

func GetBoolEnv(key string) bool {
	return cast.ToBool(os.Getenv(key))
}
