package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv copies variables from the given dotenv files (".env" when none
// are named) into the process environment. Variables already set win.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println(".env not found, using system environment")
	}
}

func GetEnv(key string, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
