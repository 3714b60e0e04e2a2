package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv loads envs/.env.<ENV> (envs/.env.local when ENV is unset) and then
// .env. Variables already present in the process environment win.
func LoadEnv(logger *zap.Logger) {
	env := os.Getenv("ENV")
	if env == "" {
		env = "local"
	}

	for _, file := range []string{filepath.Join("envs", ".env."+env), ".env"} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			logger.Warn("ENV file failed to load", zap.String("file", file), zap.Error(err))
			continue
		}
		logger.Info("ENV file loaded successfully", zap.String("file", file))
	}
}
