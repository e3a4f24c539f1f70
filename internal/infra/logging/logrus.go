package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New は GO_ENV に応じたフォーマッタで logrus を作る。
// prod: JSON（集約向け） / それ以外: テキスト
func New(env string, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	switch env {
	case "prod", "production":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}
