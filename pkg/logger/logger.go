package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr на уровне info, поэтому никогда не nil.
var Log = logrus.New()

// Options - явные настройки логгера. Пустые поля берутся из окружения.
type Options struct {
	Level  string    // "debug", "info", ...; по умолчанию LOG_LEVEL или "info"
	Format string    // "json" или "text"; по умолчанию LOG_FORMAT
	Output io.Writer // по умолчанию os.Stdout
}

// Init инициализирует глобальный логгер из переменных окружения.
// Эта функция должна быть вызвана один раз при старте приложения.
func Init() {
	Configure(Options{})
}

// Configure настраивает глобальный логгер. Флаги CLI имеют приоритет над окружением.
func Configure(opts Options) {
	Log = logrus.New()

	// 1. Уровень логирования. По умолчанию - "info".
	logLevel := opts.Level
	if logLevel == "" {
		if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
			logLevel = env
		} else {
			logLevel = "info"
		}
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для сбора логов.
	// "text" - для удобной разработки.
	logFormat := opts.Format
	if logFormat == "" {
		logFormat = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Куда писать логи.
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}
