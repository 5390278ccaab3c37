package configs

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger builds the process-wide logger. Development gets the console
// writer; anything else emits JSON for log shipping.
func InitLogger(appEnv string) zerolog.Logger {
	if appEnv == "development" || appEnv == "" {
		return log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
