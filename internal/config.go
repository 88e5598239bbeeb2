package internal

import (
	"fmt"
	"time"
)

// Config holds every environment knob of the client. Paths left empty
// disable the optional local stores.
type Config struct {
	APIBaseURL       string        `env:"API_BASE_URL,default=http://localhost:8000/api/v1"`
	WSBaseURL        string        `env:"WS_BASE_URL,default=ws://localhost:8000"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT,default=10s"`
	HandshakeTimeout time.Duration `env:"WS_HANDSHAKE_TIMEOUT,default=10s"`

	ReconnectMaxAttempts int           `env:"RECONNECT_MAX_ATTEMPTS,default=5"`
	ReconnectStep        time.Duration `env:"RECONNECT_STEP,default=3s"`

	TokenFilepath  string `env:"TOKEN_FILEPATH,default=.carelink/tokens.json"`
	BadgerFilepath string `env:"BADGER_FILEPATH"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH"`

	CensoredWords string `env:"CENSORED_WORDS"`
	CensoredChar  string `env:"CENSORED_CHAR,default=*"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
	Email         string `env:"CARELINK_EMAIL"`
	Password      string `env:"CARELINK_PASSWORD"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSORED_CHAR must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
