package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BOARD_ADDR points to a running board server, the suite is skipped when empty
	BoardAddr string `envconfig:"BOARD_ADDR"`
	// BOARD_TOKEN is sent as bearer token when the server has authentication enabled
	BoardToken string `envconfig:"BOARD_TOKEN"`
	// BOARD_SENDER names the caller when the server has authentication disabled
	BoardSender string `envconfig:"BOARD_SENDER" default:"e2e"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
