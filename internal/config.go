package internal

import (
	"fmt"
	"time"
)

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	BadgerInMemory    bool          `env:"BADGER_IN_MEMORY,default=false"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	Host              string        `env:"HOST,default=0.0.0.0"`
	Port              int           `env:"PORT,default=8080"`
	DebugPort         int           `env:"DEBUG_PORT,default=8081"`
	AuthEnabled       bool          `env:"AUTH_ENABLED,default=true"`
	JwtSecret         string        `env:"JWT_SECRET"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}

// Validate checks the rules go-env tags cannot express.
func (c Config) Validate() error {
	if c.AuthEnabled && len(c.JwtSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters when AUTH_ENABLED is true")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %d", c.Port)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
