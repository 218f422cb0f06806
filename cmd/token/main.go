package main

import (
	"flag"
	"fmt"
	"os"
	"trashtalk/auth"
	"trashtalk/internal"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Mints a bearer token for a sender, signed with the server JWT_SECRET.
func main() {
	sender := flag.String("sender", "", "identity recorded as owner or author")
	flag.Parse()

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	token, err := auth.GenerateToken([]byte(config.JwtSecret), *sender, config.AuthTokenDuration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Token error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
