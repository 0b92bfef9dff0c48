// Command token-generator mints a signed token for manual testing of the
// API's protected routes. It reads the same TASKAPI_* environment
// configuration as the server, so a token minted here is accepted by a
// server running with the same secret.
//
// Usage:
//
//	TASKAPI_AUTH_JWT_SECRET=... token-generator [-subject name]
//
// The printed value is used as the raw Authorization header, without a
// Bearer prefix.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mfarrell/taskapi/internal/config"
	"github.com/mfarrell/taskapi/internal/service/auth"
)

func main() {
	subject := flag.String("subject", "manual-test", "subject claim for the token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		os.Exit(1)
	}

	token, err := jwtService.GenerateToken(context.Background(), *subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
