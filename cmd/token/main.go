// Command token prints a signed access token for operators of the write api.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/geocoder89/eventbook/internal/auth"
	"github.com/geocoder89/eventbook/internal/config"
)

func main() {
	subject := flag.String("sub", "", "operator identity stored in the token subject")
	role := flag.String("role", auth.RoleAdmin, "role claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "token: -sub is required")
		os.Exit(2)
	}

	cfg := config.Load()

	raw, err := auth.NewManager(cfg.JWTSecret, *ttl).GenerateAccessToken(*subject, *role)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}

	fmt.Println(raw)
}
