// Command hashpass prints a bcrypt hash for ORGANIZER_PASSWORD_HASH.
//
//	go run ./cmd/hashpass -password 's3cret'
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Dosada05/tournament-league/services"
)

func main() {
	password := flag.String("password", "", "organizer password to hash")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	hash, err := services.HashPassword(*password)
	if err != nil {
		logger.Error("failed to hash password", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(hash)
}
