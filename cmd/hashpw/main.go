// Command hashpw prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yigit/akademik/internal/pkg/auth"
	"github.com/yigit/akademik/internal/pkg/logger"
)

func main() {
	password := flag.String("password", "", "password to hash; read from stdin when empty")
	flag.Parse()

	pw := *password
	if pw == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logger.Fatal().Err(err).Msg("Failed to read password from stdin")
		}
		pw = strings.TrimRight(line, "\r\n")
	}
	if pw == "" {
		logger.Fatal().Msg("Password must not be empty")
	}

	hash, err := auth.HashPassword(pw)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to hash password")
	}
	fmt.Println(hash)
}
