package config

import (
	"flag"
	"os"

	"github.com/aigymlabs/fitcoach/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind address for the HTTP API
//	-d string   sqlite DSN of the server database
//	-k string   HMAC secret for session tokens
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN of the server database")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "HMAC secret for session tokens")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
