package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/miniter/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the server (e.g., "http://127.0.0.1:8080")
//
// os.Args is filtered to the recognized flags first so the CLI can coexist
// with flags parsed elsewhere.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "a", config.ServerBaseURL, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
