package config

import (
	"flag"
	"os"

	"github.com/mockview/mockview/internal/flagx"
)

// parseFlags populates client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend API base URL (e.g., "http://localhost:5000/api")
//	-b string   path to the sqlite session database
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.APIBaseURL, "a", config.APIBaseURL, "backend API base URL")
	fs.StringVar(&config.SessionDBPath, "b", config.SessionDBPath, "session database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
