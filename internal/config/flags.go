package config

import (
	"flag"
	"os"
	"time"

	"scholartrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file
//	-l int      auth operation latency in milliseconds
//	-p int      apply operation latency in milliseconds
//
// Only the flags handled here are parsed; os.Args is filtered through
// flagx.FilterArgs so the config-file flag and anything else is ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	authLatency := fs.Int("l", int(cfg.AuthLatency.Milliseconds()), "auth latency (in milliseconds)")
	applyLatency := fs.Int("p", int(cfg.ApplyLatency.Milliseconds()), "apply latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthLatency = time.Duration(*authLatency) * time.Millisecond
	cfg.ApplyLatency = time.Duration(*applyLatency) * time.Millisecond
}
