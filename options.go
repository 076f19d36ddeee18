package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/usher-2/u2ip4/internal/config"
)

// options - config file, environment and flags merged.
type options struct {
	cfg     *config.Config
	dups    bool
	verbose bool
	args    []string
}

// parseOptions - load the config named by -c and apply the flags that were set on top.
func parseOptions(name string, args []string, errOut io.Writer) (*options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)

	confFile := fs.String("c", "", "YAML config file")
	confLogLevel := fs.String("l", "Info", "Logging level: Debug, Info, Warning, Error")
	confNetworks := fs.String("n", "", "Networks file, one CIDR per line")
	confServe := fs.Bool("S", false, "Serve gRPC on the configured address instead of converting")
	confListen := fs.String("s", "", "Serve gRPC on this address instead of converting")
	confDups := fs.Bool("u", false, "Report addresses seen on more than one line")
	confVerbose := fs.Bool("v", false, "Print the dotted form next to each integer")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*confFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			cfg.LogLevel = *confLogLevel
		case "n":
			cfg.Networks = *confNetworks
		case "S":
			cfg.Server.Serve = *confServe
		case "s":
			if *confListen != "" {
				cfg.Server.Listen = *confListen
			}

			cfg.Server.Serve = true
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bad config: %w", err)
	}

	return &options{cfg: cfg, dups: *confDups, verbose: *confVerbose, args: fs.Args()}, nil
}
