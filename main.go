package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/usher-2/u2ip4/internal/logger"
)

func main() {
	opts, err := parseOptions(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "%s\n", err)
		}

		os.Exit(2)
	}

	cfg := opts.cfg
	serve := cfg.Server.Serve

	// converted addresses own stdout
	infoOut := os.Stderr
	if serve {
		infoOut = os.Stdout
	}

	logger.SetLevel(cfg.LogLevel, infoOut, os.Stderr)

	var nets *NetworkSet

	if cfg.Networks != "" {
		f, err := os.Open(cfg.Networks)
		if err != nil {
			logger.Error.Printf("Can't open networks file: %s\n", err)
			os.Exit(1)
		}

		nets, err = LoadNetworks(f)
		f.Close()

		if err != nil {
			logger.Error.Printf("Can't load networks: %s: %s\n", cfg.Networks, err)
			os.Exit(1)
		}

		logger.Info.Printf("Loaded %d networks\n", nets.Len())
	}

	if serve {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := Serve(ctx, cfg.Server, nets); err != nil {
			logger.Error.Printf("Server error: %s\n", err)
			os.Exit(1)
		}

		logger.Warning.Printf("Exiting...")

		return
	}

	c := NewConverter(nets, opts.verbose, opts.dups)

	if len(opts.args) > 0 {
		for i, addr := range opts.args {
			c.Convert(os.Stdout, i+1, addr)
		}
	} else if err := c.ConvertLines(os.Stdout, os.Stdin); err != nil {
		logger.Error.Printf("%s\n", err)
		os.Exit(1)
	}

	c.Report(os.Stdout)

	if c.Failures() > 0 {
		os.Exit(1)
	}
}
