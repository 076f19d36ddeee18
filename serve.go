package main

import (
	"context"
	"fmt"
	"net"

	"golang.org/x/net/netutil"
	"google.golang.org/grpc"

	"github.com/usher-2/u2ip4/internal/config"
	"github.com/usher-2/u2ip4/internal/logger"
	pb "github.com/usher-2/u2ip4/msg"
)

// Serve - run the converter service until ctx is done.
func Serve(ctx context.Context, cfg config.ServerConfig, nets *NetworkSet) error {
	listen, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Listen, err)
	}

	return serveListener(ctx, listen, cfg.MaxConns, nets)
}

func serveListener(ctx context.Context, listen net.Listener, maxConns int, nets *NetworkSet) error {
	if maxConns > 0 {
		listen = netutil.LimitListener(listen, maxConns)
	}

	s := grpc.NewServer()
	pb.RegisterConverterServer(s, newServer(nets))

	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			logger.Warning.Printf("Stopping server...")
			s.GracefulStop()
		case <-done:
		}
	}()

	logger.Info.Printf("Listening on %s\n", listen.Addr())

	err := s.Serve(listen)
	close(done)

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}
