package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/padbot/padbot/internal/core/events/bus"
	"github.com/padbot/padbot/internal/core/observability/log"
	"github.com/padbot/padbot/internal/core/sim"
	"github.com/padbot/padbot/internal/server"
)

func main() {
	var (
		addr       = flag.String("addr", "127.0.0.1:8080", "gateway listen address")
		configPath = flag.String("config", "", "optional yaml scene config")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := log.LevelInfo
	if *debug {
		level = log.LevelDebug
	}
	logger := log.New(level)

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			fmt.Println("Error opening config:", err)
			os.Exit(1)
		}
		cfg, err = sim.LoadYAML(f)
		f.Close()
		if err != nil {
			fmt.Println("Error loading config:", err)
			os.Exit(1)
		}
	}

	events := bus.New()
	world, err := sim.NewWorld(cfg, nil, events, logger)
	if err != nil {
		fmt.Println("Error building world:", err)
		os.Exit(1)
	}

	gateway, err := server.NewGateway(*addr, world.Queue(), world, events, logger)
	if err != nil {
		fmt.Println("Error building gateway:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-stopCh
		cancel()
	}()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return sim.NewLoop(world, cfg, logger).Run(ctx) })
	group.Go(func() error { return gateway.Run(ctx) })

	if err := group.Wait(); err != nil && err != context.Canceled {
		fmt.Println("Error running server:", err)
		os.Exit(1)
	}
}
