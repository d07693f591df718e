package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/seitarof/gs2tc/internal/cli"
	"github.com/seitarof/gs2tc/internal/generator"
	"github.com/seitarof/gs2tc/internal/gofmt"
	"github.com/seitarof/gs2tc/internal/logger"
	"github.com/seitarof/gs2tc/internal/parser"
	"github.com/seitarof/gs2tc/internal/paste"
	"github.com/seitarof/gs2tc/internal/resolver"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "gs2tc:", err)
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		Output:     os.Stderr,
		JSON:       cfg.LogJSON,
		TimeFormat: "15:04:05",
	})
	ctx, stop := signal.NotifyContext(logger.ContextWithLogger(context.Background(), log), os.Interrupt)
	defer stop()

	var opts []paste.Option
	if cfg.Gofmt {
		opts = append(opts, paste.WithNormalizer(gofmt.New()))
	}
	p := parser.New(resolver.New(resolver.DefaultRules()...))
	t := paste.New(p, generator.New(), opts...)

	runner := cli.NewRunner(t, cli.NewSource(cfg), cli.NewSink(cfg))
	if err := runner.Run(ctx, cfg); err != nil {
		log.Error("paste failed", "error", err)
		stop()
		os.Exit(1)
	}
}
