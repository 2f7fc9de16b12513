// Command peer-1on1 generates the next month of mentor/mentee pairs for a
// roster and prints the updated schedule document to stdout.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	peer1on1 "github.com/Seitaro-Yuki/peer-1on1"
	"github.com/Seitaro-Yuki/peer-1on1/internal/logging"
	"github.com/Seitaro-Yuki/peer-1on1/schedule"
)

type cli struct {
	Input string `arg:"" help:"Path to the schedule JSON document." type:"path"`

	Config      string `help:"Optional YAML engine configuration file." type:"path"`
	Seed        uint64 `help:"Random seed; 0 derives a stable seed from the input." default:"0"`
	Strategy    string `help:"Pairing strategy override (shuffle|greedy)."`
	LabelPolicy string `name:"label-policy" help:"Period label policy override (successor|clock)."`
	Verbose     bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	var args cli
	kctx := kong.Parse(&args,
		kong.Name("peer-1on1"),
		kong.Description("Generates the next month of mentor/mentee pairs for a roster."),
		kong.UsageOnError(),
	)

	// All diagnostics go to stderr; stdout carries only the updated document.
	kctx.FatalIfErrorf(run(ctx, &args))
}

func run(ctx context.Context, args *cli) error {
	level := slog.LevelInfo
	if args.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	log := logging.NewSlog(slog.New(handler).With("run_id", uuid.NewString()))

	cfg := peer1on1.DefaultConfig()
	if args.Config != "" {
		data, err := os.ReadFile(args.Config)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", args.Config, err)
		}
	}
	if args.Strategy != "" {
		cfg.Strategy = args.Strategy
	}
	if args.LabelPolicy != "" {
		cfg.LabelPolicy = schedule.LabelPolicy(args.LabelPolicy)
	}

	sched, err := schedule.Load(args.Input)
	if err != nil {
		return err
	}
	log.Debug("schedule loaded",
		"path", args.Input,
		"members", len(sched.Members),
		"excluded", len(sched.Excluded),
		"months", len(sched.Months),
	)

	engine, err := peer1on1.New(cfg,
		peer1on1.WithLogger(log),
		peer1on1.WithSeed(args.Seed),
	)
	if err != nil {
		return err
	}

	period, err := engine.Generate(ctx, sched)
	if err != nil {
		return err
	}

	return schedule.Write(os.Stdout, schedule.Append(sched, period))
}
