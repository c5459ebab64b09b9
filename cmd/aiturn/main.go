package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/gspu/vcmi/internal/ai"
	"github.com/gspu/vcmi/internal/ai/behavior"
	"github.com/gspu/vcmi/internal/config"
	"github.com/gspu/vcmi/internal/db"
	"github.com/gspu/vcmi/internal/heuristic"
	"github.com/gspu/vcmi/internal/model"
	"github.com/gspu/vcmi/internal/world"
)

const ConfigPath = "config/aiturn.yaml"

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	cfgPath := ConfigPath
	if p := os.Getenv("VCMI_AI_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadAITurn(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	scenarioPath := cfg.Scenario
	if p := os.Getenv("VCMI_AI_SCENARIO"); p != "" {
		scenarioPath = p
	}
	sc, err := world.LoadScenario(scenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	rules := model.RecruitRules{HeroCost: cfg.Recruit.HeroCost, MaxHeroes: cfg.Recruit.MaxHeroes}
	w, err := world.New(sc, rules, cfg.Pathing)
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}

	slog.Info("aiturn starting",
		"log_level", cfg.LogLevel,
		"scenario", scenarioPath,
		"towns", len(sc.Towns),
		"heroes", len(sc.Heroes),
		"days", cfg.Orchestrator.Days)

	orch := ai.NewOrchestrator(ai.Collaborators{
		State:    w,
		Paths:    w.PathProvider,
		Heroes:   heuristic.HeroQuality{},
		Armies:   heuristic.ArmyValue{},
		Executor: w,
	}, cfg.Policy, cfg.Orchestrator)
	orch.Register(behavior.RecruitHeroBehavior{}, behavior.StartupBehavior{})

	names := make([]string, 0, len(orch.Behaviors()))
	for _, b := range orch.Behaviors() {
		names = append(names, b.Name())
	}
	slog.Info("AI behaviors registered", "run_id", orch.RunID(), "behaviors", names)

	var journal *db.DecisionRepository
	if cfg.Journal.Enabled {
		dsn := cfg.Journal.Database.DSN()
		database, err := db.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connecting to journal database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, dsn); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("decision journal enabled", "host", cfg.Journal.Database.Host, "dbname", cfg.Journal.Database.DBName)

		journal = db.NewDecisionRepository(database.Pool())
		orch.SetRecorder(journal)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case sig := <-sigCh:
			slog.Info("shutting down", "signal", sig)
			stop()
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		defer stop()
		return simulate(gctx, orch, w, cfg.Orchestrator.Days)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	if journal != nil {
		// ctx is canceled by now; the summary gets its own.
		counts, err := journal.CountByOutcome(context.Background(), orch.RunID())
		if err != nil {
			return fmt.Errorf("reading journal: %w", err)
		}
		slog.Info("journal summary", "run_id", orch.RunID(), "outcomes", counts)
	}
	return nil
}

// simulate plays one AI turn per day. A failed goal ends the day, not the run.
func simulate(ctx context.Context, orch *ai.Orchestrator, w *world.World, days int) error {
	executed := 0
	for range days {
		res, err := orch.Turn(ctx)
		executed += res.Executed()
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			slog.Warn("AI turn failed", "day", w.Day(), "reason", res.Reason, "err", err)
		}
		w.EndTurn()
	}

	res := w.Resources()
	slog.Info("simulation finished", "day", w.Day(), "gold", res.Gold, "actions", executed)
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
