package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Omondi-otieno/Wastewater-Treatment-Simulation/internal/compliance"
	"github.com/Omondi-otieno/Wastewater-Treatment-Simulation/internal/report"
	"github.com/Omondi-otieno/Wastewater-Treatment-Simulation/internal/treatment"
	"github.com/Omondi-otieno/Wastewater-Treatment-Simulation/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// SIM_PLAN=0 runs both plans back to back
	plans := []treatment.Plan{treatment.Plan1, treatment.Plan2}
	if cfg.Simulation.Plan != 0 {
		plans = []treatment.Plan{treatment.Plan(cfg.Simulation.Plan)}
	}

	renderer := report.NewRenderer(os.Stdout, cfg.Report.Color)
	evaluator := compliance.NewEvaluator()

	fmt.Println("Tropical Timber Paper Mill Wastewater Treatment Simulation")

	for _, plan := range plans {
		sim, err := treatment.NewSimulation(plan)
		if err != nil {
			logger.Fatal("Failed to build simulation",
				zap.Int("plan", int(plan)),
				zap.Error(err),
			)
		}

		history := sim.Run()
		records := evaluator.EvaluateSimulation(sim)

		compliant := 0
		for _, rec := range records {
			if rec.Pass {
				compliant++
			}
		}

		logger.Info("Simulation completed",
			zap.String("run_id", sim.ID),
			zap.String("plan", plan.String()),
			zap.Int("stages", sim.StageCount()),
			zap.Int("snapshots", len(history)),
			zap.Int("compliant", compliant),
			zap.Int("evaluated", len(records)),
		)

		fmt.Println()
		renderer.Render(sim, records)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}
