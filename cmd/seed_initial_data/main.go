package main

import (
	"context"
	"fmt"
	"os"

	"quiz-master/cmd/seed_initial_data/internal/seedmodels"
	"quiz-master/internal/config"
	"quiz-master/internal/database"
	"quiz-master/internal/logger"
	"quiz-master/internal/questionbank"
	"quiz-master/internal/repository"
	"quiz-master/internal/service"
	"quiz-master/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/sample_quizzes.json"

func main() {
	if err := newRootCmd(seed).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the seed command around run, which receives the seed
// file path.
func newRootCmd(run func(ctx context.Context, path string) error) *cobra.Command {
	var seedFile string
	cmd := &cobra.Command{
		Use:          "seed_initial_data",
		Short:        "Load sample quizzes into the database",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return run(ctx, seedFile)
		},
	}
	cmd.Flags().StringVarP(&seedFile, "file", "f", defaultSeedFilePath, "path to the seed quizzes JSON file")
	return cmd
}

func seed(ctx context.Context, path string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...", zap.String("path", path))
	quizzes, err := loadSeedFile(path)
	if err != nil {
		log.Error("Failed to load seed data", zap.String("path", path), zap.Error(err))
		return err
	}

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	bank, err := questionbank.LoadDefault()
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}

	quizRepo := repository.NewQuizDatabaseAdapter(db)
	questionRepo := repository.NewQuestionDatabaseAdapter(db)
	attemptRepo := repository.NewAttemptDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	quizService := service.NewQuizService(quizRepo, questionRepo, attemptRepo, txManager,
		service.NewGeneratorService(nil, bank),
		service.NewQuizCacheService(nil, quizRepo, questionRepo, attemptRepo, cfg))

	seeder := seedmodels.NewSeeder(quizRepo, quizService, txManager, validation.NewValidator())
	res := seeder.Seed(ctx, quizzes)

	log.Info("Initial data seeding process completed.",
		zap.Int("created", res.Created),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed),
	)
	if res.Failed > 0 {
		return fmt.Errorf("%d quizzes failed to seed", res.Failed)
	}
	return nil
}

func loadSeedFile(path string) ([]seedmodels.SeedQuiz, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return seedmodels.Load(f)
}
