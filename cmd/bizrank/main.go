package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/locallens/bizrank"
	"github.com/locallens/bizrank/internal/config"
	logpkg "github.com/locallens/bizrank/internal/logger"
	"github.com/locallens/bizrank/internal/version"
)

// dataset is the JSON input: one preference record plus candidate businesses.
type dataset struct {
	Preferences bizrank.Preferences `json:"preferences"`
	Businesses  []bizrank.Business  `json:"businesses"`
}

func main() {
	datasetPath := flag.String("dataset", "dataset.json", "path to the JSON dataset to rank")
	top := flag.Int("top", 0, "limit output to the top N businesses (0 = all)")
	skipFilter := flag.Bool("no-filter", false, "skip deal-breaker filtering and rank everything")
	flag.Parse()

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting bizrank",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("dataset", *datasetPath),
	)

	ds, err := loadDataset(*datasetPath)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}

	engine, err := bizrank.New(
		bizrank.WithWeights(toPublicWeights(cfg)),
		bizrank.WithLogger(logger),
		bizrank.WithMetrics(),
	)
	if err != nil {
		logger.Fatal("Failed to create engine", zap.Error(err))
	}

	candidates := ds.Businesses
	if !*skipFilter {
		candidates = engine.FilterByDealBreakers(candidates, ds.Preferences.DealbreakerIDs)
		logger.Info("Deal-breaker filter applied",
			zap.Int("candidates", len(ds.Businesses)),
			zap.Int("survivors", len(candidates)),
		)
	}

	ranked := engine.SortByPersonalization(candidates, ds.Preferences)
	if *top > 0 && len(ranked) > *top {
		ranked = ranked[:*top]
	}

	printRanking(engine, ranked, ds.Preferences)
}

func loadDataset(path string) (dataset, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	return ds, nil
}

// toPublicWeights bridges the config weight table into the engine's API.
func toPublicWeights(cfg config.Config) bizrank.Weights {
	w := cfg.Weights()
	out := bizrank.Weights{
		InterestMatch:          w.InterestMatch,
		SubcategoryMatch:       w.SubcategoryMatch,
		DealBreakerPenalty:     w.DealBreakerPenalty,
		RatingMultiplier:       w.RatingMultiplier,
		ReviewLogFactor:        w.ReviewLogFactor,
		VerifiedBonus:          w.VerifiedBonus,
		ReviewVolumeDivisor:    w.ReviewVolumeDivisor,
		ReviewVolumeCap:        w.ReviewVolumeCap,
		HighRatingInsightMin:   w.HighRatingInsightMin,
		FriendlinessInsightMin: w.FriendlinessInsightMin,
		PunctualityInsightMin:  w.PunctualityInsightMin,
	}
	for _, b := range w.DistanceBands {
		out.DistanceBands = append(out.DistanceBands, bizrank.DistanceBand(b))
	}
	for _, win := range w.RecencyWindows {
		out.RecencyWindows = append(out.RecencyWindows, bizrank.RecencyWindow(win))
	}
	return out
}

func printRanking(engine *bizrank.Engine, ranked []bizrank.Business, p bizrank.Preferences) {
	for i, b := range ranked {
		sc := engine.Score(b, p)
		fmt.Printf("%3d. %-28s %8.2f\n", i+1, b.ID, sc.Total)
		fmt.Printf("     interest=%.0f subcategory=%.0f dealbreakers=%.0f distance=%.0f rating=%.2f freshness=%.2f\n",
			sc.Breakdown.Interest, sc.Breakdown.Subcategory, sc.Breakdown.DealBreakers,
			sc.Breakdown.Distance, sc.Breakdown.Rating, sc.Breakdown.Freshness,
		)
		for _, insight := range sc.Insights {
			fmt.Printf("     - %s\n", insight)
		}
	}
}
