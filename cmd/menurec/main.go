// Copyright 2025 Selera Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/selera/menurec"
	"github.com/selera/menurec/ai"
	"github.com/selera/menurec/core"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "menurec",
		Usage: "Menu recommendation engine for Indonesian food catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Ingest a catalog file and build a new snapshot",
				Action: ingestCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to the catalog JSON file",
						Required: true,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search the catalog with a food query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     commonFlags(),
			},
			{
				Name:      "similar",
				Usage:     "Find semantically similar menu items",
				ArgsUsage: "<query>",
				Action:    similarCommand,
				Flags: append(commonFlags(),
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"k"},
						Usage:   "Number of neighbors to return",
						Value:   8,
					},
				),
			},
			{
				Name:   "random",
				Usage:  "Sample random menu items from the catalog",
				Action: randomCommand,
				Flags: append(commonFlags(),
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Random seed (0 uses current time)",
					},
				),
			},
			{
				Name:   "stats",
				Usage:  "Show catalog statistics",
				Action: statsCommand,
				Flags:  commonFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
	}
}

func openRecommender(c *cli.Context) (*menurec.Recommender, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	r, err := menurec.NewRecommender(c.String("db"), menurec.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return r, nil
}

func ingestCommand(c *cli.Context) error {
	data, err := os.ReadFile(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var records []core.MenuRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	r, err := openRecommender(c)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.Ingest(context.Background(), records); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	snapshot := r.Snapshot()
	fmt.Printf("Ingested %d records as snapshot version %d\n",
		snapshot.Metadata.TotalRecords, snapshot.Metadata.Version)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	r, err := openRecommender(c)
	if err != nil {
		return err
	}
	defer r.Close()

	items, err := r.Recommend(query)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No matching menu items found.")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%d. %s [%s] %s\n", item.Rank, item.Title, item.Category, item.Price)
		fmt.Printf("   %s (%d/%d criteria)\n", item.QualityLabel, item.CriteriaSatisfied, item.TotalCriteria)
	}
	return nil
}

func similarCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	r, err := openRecommender(c)
	if err != nil {
		return err
	}
	defer r.Close()

	items, err := r.Similar(context.Background(), query, c.Int("top"))
	if err != nil {
		return err
	}

	for i, item := range items {
		fmt.Printf("%d. %s (%.3f) %s\n", i+1, item.Record.Title, item.Score,
			core.FormatPrice(item.Record.NumericPrice))
	}
	return nil
}

func randomCommand(c *cli.Context) error {
	r, err := openRecommender(c)
	if err != nil {
		return err
	}
	defer r.Close()

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	items, err := r.Random(rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	for _, item := range items {
		fmt.Printf("%d. %s [%s] %s\n", item.Rank, item.Title, item.Category, item.Price)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	r, err := openRecommender(c)
	if err != nil {
		return err
	}
	defer r.Close()

	stats, err := r.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Snapshot version: %d (updated %s)\n",
		stats.Metadata.Version, stats.Metadata.LastUpdated.Format(time.RFC3339))
	fmt.Printf("Records: %d total, %d available, %d unavailable\n",
		stats.TotalRecords, stats.Available, stats.Unavailable)

	if stats.PricedRecords > 0 {
		fmt.Printf("Prices (%d records): min %s, max %s, avg %s, median %s\n",
			stats.PricedRecords,
			core.FormatPrice(stats.PriceMin),
			core.FormatPrice(stats.PriceMax),
			core.FormatPrice(int(stats.PriceAvg)),
			core.FormatPrice(int(stats.PriceMedian)))
	}

	fmt.Println("By protein:")
	for _, tag := range sortedKeys(stats.ByProtein) {
		fmt.Printf("  %-16s %d\n", tag, stats.ByProtein[tag])
	}
	fmt.Println("By dish type:")
	for _, tag := range sortedKeys(stats.ByDishType) {
		fmt.Printf("  %-16s %d\n", tag, stats.ByDishType[tag])
	}
	return nil
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
