package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/amnamine/djiblistore"
	"github.com/amnamine/djiblistore/catalog"
	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/lexicon"
	"github.com/amnamine/djiblistore/rank"
	"github.com/amnamine/djiblistore/scorer/embed"
	"github.com/amnamine/djiblistore/scorer/linear"
	"github.com/amnamine/djiblistore/synth"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "djiblistore",
		Usage: "Shopping query relevance engine: synthesize training data, train, search",
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
				Name:   "synthesize",
				Usage:  "Generate a labeled training table from a raw catalog dump",
				Action: synthesizeCommand,
				Flags: append(synthesisFlags(),
					&cli.StringFlag{
						Name:     "raw",
						Aliases:  []string{"r"},
						Usage:    "Path to the raw catalog JSON dump",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output CSV path",
						Value:   "training.csv",
					},
					&cli.StringFlag{
						Name:  "synonyms",
						Usage: "Path to a synonym table JSON (defaults to the built-in slang table)",
					},
				),
			},
			{
				Name:   "train",
				Usage:  "Fit a scorer and save the model bundle",
				Action: trainCommand,
				Flags: append(synthesisFlags(),
					&cli.StringFlag{
						Name:     "raw",
						Aliases:  []string{"r"},
						Usage:    "Path to the raw catalog JSON dump",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB bundle directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Existing training CSV (skips in-memory synthesis)",
					},
					&cli.StringFlag{
						Name:  "scorer",
						Usage: "Scorer implementation (linear, embed)",
						Value: linear.Kind,
					},
					&cli.StringFlag{
						Name:  "embed-host",
						Usage: "Embedding service host URL (scorer=embed)",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embed-model",
						Usage: "Embedding model name (scorer=embed)",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "synonyms",
						Usage: "Path to a synonym table JSON (defaults to the built-in slang table)",
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Rank the catalog for a query against a saved bundle",
				Action:    searchCommand,
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB bundle directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "raw",
						Aliases: []string{"r"},
						Usage:   "Raw catalog JSON dump, used to resolve product images",
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum relevance score for a hit",
						Value: rank.DefaultThreshold,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Maximum number of hits",
						Value: rank.DefaultTopK,
					},
					&cli.StringFlag{
						Name:  "embed-host",
						Usage: "Embedding service host URL (bundles trained with scorer=embed)",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embed-model",
						Usage: "Embedding model name (bundles trained with scorer=embed)",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "synonyms",
						Usage: "Path to a synonym table JSON (defaults to the built-in slang table)",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-query scoring deadline",
						Value: 10 * time.Second,
					},
				},
			},
		},
	}
}

// synthesisFlags are shared between synthesize and train.
func synthesisFlags() []cli.Flag {
	defaults := synth.DefaultConfig()
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "target-rows",
			Usage: "Desired total dataset size",
			Value: defaults.TargetRows,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Random seed for reproducible generation",
			Value: defaults.Seed,
		},
		&cli.StringFlag{
			Name:  "style",
			Usage: "Query generator style (keyword, phrase)",
			Value: string(defaults.Style),
		},
		&cli.Float64Flag{
			Name:  "clean-probability",
			Usage: "Chance a query survives typo injection untouched",
			Value: defaults.CleanProbability,
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Generation pool size (0 = one per CPU)",
		},
	}
}

func synthesizeCommand(c *cli.Context) error {
	ctx := context.Background()

	products, _, err := loadCatalog(c.String("raw"))
	if err != nil {
		return err
	}

	rows, err := synthesizeRows(ctx, c, products)
	if err != nil {
		return err
	}

	out, err := os.Create(c.String("out"))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := synth.WriteTable(out, rows); err != nil {
		return fmt.Errorf("failed to write training table: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Products: %d\n", len(products))
	fmt.Fprintf(os.Stderr, "Rows: %d\n", len(rows))
	fmt.Fprintf(os.Stderr, "Output: %s\n", c.String("out"))
	return nil
}

func trainCommand(c *cli.Context) error {
	ctx := context.Background()

	products, _, err := loadCatalog(c.String("raw"))
	if err != nil {
		return err
	}

	var rows []core.TrainingExample
	if csvPath := c.String("csv"); csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			return fmt.Errorf("failed to open training CSV: %w", err)
		}
		rows, err = synth.ReadTable(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to read training table: %w", err)
		}
	} else {
		rows, err = synthesizeRows(ctx, c, products)
		if err != nil {
			return err
		}
	}

	normalizer, err := loadNormalizer(c)
	if err != nil {
		return err
	}

	engine, err := newEngine(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer engine.Close()

	if err := engine.Train(ctx, c.String("scorer"), products, rows, normalizer); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Scorer: %s\n", c.String("scorer"))
	fmt.Fprintf(os.Stderr, "Products: %d\n", len(products))
	fmt.Fprintf(os.Stderr, "Training rows: %d\n", len(rows))
	fmt.Fprintf(os.Stderr, "Bundle: %s\n", c.String("db"))
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	engine, err := newEngine(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer engine.Close()

	normalizer, err := loadNormalizer(c)
	if err != nil {
		return err
	}

	var images catalog.ImageIndex
	if rawPath := c.String("raw"); rawPath != "" {
		entries, err := catalog.LoadRaw(rawPath)
		if err != nil {
			return fmt.Errorf("failed to load raw catalog: %w", err)
		}
		images = catalog.BuildImageIndex(entries)
	}

	service, err := engine.NewSearchService(ctx, normalizer, images,
		rank.WithThreshold(c.Float64("threshold")),
		rank.WithTopK(c.Int("top-k")),
	)
	if err != nil {
		return err
	}

	hits, err := service.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(hits)
}

// loadCatalog reads a raw dump and builds the deduplicated product table.
func loadCatalog(rawPath string) ([]core.Product, []catalog.RawEntry, error) {
	entries, err := catalog.LoadRaw(rawPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load raw catalog: %w", err)
	}

	classifier := lexicon.NewClassifier(lexicon.DefaultCategoryKeywords())
	products := catalog.Build(entries, classifier)
	if len(products) == 0 {
		return nil, nil, core.ErrNoProducts
	}
	return products, entries, nil
}

func synthesizeRows(ctx context.Context, c *cli.Context, products []core.Product) ([]core.TrainingExample, error) {
	config := synth.DefaultConfig()
	config.TargetRows = c.Int("target-rows")
	config.Seed = c.Int64("seed")
	config.Style = synth.GeneratorStyle(c.String("style"))
	config.CleanProbability = c.Float64("clean-probability")
	config.Workers = c.Int("workers")

	synthesizer, err := synth.New(config)
	if err != nil {
		return nil, err
	}
	return synthesizer.Synthesize(ctx, products)
}

func loadNormalizer(c *cli.Context) (*lexicon.Normalizer, error) {
	table := lexicon.DefaultSynonyms()
	if path := c.String("synonyms"); path != "" {
		var err error
		table, err = lexicon.LoadSynonyms(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load synonym table: %w", err)
		}
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid synonym table: %w", err)
	}
	return lexicon.NewNormalizer(table), nil
}

// newEngine opens the bundle store with embed settings from flags.
func newEngine(c *cli.Context) (*djiblistore.Engine, error) {
	return djiblistore.NewEngine(c.String("db"),
		djiblistore.WithEmbedConfig(embed.NewConfig(
			embed.WithHost(c.String("embed-host")),
			embed.WithModel(c.String("embed-model")),
		)),
	)
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
