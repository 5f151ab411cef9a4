package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"land-collector/config"
	"land-collector/models"
	"land-collector/regions"
	"land-collector/scraper/naver"
	"land-collector/services"
	"land-collector/storage"
	"land-collector/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	app := &cli.App{
		Name:      "land-collector",
		Usage:     "Collect Naver Land apartment complexes for Korean administrative regions",
		ArgsUsage: "REGION [REGION...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "clear-cache",
				Usage: "Delete the cached token first; with no regions, exit after clearing",
			},
			&cli.BoolFlag{
				Name:  "dev-plans",
				Usage: "Also fetch road, rail and district development plans",
			},
			&cli.BoolFlag{
				Name:  "no-probe",
				Usage: "Trust a fresh cached token without probing the portal",
			},
			&cli.BoolFlag{
				Name:  "strict-keywords",
				Usage: "Keep only complexes whose name contains one of the region keywords",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Value: cfg.OutputDir,
				Usage: "Directory for JSON, CSV and Markdown reports",
			},
			&cli.StringFlag{
				Name:  "regions-file",
				Value: cfg.RegionsFile,
				Usage: "YAML file with extra or overriding region descriptors",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			cfg.OutputDir = c.String("output-dir")
			cfg.RegionsFile = c.String("regions-file")
			return nil
		},
		Action: func(c *cli.Context) error {
			return collect(c, cfg, logger)
		},
		Commands: []*cli.Command{
			regionsCommand(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func regionsCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "regions",
		Usage: "List supported regions by province",
		Action: func(c *cli.Context) error {
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			provinces, groups := catalog.ByProvince()
			for _, p := range provinces {
				label := p
				if label == "" {
					label = "-"
				}
				fmt.Printf("%s: %s\n", label, strings.Join(groups[p], ", "))
			}
			return nil
		},
	}
}

func loadCatalog(cfg *config.Config) (*regions.Catalog, error) {
	catalog := regions.Default()
	if cfg.RegionsFile != "" {
		if err := catalog.LoadFile(cfg.RegionsFile); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func collect(c *cli.Context, cfg *config.Config, logger *utils.Logger) error {
	cache := storage.NewTokenCache(cfg.TokenCachePath, nil)

	if c.Bool("clear-cache") {
		if err := cache.Clear(); err != nil {
			return err
		}
		logger.Info("[token] Cache cleared: %s", cache.Path())
		if c.NArg() == 0 {
			return nil
		}
	}

	if c.NArg() == 0 {
		return errors.New("no region given (run `land-collector regions` to list supported regions)")
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// Every name is resolved before any network activity.
	seen := utils.NewKeySet()
	var targets []models.Region
	for _, name := range c.Args().Slice() {
		r, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		if !seen.Add(r.Name) {
			logger.Warn("Region %s given more than once, collecting it once", r.Name)
			continue
		}
		targets = append(targets, r)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := naver.NewClient(cfg, logger)
	var prober services.CredentialProber
	if cfg.ProbeEnabled && !c.Bool("no-probe") {
		prober = naver.NewProber(client, cfg.ProbeTimeout)
	}
	gate := services.NewCredentialGate(naver.NewBrowserProvider(cfg, logger), cache, prober, logger)
	stats := services.NewStatsService(logger)
	collector := services.NewCollector(
		gate,
		naver.NewFetcher(client, gate, cfg, logger),
		naver.NewPlanFetcher(client, cfg.FetchTimeout, cfg.RateLimitMs, logger),
		services.RegionFilter{RequireKeyword: c.Bool("strict-keywords")},
		stats,
		logger,
	)

	var store storage.ResultStore
	if cfg.PostgresEnabled {
		pw, err := storage.NewPostgresWriter(ctx, cfg.DSN(), &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("connect to PostgreSQL: %w", err)
		}
		defer pw.Close()
		store = pw
	}

	writers := []storage.ReportWriter{
		storage.NewJSONWriter(),
		storage.NewCSVWriter(),
		storage.NewMarkdownWriter(targets...),
	}
	opts := services.CollectOptions{DevelopmentPlans: c.Bool("dev-plans")}

	logger.Info("=== land-collector: %d region(s) ===", len(targets))
	started := time.Now()

	for _, region := range targets {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("interrupted: %w", err)
		}

		result, err := collector.Collect(ctx, region, opts)
		if err != nil {
			return err
		}

		paths, err := storage.WriteAll(result, cfg.OutputDir, writers...)
		if err != nil {
			return fmt.Errorf("write reports for %s: %w", region.Name, err)
		}
		logger.Info("[output] %s saved: %s", region.Name, strings.Join(paths, ", "))

		if store != nil {
			if err := store.Store(ctx, result); err != nil {
				logger.Error("[output] PostgreSQL write for %s failed: %v", region.Name, err)
			} else {
				logger.Info("[output] %s stored in PostgreSQL (run %s)", region.Name, result.RunID)
			}
		}

		stats.Print(result)
	}

	logger.Info("Done: %d region(s) in %v", len(targets), time.Since(started).Round(time.Millisecond))
	return nil
}
