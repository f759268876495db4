// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tomtom215/cropwise/internal/config"
	"github.com/tomtom215/cropwise/internal/dataset"
	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/recommend"
	"github.com/tomtom215/cropwise/internal/validation"
)

const name = "cropctl"

const (
	flagLogLevel = "log-level"
	flagDataset  = "dataset"
	flagDriver   = "driver"
	flagCatalog  = "catalog"
	flagFormat   = "format"
)

// Feature flag names, in FeatureVector order.
const (
	flagN           = "n"
	flagP           = "p"
	flagK           = "k"
	flagTemperature = "temperature"
	flagHumidity    = "humidity"
	flagPH          = "ph"
	flagRainfall    = "rainfall"
)

func datasetFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagDataset,
		Aliases: []string{"d"},
		Value:   "data/crops.csv",
		Usage:   "Path to the reference table (CSV, or Parquet with --driver duckdb)",
		Sources: cli.EnvVars("DATASET_PATH"),
	}
}

func driverFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagDriver,
		Value:   config.DriverCSV,
		Usage:   fmt.Sprintf("Dataset driver (%s or %s)", config.DriverCSV, config.DriverDuckDB),
		Sources: cli.EnvVars("DATASET_DRIVER"),
	}
}

func catalogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagCatalog,
		Usage:   "YAML file overriding crop images and descriptions",
		Sources: cli.EnvVars("CATALOG_PATH"),
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(FormatTable),
		Usage:   fmt.Sprintf("Output format (%s)", SupportedFormats()),
	}
}

// NewCommand returns the cropctl root command.
func NewCommand(version string) *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Score soil and climate readings against the crop reference table",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagLogLevel,
				Value:   "warn",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := cmd.String(flagLogLevel)
			if !logging.ValidLevel(level) {
				return ctx, fmt.Errorf("invalid log level %q", level)
			}
			logging.Init(logging.Config{
				Level:  level,
				Format: "console",
				Output: errWriter(cmd),
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			recommendCmd(),
			cropsCmd(),
		},
	}
}

func featureFlag(flagName, usage string) *cli.FloatFlag {
	return &cli.FloatFlag{Name: flagName, Usage: usage, Required: true}
}

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Rank the closest crops for one set of readings",
		Description: `Scores every reference row against the readings and prints the best
row of each of the three closest crops with its distance. Lower is closer.`,
		Flags: []cli.Flag{
			featureFlag(flagN, "Nitrogen content"),
			featureFlag(flagP, "Phosphorus content"),
			featureFlag(flagK, "Potassium content"),
			featureFlag(flagTemperature, "Temperature in degrees Celsius"),
			featureFlag(flagHumidity, "Relative humidity in percent"),
			featureFlag(flagPH, "Soil pH"),
			featureFlag(flagRainfall, "Rainfall in mm"),
			datasetFlag(),
			driverFlag(),
			catalogFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := ParseFormat(cmd.String(flagFormat))
			if err != nil {
				return err
			}

			features := featuresFromCmd(cmd)
			if verr := validation.ValidateStruct(&features); verr != nil {
				return verr
			}

			matcher, err := loadMatcher(ctx, cmd)
			if err != nil {
				return err
			}

			ranking, err := Rank(ctx, matcher, features)
			if err != nil {
				return err
			}
			return NewWriter(format, outWriter(cmd)).Write(ranking)
		},
	}
}

func cropsCmd() *cli.Command {
	return &cli.Command{
		Name:  "crops",
		Usage: "List the crops in the reference table with their row counts",
		Flags: []cli.Flag{
			datasetFlag(),
			driverFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := ParseFormat(cmd.String(flagFormat))
			if err != nil {
				return err
			}

			table, err := loadTable(ctx, cmd)
			if err != nil {
				return err
			}
			return NewWriter(format, outWriter(cmd)).Write(CropList(table.CropCounts()))
		},
	}
}

func featuresFromCmd(cmd *cli.Command) recommend.FeatureVector {
	return recommend.FeatureVector{
		N:           cmd.Float(flagN),
		P:           cmd.Float(flagP),
		K:           cmd.Float(flagK),
		Temperature: cmd.Float(flagTemperature),
		Humidity:    cmd.Float(flagHumidity),
		PH:          cmd.Float(flagPH),
		Rainfall:    cmd.Float(flagRainfall),
	}
}

// Rank scores features and attaches catalog metadata to each ranked row.
func Rank(ctx context.Context, matcher *recommend.Matcher, features recommend.FeatureVector) (Ranking, error) {
	scored, err := matcher.Rank(ctx, features)
	if err != nil {
		return nil, err
	}

	catalog := matcher.Catalog()
	ranking := make(Ranking, 0, len(scored))
	for i, s := range scored {
		ranking = append(ranking, RankedCrop{
			Rank:        i + 1,
			Crop:        s.Crop,
			Score:       s.Score,
			Image:       catalog.Image(s.Crop),
			Description: catalog.Description(s.Crop),
		})
	}
	return ranking, nil
}

func loadTable(ctx context.Context, cmd *cli.Command) (*recommend.Table, error) {
	return dataset.Load(ctx, config.DatasetConfig{
		Path:   cmd.String(flagDataset),
		Driver: cmd.String(flagDriver),
	})
}

func loadMatcher(ctx context.Context, cmd *cli.Command) (*recommend.Matcher, error) {
	table, err := loadTable(ctx, cmd)
	if err != nil {
		return nil, err
	}
	catalog, err := recommend.LoadCatalog(cmd.String(flagCatalog))
	if err != nil {
		return nil, err
	}
	return recommend.NewMatcher(table, catalog, recommend.WithLogger(logging.WithComponent(name))), nil
}

func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
