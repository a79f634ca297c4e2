package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pixelforge/pixelcat"
	"github.com/pixelforge/pixelcat/utils"
)

var (
	flagAssets     string
	flagConfig     string
	flagNum        int
	flagStart      int
	flagResolution int
	flagSeed       int64
	flagOut        string
	flagVerbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pixelcat",
		Short:        "Generate a unique pixel-art cat collection from layered assets",
		RunE:         run,
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&flagAssets, "assets", "assets", "assets root folder")
	cmd.Flags().StringVar(&flagConfig, "config", "config.json", "config json path")
	cmd.Flags().IntVar(&flagNum, "num", 10, "how many items to generate")
	cmd.Flags().IntVar(&flagStart, "start", 1, "start edition number")
	cmd.Flags().IntVar(&flagResolution, "resolution", 0, "output resolution, overrides config")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&flagOut, "out", "", "output directory, overrides config")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	logger := initLogger(flagVerbose).With().Str("run_id", runID).Logger()

	cfg, err := pixelcat.LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	palette := cfg.Palette
	if len(palette) == 0 && cfg.PaletteImage != "" {
		palette, err = extractPalette(cfg, logger)
		if err != nil {
			return err
		}
	}

	resolution := cfg.Resolution
	if flagResolution > 0 {
		resolution = flagResolution
	}
	outDir := cfg.OutputDir
	if flagOut != "" {
		outDir = flagOut
	}

	started := time.Now()
	res, err := pixelcat.GenerateCollection(pixelcat.Options{
		AssetsRoot:  flagAssets,
		LayersOrder: cfg.LayersOrder,
		OutputDir:   outDir,
		Count:       flagNum,
		StartID:     flagStart,
		Resolution:  resolution,
		Seed:        flagSeed,
		Palette:     palette,
		NamePrefix:  cfg.NamePrefix,
		Description: cfg.Description,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	if err := pixelcat.WriteRarityReport(outDir, runID, res.Index); err != nil {
		return err
	}
	logger.Info().
		Int("generated", res.Generated).
		Dur("elapsed", time.Since(started)).
		Msg("collection finished")
	return nil
}

func extractPalette(cfg pixelcat.Config, logger zerolog.Logger) ([]string, error) {
	method, err := utils.ParsePaletteMethod(cfg.PaletteMethod)
	if err != nil {
		return nil, err
	}
	img, err := utils.LoadImage(cfg.PaletteImage)
	if err != nil {
		return nil, fmt.Errorf("palette image: %w", err)
	}
	colors := utils.ExtractPalette(img, cfg.PaletteSize, method)
	utils.SortPaletteByBrightness(colors)
	hexes := utils.HexStrings(colors)
	logger.Info().
		Strs("palette", hexes).
		Stringer("method", method).
		Str("source", cfg.PaletteImage).
		Msg("extracted palette from reference image")
	return hexes, nil
}

func initLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
