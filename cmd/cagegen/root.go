package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cagegen/cagegen/internal/cage"
	"github.com/cagegen/cagegen/internal/config"
	"github.com/cagegen/cagegen/internal/ioadapt"
	"github.com/cagegen/cagegen/internal/obslog"
	"github.com/cagegen/cagegen/internal/synth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Exit codes per spec.md §6: 0 success, nonzero on missing input file or
// malformed XYZ.
const (
	exitOK           = 0
	exitInputMissing = 1
	exitParseError   = 2
	exitExternalTool = 3
)

// radiusTablePath is the covalent-radius table location, matching the
// original's hardcoded "resources/rdc.dat".
const radiusTablePath = "resources/rdc.dat"

func newRootCommand() *cobra.Command {
	var (
		inputFile  string
		alpha      float64
		sizeMax    int
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "cagegen",
		Short: "Enumerate candidate molecular cages around a substrate",
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c.Flags())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inputFile, "input", "i", "", "substrate XYZ file")
	flags.Float64VarP(&alpha, "alpha", "a", 3.0, "alpha-shape resolution parameter")
	flags.IntVarP(&sizeMax, "size-max", "s", 5, "maximum chain length per bridging path")
	flags.IntVarP(&maxResults, "max-results", "r", 10, "maximum number of cages to emit")

	return cmd
}

func runGenerate(flags *pflag.FlagSet) error {
	opts, err := config.Load(flags)
	if err != nil {
		return err
	}
	if opts.InputFile == "" {
		return fmt.Errorf("cagegen: %w: no input file given (-i)", errInputMissing)
	}

	logger, err := obslog.New()
	if err != nil {
		return fmt.Errorf("cagegen: building logger: %w", err)
	}

	f, err := os.Open(opts.InputFile)
	if err != nil {
		return fmt.Errorf("cagegen: %w: %v", errInputMissing, err)
	}
	defer f.Close()

	rawAtoms, err := ioadapt.LoadXYZ(f)
	if err != nil {
		return fmt.Errorf("cagegen: %w: %v", errParse, err)
	}

	radiusFile, err := os.Open(radiusTablePath)
	if err != nil {
		return fmt.Errorf("cagegen: %w: %v", errInputMissing, err)
	}
	defer radiusFile.Close()

	radiusTable, err := ioadapt.LoadRadiusTable(radiusFile)
	if err != nil {
		return fmt.Errorf("cagegen: %w: %v", errParse, err)
	}

	logger.Info("substrate loaded", zap.Int("atoms", len(rawAtoms)), zap.String("file", opts.InputFile))

	runOpts := cage.Options{
		Alpha: opts.Alpha,
		Synth: synth.Options{
			SizeMax:                opts.SizeMax,
			AllowCarbonylStart:     opts.AllowCarbonylStart,
			RequireAromaticInChain: opts.RequireAromaticInChain,
		},
		MaxResults: opts.MaxResults,
	}

	basename := strings.TrimSuffix(filepath.Base(opts.InputFile), filepath.Ext(opts.InputFile))
	writer := newResultWriter(basename)

	ctx := context.Background()
	out, errc := cage.Run(ctx, rawAtoms, radiusTable, ioadapt.GiftWrapAlphaShape{}, runOpts)

	count := 0
	for c := range out {
		path, err := writer.write(c.Shell)
		if err != nil {
			logger.Error("failed to write cage", zap.Error(err))
			continue
		}
		logger.Info("cage written", zap.String("path", path))
		count++
	}

	if err := <-errc; err != nil {
		if errors.Is(err, cage.ErrNoResults) {
			logger.Warn("no connected cage was found", zap.Int("written", count))
			return nil
		}
		return fmt.Errorf("cagegen: %w", err)
	}

	logger.Info("run complete", zap.Int("cages", count))
	return nil
}

var (
	errInputMissing = errors.New("input missing")
	errParse        = errors.New("parse error")
)
