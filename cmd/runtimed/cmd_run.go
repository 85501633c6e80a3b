// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/runtime/config"
	"gitlab.com/accumulatenetwork/runtime/internal/logging"
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"gitlab.com/accumulatenetwork/runtime/pkg/events"
	"gitlab.com/accumulatenetwork/runtime/pkg/runtime"
)

var cmdRun = &cobra.Command{
	Use:   "run [blocks.yaml]",
	Short: "Execute blocks read from a YAML file, or stdin",
	Args:  cobra.MaximumNArgs(1),
	Run:   runBlocks,
}

var flagRun struct {
	Dump    bool
	Metrics string
}

func init() {
	cmdMain.AddCommand(cmdRun)
	cmdRun.Flags().BoolVar(&flagRun.Dump, "dump", false, "Dump the final state instead of printing a summary")
	cmdRun.Flags().StringVar(&flagRun.Metrics, "metrics", "", "Write metrics to this file in the Prometheus text format")
}

func runBlocks(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	check(err)

	logger, err := newLogger(cfg)
	check(err)

	input := io.Reader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		checkf(err, "open %s", args[0])
		defer f.Close()
		input = f
	}

	opts := runOptions{
		Genesis: &cfg.Genesis,
		Logger:  logger,
		Dump:    flagRun.Dump,
	}

	var reg *prometheus.Registry
	if flagRun.Metrics != "" {
		reg = prometheus.NewRegistry()
		opts.Registry = reg
	}
	err = executeBlocks(cmd.Context(), opts, input, cmd.OutOrStdout())

	// Write the metrics even if a block was rejected
	if reg != nil {
		checkf(prometheus.WriteToTextfile(flagRun.Metrics, reg), "write metrics")
	}
	check(err)
}

type runOptions struct {
	Genesis  *config.Genesis
	Logger   *slog.Logger
	Registry prometheus.Registerer
	Dump     bool
}

// executeBlocks seeds a runtime from the genesis, executes the blocks read
// from input in order, and prints the failed extrinsics and the final state
// to out. It stops at the first rejected block.
func executeBlocks(ctx context.Context, opts runOptions, input io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	blocks, err := decodeBlocks(input)
	if err != nil {
		return err
	}

	bus := events.NewBus(logger)
	rec, cancel := events.Record(bus)
	defer cancel()
	events.SubscribeSync(bus, func(e events.DidFailExtrinsic) {
		printFailure(out, e)
	})

	rtOpts := []runtime.Option{
		runtime.WithLogger(logger),
		runtime.WithEventBus(bus),
	}
	if opts.Registry != nil {
		rtOpts = append(rtOpts, runtime.WithMetrics(runtime.NewMetrics(opts.Registry)))
	}
	r := runtime.New(rtOpts...)

	if opts.Genesis != nil {
		err = opts.Genesis.Apply(r)
		if err != nil {
			return errors.UnknownError.WithFormat("apply genesis: %w", err)
		}
	}

	for i, block := range blocks {
		ctx := logging.With(ctx, "block", i)
		logger.DebugContext(ctx, "Executing block", "number", block.Header.BlockNumber, "extrinsics", len(block.Extrinsics))

		err = r.ExecuteBlock(block)
		if err != nil {
			logger.ErrorContext(ctx, "Stopping", "error", err)
			printState(out, r.State())
			return err
		}
	}

	if opts.Dump {
		_, err = io.WriteString(out, r.State().String())
		return errors.UnknownError.Wrap(err)
	}
	printState(out, r.State())
	printSummary(out, rec)
	return nil
}
