package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cliquecover/cliquecover"
	"github.com/katalvlaran/cliquecover/codec"
)

// runSolve decodes the input graph, runs the best-of-N heuristic and prints
// one token per clique on a single line.
func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	cfg := a.cfg

	format, err := codec.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	raw, err := codec.ResolveInput(a.fs, args[0])
	if err != nil {
		return err
	}
	adj, err := codec.Decode(format, raw)
	if err != nil {
		return errors.Wrap(err, "decode input")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.Info("solving",
		zap.Int("vertices", adj.Order()),
		zap.Int("edges", adj.Edges()),
		zap.Int("iterations", cfg.Iterations),
		zap.Int64("seed", seed),
	)

	res, err := cliquecover.Solve(adj, cliquecover.Options{
		Iterations:  cfg.Iterations,
		Seed:        seed,
		StopAtBound: cfg.StopAtBound,
		OnTrial: func(trial int, p cliquecover.Partition) {
			a.log.Debug("trial", zap.Int("trial", trial), zap.Int("cliques", p.Len()))
		},
		OnImprove: func(trial int, p cliquecover.Partition) {
			a.log.Info("improved", zap.Int("trial", trial), zap.Int("cliques", p.Len()))
		},
	})
	if err != nil {
		return err
	}
	a.log.Info("done",
		zap.Int("cliques", res.Partition.Len()),
		zap.Int("best_trial", res.BestTrial),
		zap.Int("trials", res.Trials),
		zap.Int("lower_bound", res.LowerBound),
	)

	if cfg.Verify {
		if err := cliquecover.Validate(adj, res.Partition); err != nil {
			return errors.Wrap(err, "verify")
		}
	}

	line, err := codec.FormatPartition(res.Partition)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, line)
	if cfg.Solution {
		fmt.Fprintln(out, res.Partition.String())
		fmt.Fprintf(out, "Len: %d\n", res.Partition.Len())
	}

	return nil
}
