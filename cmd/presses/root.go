// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/presses/config"
)

// rootFlags are the persistent flags shared by every subcommand. They
// override the configuration file only when set explicitly.
type rootFlags struct {
	configPath string
	workers    int
	policy     string
	logLevel   string
	logFormat  string
	timeLimit  string
	maxNodes   int64
	noPrune    bool
}

// app carries what subcommands need after PersistentPreRunE.
type app struct {
	flags  rootFlags
	cfg    config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "presses",
		Short:         "Minimum button presses for counter machines",
		Long:          "presses reads machine descriptions, one per line, and reports the fewest total\nbutton presses reaching each machine's lights diagram or joltage targets.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "path to a YAML configuration file")
	pf.IntVarP(&a.flags.workers, "workers", "w", 0, "machines solved concurrently (0 = GOMAXPROCS)")
	pf.StringVar(&a.flags.policy, "policy", "", `infeasible machines: "skip" (count 0) or "fail"`)
	pf.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "text or json")
	pf.StringVar(&a.flags.timeLimit, "time-limit", "", "per-machine search budget, e.g. 2s (0 = none)")
	pf.Int64Var(&a.flags.maxNodes, "max-nodes", 0, "per-machine search node budget (0 = unlimited)")
	pf.BoolVar(&a.flags.noPrune, "no-prune", false, "disable branch-and-bound pruning (exhaustive search)")

	root.AddCommand(
		newSolveCmd(a, "lights"),
		newSolveCmd(a, "joltage"),
		newServeCmd(a),
	)

	return root
}
