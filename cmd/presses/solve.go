// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/presses/batch"
	"github.com/katalvlaran/presses/machine"
	"github.com/katalvlaran/presses/presses"
)

// newSolveCmd builds the "lights" or "joltage" subcommand.
func newSolveCmd(a *app, name string) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   name + " FILE",
		Short: fmt.Sprintf("Sum the minimum %s presses over every machine in FILE (- for stdin)", name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := presses.ParseVariant(name)
			if err != nil {
				return err
			}
			return a.runSolve(cmd, v, args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print one line per machine before the total")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, v presses.Variant, path string, verbose bool) error {
	ms, err := readMachines(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	systems, err := batch.FromMachines(ms, v)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	bc, err := a.cfg.Batch(v)
	if err != nil {
		return err
	}
	bc.Logger = a.logger

	rep, err := batch.Solve(cmd.Context(), systems, bc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose {
		for _, r := range rep.Results {
			if r.Infeasible {
				fmt.Fprintf(out, "%s: infeasible\n", r.Name)
				continue
			}
			fmt.Fprintf(out, "%s: %d %v\n", r.Name, r.Cost, r.Presses)
		}
	}
	fmt.Fprintln(out, rep.Total)

	return nil
}

// readMachines parses path, or stdin when path is "-".
func readMachines(stdin io.Reader, path string) ([]machine.Machine, error) {
	if path == "-" {
		return machine.ParseAll(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ms, err := machine.ParseAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ms, nil
}
