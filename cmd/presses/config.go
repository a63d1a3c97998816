// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/presses/config"
)

// load resolves the configuration: file and environment first, then any
// flag the user set explicitly.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = a.flags.workers
	}
	if flags.Changed("policy") {
		cfg.Policy = a.flags.policy
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.flags.logFormat
	}
	if flags.Changed("time-limit") {
		d, err := time.ParseDuration(a.flags.timeLimit)
		if err != nil {
			return fmt.Errorf("--time-limit: %w", err)
		}
		cfg.Search.TimeLimit = d
	}
	if flags.Changed("max-nodes") {
		cfg.Search.MaxNodes = a.flags.maxNodes
	}
	if a.flags.noPrune {
		cfg.Search.Prune = false
	}
	if flags.Changed("addr") {
		addr, _ := flags.GetString("addr")
		cfg.Server.Addr = addr
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.NewLogger(a.stderr)

	return nil
}
