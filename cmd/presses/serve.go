// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/presses/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			return server.New(a.cfg, a.logger).Run(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides server.addr)")

	return cmd
}
