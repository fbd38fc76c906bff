package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/stayease/navbar/web"
)

var serveConfig web.Config

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site",
	Long:  `Serve the StayEase pages, the live navbar endpoint and prometheus metrics.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return web.StartServer(ctx, serveConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&serveConfig.Port, "port", "p", 8080,
		"Port on which server should be watching")

	serveCmd.Flags().BoolVar(&serveConfig.Dev,
		"dev",
		false,
		"Enable developer mode: no caching of static files, live connections from any origin")

	serveCmd.Flags().StringVar(&serveConfig.AssetsDir,
		"assets-dir",
		"./public/assets",
		"Directory served under /assets, holding the logo image")
}
