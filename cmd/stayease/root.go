package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stayease/navbar/logging"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stayease",
	Short: "Serve the StayEase site with a live navigation bar",
	Long: `stayease renders the StayEase marketing site. The navigation bar state
(mobile menu, hide-on-scroll header, active link) is kept per browser tab on
the server and pushed to the page over a websocket.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stayease.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".stayease")
	}

	viper.SetEnvPrefix("stayease")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			createExampleConfig()
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

func createExampleConfig() {
	exampleConfig := `
port = 8080
dev = false
assetsdir = "./public/assets"
loglevel = "info"
`
	configPath := "./.stayease.toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Warn("Could not create example config file", "path", configPath, "error", err)

		return
	}

	slog.Info("Example config file created", "path", configPath)
}

// setup binds config to flags and installs the process logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(cmd, viper.GetViper()); err != nil {
		return err
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	slog.SetDefault(logging.NewLogger(os.Stderr, level))
	slog.Debug("Config loaded", "file", viper.ConfigFileUsed(), "settings", viper.AllSettings())

	return nil
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Since viper does case-insensitive comparisons, we only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if bindErr != nil || f.Changed || !v.IsSet(configName) {
			return
		}

		val := v.Get(configName)

		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			bindErr = fmt.Errorf("could not set flag %s from config: %w", f.Name, err)
		}
	})

	return bindErr
}
