package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stayease/navbar/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(cfg *web.Config) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVarP(&cfg.Port, "port", "p", 8080, "")
	cmd.Flags().BoolVar(&cfg.Dev, "dev", false, "")
	cmd.Flags().StringVar(&cfg.AssetsDir, "assets-dir", "./public/assets", "")

	return cmd
}

func TestBindFlags(t *testing.T) {
	t.Run("config fills unset flags", func(t *testing.T) {
		var cfg web.Config

		cmd := newTestCommand(&cfg)
		require.NoError(t, cmd.ParseFlags([]string{}))

		v := viper.New()
		v.Set("port", 9100)
		v.Set("assetsdir", "/srv/assets")
		v.Set("dev", true)

		require.NoError(t, bindFlags(cmd, v))

		assert.Equal(t, 9100, cfg.Port)
		assert.Equal(t, "/srv/assets", cfg.AssetsDir)
		assert.True(t, cfg.Dev)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		var cfg web.Config

		cmd := newTestCommand(&cfg)
		require.NoError(t, cmd.ParseFlags([]string{"--port", "7000"}))

		v := viper.New()
		v.Set("port", 9100)

		require.NoError(t, bindFlags(cmd, v))

		assert.Equal(t, 7000, cfg.Port)
		assert.Equal(t, "./public/assets", cfg.AssetsDir)
	})

	t.Run("bad value is an error", func(t *testing.T) {
		var cfg web.Config

		cmd := newTestCommand(&cfg)
		require.NoError(t, cmd.ParseFlags([]string{}))

		v := viper.New()
		v.Set("port", "eighty")

		err := bindFlags(cmd, v)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})
}

func TestServeCommandRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"serve"})

	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("assets-dir"))
}
