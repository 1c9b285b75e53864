// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-fetcher CLI.
package main

import (
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// configUsed is the config file read by initConfig, logged once the logger
// is set up.
var configUsed string

// loadedSecrets holds credentials loaded from the secrets directory at startup.
var loadedSecrets = secrets.Secrets{}

var rootCmd = &cobra.Command{
	Use:   "pubmed-fetcher",
	Short: "Find PubMed papers with pharmaceutical or biotech authors",
	Long: `pubmed-fetcher searches PubMed, classifies every author as academic or
non-academic from their affiliation text, and reports the papers that have at
least one non-academic (industry) author.

Reports print as a console table by default and can be written as CSV, JSON,
YAML, or appended to a SQLite export database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(os.Stderr, debug)
		logConfig()

		// A missing .env is normal.
		_ = godotenv.Load()

		s, err := secrets.Load(viper.GetString("secrets_dir"))
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			slog.Debug("loaded secrets", "keys", slices.Sorted(maps.Keys(s)))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-fetcher.yaml or ~/.config/pubmed-fetcher/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets", "directory of credential files (ncbi-api-key, ncbi-email)")
	_ = viper.BindPFlag("secrets_dir", rootCmd.PersistentFlags().Lookup("secrets-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-fetcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-fetcher"))
		}
	}

	viper.SetEnvPrefix("PUBMED_FETCHER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configUsed = ""
	if err := viper.ReadInConfig(); err == nil {
		configUsed = viper.ConfigFileUsed()
	}
}

func logConfig() {
	if configUsed != "" {
		slog.Info("using config file", "path", configUsed)
	}
}

// setupLogger installs a text slog handler on w. LOG_LEVEL picks the level;
// debug forces DEBUG.
func setupLogger(w io.Writer, debug bool) {
	var level slog.Level
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
