package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pthm/prosecheck/internal/grammar"
	"github.com/pthm/prosecheck/internal/profile"
	"github.com/pthm/prosecheck/internal/ui"
)

var (
	// Global flags
	verbose     bool
	format      string
	locale      string
	profileFile string
	cfgFile     string
)

var globalUI *ui.UI

// RootCmd is the base command for prosecheck
var RootCmd = &cobra.Command{
	Use:   "prosecheck",
	Short: "Formality scoring and grammar checking for prose",
	Long: `prosecheck analyzes a piece of writing and reports how formal it
reads and which grammar issues it contains.

Formality is scored by a pretrained classifier when one is configured,
with a rule-based heuristic standing in whenever the model path is
unavailable. Grammar issues come from a LanguageTool server.`,
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&locale, "locale", "l", "en-US", "Locale profile to analyze with")
	RootCmd.PersistentFlags().StringVar(&profileFile, "profile", "", "Custom profile YAML (overrides --locale)")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/prosecheck/config.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "prosecheck"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("prosecheck")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("classifier.backend", "auto")
	viper.SetDefault("model.max_seq_len", 512)
	viper.SetDefault("languagetool.url", grammar.DefaultBaseURL)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: could not read config: %v\n", err)
		}
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadProfile resolves the active profile from the --profile and --locale
// flags. An explicit profile file wins.
func loadProfile() (*profile.Profile, error) {
	if profileFile != "" {
		return profile.LoadFromFile(profileFile)
	}
	return profile.Load(locale)
}

// GetUI returns the global UI, creating it on first use
func GetUI() *ui.UI {
	if globalUI == nil {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	}
	return globalUI
}
