package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/volform/internal/errx"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "volform",
	Short: "Edit how installer volumes are sized",
	Long: `volform edits the size settings of a volume: automatic, an exact size,
or a minimum/maximum range.

Volumes come from a YAML file holding either the volume being edited
(key "volume") or the templates a new volume is picked from (key
"templates"). A maximum size of -1 means unlimited.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initConfig() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/volform/config.yaml)")
	rootCmd.PersistentFlags().StringP("templates", "f", "", "Volume file with the volume to edit or the templates to pick from")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "Output format for volumes: json, yaml or cbor")
	rootCmd.PersistentFlags().String("events-log", "", "Append session events as JSON lines to this file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	viper.BindPFlag("templates", rootCmd.PersistentFlags().Lookup("templates"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("events.log", rootCmd.PersistentFlags().Lookup("events-log"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "volform"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("VOLFORM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return errx.Wrap(ErrReadConfig, err)
		}
	}

	level := slog.LevelWarn
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
