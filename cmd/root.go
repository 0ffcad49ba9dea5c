package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kisan-backend/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "kisan",
	Short: "Kisan AI backend for farmers",
	Long: `Kisan AI answers farming questions, diagnoses crop photos, reports
mandi prices with sell/hold/wait advice, transcribes and speaks voice
messages and schedules daily crop tasks, in Indian languages.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/config.yml", "config file path")
}

// loadConfig reads the config and builds the logger it describes.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
