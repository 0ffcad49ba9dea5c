package cmd

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"kisan-backend/internal/advice"
	"kisan-backend/internal/models"
)

var (
	adviseCrop   string
	advisePrices []float64
	adviseLang   string
)

var adviseCmd = &cobra.Command{
	Use:     "advise",
	Short:   "Print sell/hold/wait advice for a price series",
	Example: `  kisan advise --crop onion --prices 18,19.5,21 --lang en`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(advisePrices) == 0 {
			return errors.New("--prices is required")
		}
		history := advice.FromPrices(advisePrices, models.NewDate(time.Now()))

		out := struct {
			CropName    string              `json:"crop_name,omitempty"`
			PriceTrends []models.PriceTrend `json:"price_trends"`
			Advice      models.MarketAdvice `json:"advice"`
		}{
			CropName:    adviseCrop,
			PriceTrends: history,
			Advice:      advice.Advise(history, adviseLang),
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(out)
	},
}

func init() {
	adviseCmd.Flags().StringVar(&adviseCrop, "crop", "", "crop name")
	adviseCmd.Flags().Float64SliceVar(&advisePrices, "prices", nil, "prices per kg, oldest first")
	adviseCmd.Flags().StringVar(&adviseLang, "lang", "hi", "language code")
	rootCmd.AddCommand(adviseCmd)
}
