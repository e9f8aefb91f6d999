package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randalmurphal/sumkit/budget"
)

var (
	budgetWidth  int
	budgetHeight int
	budgetFont   int
	budgetRuler  int
	budgetBuffer float64
	budgetJSON   bool
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Compute the character budget for a display",
	Long: `Derives a character budget from screen geometry.

Example:
  sumkit budget --width 1920 --height 1080 --font 16`,
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().IntVar(&budgetWidth, "width", 0, "Screen width in pixels (required)")
	budgetCmd.Flags().IntVar(&budgetHeight, "height", 0, "Screen height in pixels (required)")
	budgetCmd.Flags().IntVar(&budgetFont, "font", budget.DefaultFontSizePx, "Font size in pixels")
	budgetCmd.Flags().IntVar(&budgetRuler, "ruler", budget.DefaultRulerColumns, "Editor ruler column cap")
	budgetCmd.Flags().Float64Var(&budgetBuffer, "buffer", budget.DefaultBuffer, "Safety buffer in (0, 1]")
	budgetCmd.Flags().BoolVar(&budgetJSON, "json", false, "Emit JSON instead of the pretty form")
	_ = budgetCmd.MarkFlagRequired("width")
	_ = budgetCmd.MarkFlagRequired("height")
}

// budgetView mirrors the budget's wire shape for --json output.
type budgetView struct {
	Columns          int `json:"columns"`
	Lines            int `json:"lines"`
	EffectiveColumns int `json:"effective_columns"`
	CharBudget       int `json:"char_budget"`
	TargetChars      int `json:"target_chars"`
}

func runBudget(cmd *cobra.Command, args []string) error {
	b, err := budget.Compute(budget.Params{
		WidthPx:      budgetWidth,
		HeightPx:     budgetHeight,
		FontSizePx:   budgetFont,
		RulerColumns: budgetRuler,
		Buffer:       budgetBuffer,
	})
	if err != nil {
		return err
	}
	logger.Debug("budget computed",
		zap.Int("width_px", budgetWidth),
		zap.Int("height_px", budgetHeight),
		zap.Int("target_chars", b.TargetChars))

	if budgetJSON {
		out, err := json.MarshalIndent(budgetView{
			Columns:          b.Columns,
			Lines:            b.Lines,
			EffectiveColumns: b.EffectiveColumns,
			CharBudget:       b.CharBudget,
			TargetChars:      b.TargetChars,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(b.String())
	return nil
}
