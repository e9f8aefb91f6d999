package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randalmurphal/sumkit/budget"
	"github.com/randalmurphal/sumkit/summarize"
)

var (
	sumProfile  string
	sumWidth    int
	sumHeight   int
	sumFont     int
	sumRuler    int
	sumBuffer   float64
	sumProgress bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize text to fit one display budget",
	Long: `Fits text into the character budget of a single display.
Reads from the file argument, or stdin when the argument is "-".

The budget comes from --profile, or from explicit geometry flags:
  sumkit summarize notes.txt --profile phone
  cat notes.txt | sumkit summarize - --width 1024 --height 768`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&sumProfile, "profile", "", "Profile name or document path")
	summarizeCmd.Flags().IntVar(&sumWidth, "width", 0, "Screen width in pixels")
	summarizeCmd.Flags().IntVar(&sumHeight, "height", 0, "Screen height in pixels")
	summarizeCmd.Flags().IntVar(&sumFont, "font", budget.DefaultFontSizePx, "Font size in pixels")
	summarizeCmd.Flags().IntVar(&sumRuler, "ruler", budget.DefaultRulerColumns, "Editor ruler column cap")
	summarizeCmd.Flags().Float64Var(&sumBuffer, "buffer", budget.DefaultBuffer, "Safety buffer in (0, 1]")
	summarizeCmd.Flags().BoolVar(&sumProgress, "progress", false, "Show budget usage on stderr")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	text, err := readText(args[0])
	if err != nil {
		return err
	}

	b, err := resolveBudget()
	if err != nil {
		return err
	}
	logger.Debug("summarizing", zap.Int("target_chars", b.TargetChars))

	summary := summarize.Summarize(text, b.TargetChars, 0)
	fmt.Println(summary)

	if sumProgress {
		used := utf8.RuneCountInString(summary)
		fmt.Fprintln(os.Stderr, budget.ProgressBar(used, b.TargetChars, 40))
	}
	return nil
}

// resolveBudget computes the budget from --profile when set, otherwise
// from the geometry flags.
func resolveBudget() (budget.Budget, error) {
	if sumProfile != "" {
		reg, err := loadRegistry()
		if err != nil {
			return budget.Budget{}, err
		}
		prof, err := reg.Load(sumProfile)
		if err != nil {
			return budget.Budget{}, err
		}
		return budget.Compute(prof.BudgetParams())
	}
	if sumWidth == 0 || sumHeight == 0 {
		return budget.Budget{}, fmt.Errorf("either --profile or both --width and --height are required")
	}
	return budget.Compute(budget.Params{
		WidthPx:      sumWidth,
		HeightPx:     sumHeight,
		FontSizePx:   sumFont,
		RulerColumns: sumRuler,
		Buffer:       sumBuffer,
	})
}
