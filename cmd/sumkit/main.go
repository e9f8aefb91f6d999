// Command sumkit fits text to device screens: it derives character
// budgets from display geometry and generates layered summaries for
// one or many device profiles.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/randalmurphal/sumkit/profile"
)

var (
	// Global flags
	verbose    bool
	profileDir string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sumkit",
	Short: "Budget-constrained multi-profile summarization",
	Long: `sumkit converts free text into shorter variants that fit real
display surfaces. A device profile (screen size, font size, ruler,
buffer) yields a character budget; depth layers (headline, one_screen,
deep) split that budget; an optional persona reframes the result for a
target reader.

Profiles can be builtin names (laptop, phone, slides, tweet) or paths
to JSON/YAML/TOML profile documents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&profileDir, "profile-dir", "", "Directory of profile documents to load")

	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(multiCmd)
	rootCmd.AddCommand(triageCmd)
	rootCmd.AddCommand(profilesCmd)
}

// loadRegistry builds the profile registry: builtins plus any
// documents from --profile-dir.
func loadRegistry() (*profile.Registry, error) {
	if profileDir == "" {
		return profile.NewRegistry(), nil
	}
	return profile.LoadDir(profileDir)
}

// readText reads the text argument: a file path, or "-" for stdin.
func readText(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// splitList parses a comma-separated flag value.
func splitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
