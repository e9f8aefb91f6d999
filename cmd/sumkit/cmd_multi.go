package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randalmurphal/sumkit/render"
	"github.com/randalmurphal/sumkit/summarize"
)

var (
	multiProfiles string
	multiLayers   string
	multiPersona  string
	multiFormat   string
)

var multiCmd = &cobra.Command{
	Use:   "multi [file]",
	Short: "Summarize text for several device profiles at once",
	Long: `Generates one summary per (profile, layer) pair.

Examples:
  sumkit multi notes.txt --profiles phone,laptop
  sumkit multi - --profiles tweet --layers headline --persona developer --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runMulti,
}

func init() {
	multiCmd.Flags().StringVar(&multiProfiles, "profiles", "phone,laptop", "Comma-separated profile names or document paths")
	multiCmd.Flags().StringVar(&multiLayers, "layers", "", "Comma-separated layer names (default: all)")
	multiCmd.Flags().StringVar(&multiPersona, "persona", "", "Persona name (developer, designer, manager)")
	multiCmd.Flags().StringVar(&multiFormat, "format", "stacked", "Output format: stacked, compact, json")
}

func runMulti(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(multiFormat)
	if err != nil {
		return err
	}

	res, err := runMultiProfile(args[0])
	if err != nil {
		return err
	}

	out, err := render.Render(res, format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// runMultiProfile reads the input and runs the orchestrator with the
// shared multi/triage flags. Per-profile failures go to stderr; the
// call fails only when no profile succeeded.
func runMultiProfile(path string) (*summarize.Result, error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}

	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	res, err := summarize.MultiProfile(text, summarize.Request{
		Registry: reg,
		Profiles: splitList(multiProfiles),
		Layers:   splitList(multiLayers),
		Persona:  multiPersona,
	})
	if err != nil {
		return nil, err
	}

	for _, fail := range res.Failures {
		logger.Warn("profile skipped", zap.String("profile", fail.Profile), zap.Error(fail.Err))
		fmt.Fprintf(os.Stderr, "warning: %v\n", fail)
	}
	if len(res.Profiles) == 0 && len(res.Failures) > 0 {
		return nil, fmt.Errorf("no profile succeeded")
	}
	return res, nil
}
