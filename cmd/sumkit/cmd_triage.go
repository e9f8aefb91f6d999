package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/sumkit/render"
)

var (
	triageInfo  bool
	triageWidth int
)

var triageCmd = &cobra.Command{
	Use:   "triage [file]",
	Short: "Compare summaries across profiles on a triage board",
	Long: `Renders a side-by-side triage board: one table per layer, one
row per profile, so the same content can be compared across devices.

Example:
  sumkit triage incident.txt --profiles phone,laptop,tweet --profile-info`,
	Args: cobra.ExactArgs(1),
	RunE: runTriage,
}

func init() {
	triageCmd.Flags().StringVar(&multiProfiles, "profiles", "phone,laptop", "Comma-separated profile names or document paths")
	triageCmd.Flags().StringVar(&multiLayers, "layers", "", "Comma-separated layer names (default: all)")
	triageCmd.Flags().StringVar(&multiPersona, "persona", "", "Persona name (developer, designer, manager)")
	triageCmd.Flags().BoolVar(&triageInfo, "profile-info", false, "Show profile geometry and budgets first")
	triageCmd.Flags().IntVar(&triageWidth, "board-width", render.DefaultBoardWidth, "Board rendering width")
}

func runTriage(cmd *cobra.Command, args []string) error {
	res, err := runMultiProfile(args[0])
	if err != nil {
		return err
	}

	board := render.NewBoard()
	board.Width = triageWidth

	if triageInfo {
		fmt.Println(board.ProfileInfo(res))
		fmt.Println()
	}
	fmt.Println(board.Render(res))
	return nil
}
