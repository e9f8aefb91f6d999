package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randalmurphal/sumkit/budget"
	"github.com/randalmurphal/sumkit/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect and watch device profiles",
	Long: `Work with device profiles.

Available subcommands:
  list   - List registered profile names
  show   - Show one profile and its derived budget
  schema - Print the JSON schema for profile documents
  watch  - Watch --profile-dir and log registry reloads`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered profile names",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one profile and its derived budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		prof, err := reg.Load(args[0])
		if err != nil {
			return err
		}
		b, err := budget.Compute(prof.BudgetParams())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(prof, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		fmt.Println(b.String())
		return nil
	},
}

var profilesSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for profile documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := profile.DocumentSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

var profilesWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch --profile-dir and log registry reloads",
	Long: `Watches the profile directory and logs every registry rebuild
until interrupted. Requires --profile-dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileDir == "" {
			return fmt.Errorf("--profile-dir is required for watch")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		updates, err := profile.WatchDir(ctx, profileDir)
		if err != nil {
			return err
		}

		for reg := range updates {
			logger.Info("profiles reloaded",
				zap.String("dir", profileDir),
				zap.Strings("names", reg.Names()))
		}
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesSchemaCmd)
	profilesCmd.AddCommand(profilesWatchCmd)
}
