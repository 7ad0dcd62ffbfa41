// Package cli implements the tabata command-line interface using Cobra.
// The root command runs the terminal timer; the serve command delivers the
// pre-built browser front end.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tabatui/tabata/internal/app"
)

var (
	configPath string
	prefsPath  string
	themeName  string
	onSeconds  uint64
	offSeconds uint64
	cycles     uint32
)

var rootCmd = &cobra.Command{
	Use:   "tabata",
	Short: "Tabata - an interval timer for your terminal",
	Long: `Tabata is an interval timer. It loops between work and rest phases
until all cycles of a training are completed, drawing a progress ring and
ringing the terminal bell near phase boundaries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := app.Run(cmd.Context(), app.Options{
			ConfigPath: configPath,
			PrefsPath:  prefsPath,
			Theme:      themeName,
			On:         onSeconds,
			Off:        offSeconds,
			Cycles:     cycles,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "tabata: %v\n", err)
		}
		return err
	},
}

// Execute runs the root command until it finishes or a signal arrives.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "override tabata config path (optional)")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "override preferences path (optional)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "theme name (overrides config and prefs)")
	rootCmd.Flags().Uint64Var(&onSeconds, "on", 0, "work interval in seconds (overrides config)")
	rootCmd.Flags().Uint64Var(&offSeconds, "off", 0, "rest interval in seconds (overrides config)")
	rootCmd.Flags().Uint32Var(&cycles, "cycles", 0, "number of cycles (overrides config)")
}
