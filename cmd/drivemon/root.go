package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kostyay/drivemon/internal/config"
	"github.com/kostyay/drivemon/internal/hw"
	"github.com/kostyay/drivemon/internal/output"
	"github.com/kostyay/drivemon/internal/params"
	"github.com/kostyay/drivemon/internal/source"
	"github.com/kostyay/drivemon/internal/status"
	"github.com/kostyay/drivemon/internal/ui"
)

var (
	jsonOutput   bool
	sourceName   string
	platformName string
	refreshFlag  time.Duration
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output one classified snapshot as JSON (for scripting/agent consumption)")
	rootCmd.PersistentFlags().StringVar(&sourceName, "source", "", "Telemetry source: sim or host (default from settings)")
	rootCmd.PersistentFlags().StringVar(&platformName, "platform", "", "Platform variant: pc, eon or tici (default autodetected)")
	rootCmd.PersistentFlags().DurationVar(&refreshFlag, "refresh", 0, "Telemetry refresh interval (default from settings)")
}

var rootCmd = &cobra.Command{
	Use:   "drivemon",
	Short: "Device status panel - classify and display live vehicle telemetry",
	Long: `drivemon renders live device and vehicle telemetry as a compact status
panel: connectivity, thermals, vehicle interface/GPS, network signal and
battery.

  drivemon                 # TUI panel fed by the scripted scenario
  drivemon --source host   # overlay real host sensor/network readings
  drivemon --json          # one classified snapshot as JSON`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.InitSettings(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: using default settings: %v\n", err)
		}
		if err := config.InitTheme(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: using default theme: %v\n", err)
		}
		if err := params.InitParams(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: using default params: %v\n", err)
		}

		if sourceName != "" {
			config.CurrentSettings.Source = sourceName
		}
		if refreshFlag > 0 {
			config.CurrentSettings.RefreshInterval = refreshFlag
		}

		// JSON mode: explicit flag or non-TTY stdout
		if jsonOutput || !term.IsTerminal(int(os.Stdout.Fd())) {
			runJSONMode()
			return
		}

		m := ui.NewModel()
		if platformName != "" {
			m = m.WithPlatform(hw.FromName(platformName))
		}
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runJSONMode() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dev, veh, err := source.CollectOnce(ctx, config.CurrentSettings.Source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error collecting telemetry: %v\n", err)
		os.Exit(1)
	}

	state := status.Compute(dev, veh, params.CurrentParams.PrimeRedirected, source.NowNanos())
	if err := output.RenderJSON(os.Stdout, state); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering JSON: %v\n", err)
		os.Exit(1)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
