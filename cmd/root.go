// Package cmd provides the CLI commands for the pomodoro application.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro/internal/adapters/tui"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath   string
	focusMinutes int
	breakMinutes int
	inlineMode   bool
	noSound      bool
	debugMode    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "A Pomodoro timer for the terminal",
	Long: `pomodoro alternates focus sessions and breaks until you stop it.

Press space to start, pause and resume, s to stop, and adjust the focus and
break durations with + - ] [ while the timer is idle.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.pomodoro/config.toml)")
	rootCmd.PersistentFlags().IntVar(&focusMinutes, "focus", 0, "Initial focus duration in minutes (5-60, multiple of 5)")
	rootCmd.PersistentFlags().IntVar(&breakMinutes, "break", 0, "Initial break duration in minutes (1-15)")
	rootCmd.PersistentFlags().BoolVar(&noSound, "no-sound", false, "Disable the alert sound (desktop notifications stay on)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to a file")
	rootCmd.Flags().BoolVarP(&inlineMode, "inline", "i", false, "Compact inline timer (no fullscreen)")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pomodoro\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// runTimer runs the interactive widget until the user quits or a signal arrives.
func runTimer(cmd *cobra.Command, args []string) error {
	ctx, stop := setupSignalHandler()
	defer stop()

	timer := tui.NewTimer(app.controller, &app.config.Theme)
	timer.SetInline(inlineMode)

	app.log.Debug().Bool("inline", inlineMode).Msg("starting timer")
	return timer.Run(ctx)
}
