package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro/internal/domain"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective timer settings",
	Long: `Print the settings the timer would start with after the config file,
environment variables and flags have been applied. The config file is never
written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.config
		out := cmd.OutOrStdout()

		if configJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(configView{
				FocusMinutes:  cfg.FocusMinutes,
				BreakMinutes:  cfg.BreakMinutes,
				Notifications: cfg.Notifications.Enabled,
				Sound:         cfg.Notifications.Sound,
				Debug:         cfg.Log.Debug,
			}); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return nil
		}

		notifStatus := "off"
		if cfg.Notifications.Enabled {
			notifStatus = "on"
			if cfg.Notifications.Sound {
				notifStatus = "on (with sound)"
			}
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Current configuration:")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "    Focus duration:   %s\n", domain.MinutesToDuration(cfg.FocusMinutes))
		fmt.Fprintf(out, "    Break duration:   %s\n", domain.MinutesToDuration(cfg.BreakMinutes))
		fmt.Fprintf(out, "    Notifications:    %s\n", notifStatus)
		fmt.Fprintf(out, "    Debug logging:    %v\n", cfg.Log.Debug)
		fmt.Fprintln(out)
		return nil
	},
}

type configView struct {
	FocusMinutes  int  `json:"focus_minutes"`
	BreakMinutes  int  `json:"break_minutes"`
	Notifications bool `json:"notifications"`
	Sound         bool `json:"sound"`
	Debug         bool `json:"debug"`
}

func init() {
	configCmd.Flags().BoolVar(&configJSON, "json", false, "Output in JSON format")
}
