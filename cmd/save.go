package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save current settings to the monitor's nonvolatile storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		monitor, cleanup, err := openMonitor(monitorIndex)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := monitor.SaveSettings(); err != nil {
			return err
		}
		fmt.Printf("settings saved on %s\n", monitor.Description())
		return nil
	},
}

func init() {
	addMonitorFlag(saveCmd)
	rootCmd.AddCommand(saveCmd)
}
