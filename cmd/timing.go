package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var timingCmd = &cobra.Command{
	Use:   "timing",
	Short: "Read a monitor's timing report",
	RunE: func(cmd *cobra.Command, args []string) error {
		monitor, cleanup, err := openMonitor(monitorIndex)
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := monitor.TimingReport()
		if err != nil {
			return err
		}
		fmt.Printf("horizontal: %d Hz\n", report.HorizontalFrequencyHz)
		fmt.Printf("vertical:   %d Hz\n", report.VerticalFrequencyHz)
		fmt.Printf("status:     0x%02X\n", report.StatusByte)
		return nil
	},
}

func init() {
	addMonitorFlag(timingCmd)
	rootCmd.AddCommand(timingCmd)
}
