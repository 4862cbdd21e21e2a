package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monctl/monctl/internal/ddc"
)

var capsRaw bool

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Dump a monitor's MCCS capability string",
	Long: `Retrieve the monitor's declared capability string. The string is
reported verbatim in MCCS capability grammar; monctl does not parse it.
The length and content are fetched in two separate transactions, so a
monitor reconfigured mid-read can cause a size mismatch — that read is
safe to retry.`,
	RunE: runCaps,
}

func init() {
	capsCmd.Flags().BoolVar(&capsRaw, "raw", false, "Write the raw bytes to stdout")
	addMonitorFlag(capsCmd)
	rootCmd.AddCommand(capsCmd)
}

func runCaps(cmd *cobra.Command, args []string) error {
	monitor, cleanup, err := openMonitor(monitorIndex)
	if err != nil {
		return err
	}
	defer cleanup()

	caps, err := monitor.Capabilities()
	if err != nil {
		if errors.Is(err, ddc.ErrSizeMismatch) {
			return fmt.Errorf("capability string changed while reading, try again: %w", err)
		}
		return err
	}

	if capsRaw {
		os.Stdout.Write(caps)
		fmt.Println()
		return nil
	}
	if len(caps) == 0 {
		fmt.Println("monitor declares no capabilities")
		return nil
	}
	fmt.Printf("%s (%d bytes)\n", monitor.Description(), len(caps))
	fmt.Println(string(caps))
	return nil
}
