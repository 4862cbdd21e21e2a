package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/monctl/monctl/internal/config"
	"github.com/monctl/monctl/internal/logger"
)

var setVerify bool

var setCmd = &cobra.Command{
	Use:   "set <feature> <value>",
	Short: "Write a VCP feature value",
	Long: `Write a value to a VCP feature. Success means the monitor accepted the
write request, not that it applied the value; pass --verify to read the
feature back after a short settle delay.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().BoolVar(&setVerify, "verify", false, "Read the feature back after writing")
	addMonitorFlag(setCmd)
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	code, err := config.ResolveFeature(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.ParseUint(args[1], 0, 16)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[1], err)
	}

	monitor, cleanup, err := openMonitor(monitorIndex)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := monitor.SetVCPFeature(code, uint16(value)); err != nil {
		return err
	}
	logger.Debug("vcp feature written", "code", fmt.Sprintf("0x%02X", uint8(code)), "value", value)

	if setVerify {
		// Give the monitor a moment to settle before reading back.
		time.Sleep(50 * time.Millisecond)
		reply, err := monitor.GetVCPFeature(code)
		if err != nil {
			return fmt.Errorf("verify read failed: %w", err)
		}
		if reply.Current != uint16(value) {
			logger.Warnf("monitor reports 0x%02X = %d after writing %d", uint8(code), reply.Current, value)
		} else {
			fmt.Printf("feature 0x%02X verified at %d\n", uint8(code), reply.Current)
		}
	}
	return nil
}
