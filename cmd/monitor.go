package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monctl/monctl/internal/ddc"
	"github.com/monctl/monctl/internal/logger"
)

var monitorIndex int

func addMonitorFlag(c *cobra.Command) {
	c.Flags().IntVarP(&monitorIndex, "monitor", "m", 0, "monitor index (see 'monctl list')")
}

// openMonitor enumerates and selects one monitor by index. The cleanup
// function releases every discovered handle, including the selected one.
func openMonitor(index int) (*ddc.Monitor, func(), error) {
	monitors, errs := ddc.Enumerate()
	for _, err := range errs {
		logger.Warn("monitor enumeration incomplete", "error", err)
	}
	cleanup := func() {
		for _, m := range monitors {
			m.Close()
		}
	}
	if len(monitors) == 0 {
		cleanup()
		if len(errs) > 0 {
			return nil, nil, errs[0]
		}
		return nil, nil, fmt.Errorf("no DDC/CI capable monitors found")
	}
	if index < 0 || index >= len(monitors) {
		cleanup()
		return nil, nil, fmt.Errorf("monitor index %d out of range (found %d)", index, len(monitors))
	}
	return monitors[index], cleanup, nil
}
