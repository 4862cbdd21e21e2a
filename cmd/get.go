package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monctl/monctl/internal/config"
)

// FeatureReply is the JSON output of the get command
type FeatureReply struct {
	Code    string `json:"code"`
	Current uint16 `json:"current"`
	Maximum uint16 `json:"maximum"`
	Type    string `json:"type"`
}

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get <feature>",
	Short: "Read a VCP feature value",
	Long: `Read the current and maximum value of a VCP feature. The feature may be
a configured alias (brightness, contrast, ...) or a numeric code such as
0x10. Transient read failures are normal on DDC/CI; retry before
assuming the monitor is gone.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
	addMonitorFlag(getCmd)
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	code, err := config.ResolveFeature(args[0])
	if err != nil {
		return err
	}

	monitor, cleanup, err := openMonitor(monitorIndex)
	if err != nil {
		return err
	}
	defer cleanup()

	value, err := monitor.GetVCPFeature(code)
	if err != nil {
		return err
	}

	if getJSON || config.Get().Output.JSON {
		return json.NewEncoder(os.Stdout).Encode(FeatureReply{
			Code:    fmt.Sprintf("0x%02X", uint8(code)),
			Current: value.Current,
			Maximum: value.Maximum,
			Type:    value.Type.String(),
		})
	}

	if value.Continuous() {
		fmt.Printf("feature 0x%02X: %d / %d (%s)\n", uint8(code), value.Current, value.Maximum, value.Type)
	} else {
		fmt.Printf("feature 0x%02X: 0x%04X (%s)\n", uint8(code), value.Current, value.Type)
	}
	return nil
}
