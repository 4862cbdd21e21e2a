package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monctl/monctl/internal/config"
	"github.com/monctl/monctl/internal/ddc"
	"github.com/monctl/monctl/internal/logger"
)

// OutputList is the JSON output of the outputs command
type OutputList struct {
	Outputs []OutputEntry `json:"outputs"`
}

// OutputEntry describes one logical display output
type OutputEntry struct {
	Device  string `json:"device"`
	X       int32  `json:"x"`
	Y       int32  `json:"y"`
	Width   int32  `json:"width"`
	Height  int32  `json:"height"`
	Primary bool   `json:"primary"`
}

var outputsJSON bool

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "Show logical display outputs",
	Long: `Display the OS-level display outputs (desktop rectangles). Each output
may multiplex several physical monitors; use 'monctl list' for those.`,
	RunE: runOutputs,
}

func init() {
	outputsCmd.Flags().BoolVar(&outputsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(outputsCmd)
}

func runOutputs(cmd *cobra.Command, args []string) error {
	outs, err := ddc.Outputs()
	if err != nil {
		return err
	}

	entries := make([]OutputEntry, 0, len(outs))
	for _, out := range outs {
		info, err := out.Info()
		if err != nil {
			logger.Warn("failed to query output", "error", err)
			continue
		}
		entries = append(entries, OutputEntry{
			Device:  info.Device,
			X:       info.Bounds.Left,
			Y:       info.Bounds.Top,
			Width:   info.Bounds.Right - info.Bounds.Left,
			Height:  info.Bounds.Bottom - info.Bounds.Top,
			Primary: info.Primary,
		})
	}

	if outputsJSON || config.Get().Output.JSON {
		return json.NewEncoder(os.Stdout).Encode(OutputList{Outputs: entries})
	}

	if len(entries) == 0 {
		fmt.Println("No display outputs detected")
		return nil
	}
	for _, e := range entries {
		primary := ""
		if e.Primary {
			primary = " (primary)"
		}
		fmt.Printf("%s: %dx%d at (%d, %d)%s\n", e.Device, e.Width, e.Height, e.X, e.Y, primary)
	}
	return nil
}
