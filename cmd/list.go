package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/monctl/monctl/internal/config"
	"github.com/monctl/monctl/internal/ddc"
	"github.com/monctl/monctl/internal/ui"
)

// MonitorList is the JSON output of the list command
type MonitorList struct {
	Monitors []MonitorInfo `json:"monitors"`
	Errors   []string      `json:"errors,omitempty"`
}

// MonitorInfo describes one discovered monitor
type MonitorInfo struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Output      string `json:"output,omitempty"`
}

var jsonOutput bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached monitors",
	Long: `Enumerate every physical monitor reachable over DDC/CI and print its
index, description and source display output. Outputs whose monitors
could not be queried are reported as warnings; the rest are listed
anyway.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	monitors, errs := ddc.Enumerate()
	defer func() {
		for _, m := range monitors {
			m.Close()
		}
	}()

	if jsonOutput || config.Get().Output.JSON {
		list := MonitorList{Monitors: make([]MonitorInfo, len(monitors))}
		for i, m := range monitors {
			list.Monitors[i] = MonitorInfo{
				Index:       i,
				Description: m.Description(),
				Output:      m.OutputDevice(),
			}
		}
		for _, err := range errs {
			list.Errors = append(list.Errors, err.Error())
		}
		return json.NewEncoder(os.Stdout).Encode(list)
	}

	var output strings.Builder

	if len(monitors) == 0 {
		output.WriteString("No DDC/CI capable monitors detected\n")
	} else {
		rows := make([][]string, len(monitors))
		for i, m := range monitors {
			rows[i] = []string{fmt.Sprintf("%d", i), m.Description(), m.OutputDevice()}
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorSubtle)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == 0: // Header row
					return ui.HeaderStyle.Padding(0, 1)
				case col == 0: // Index column
					return ui.ValueStyle.Padding(0, 1)
				default:
					return lipgloss.NewStyle().Foreground(ui.ColorText).Padding(0, 1)
				}
			}).
			Headers("INDEX", "DESCRIPTION", "OUTPUT").
			Rows(rows...)

		output.WriteString(t.String())
		output.WriteString("\n")
		output.WriteString(ui.SubtleStyle.Render(fmt.Sprintf("Total: %d monitor(s)", len(monitors))))
		output.WriteString("\n")
	}

	for _, err := range errs {
		warn := lipgloss.NewStyle().Foreground(ui.ColorWarning)
		output.WriteString(warn.Render(fmt.Sprintf("warning: %v", err)))
		output.WriteString("\n")
	}

	fmt.Print(output.String())
	return nil
}
