package cmd

import (
	"github.com/spf13/cobra"

	"github.com/monctl/monctl/internal/config"
	"github.com/monctl/monctl/internal/logger"
)

var (
	// Version info set by main package
	Version = "0.1.0-dev"
	Commit  string
	Date    string
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "monctl",
		Short: "monctl - DDC/CI monitor control",
		Long: `Monctl queries and controls physical monitors over DDC/CI using the
Windows Monitor Configuration API. It can enumerate attached monitors,
read and write VCP features (brightness, contrast, input source, ...)
and dump a monitor's MCCS capability string.

DDC/CI commands travel over the monitor's I2C bus and occasionally fail
on flaky cables or during display-mode changes; isolated failures are
usually transient and worth retrying.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			if level := config.Get().Logging.LogLevel; level != "" {
				logger.SetLevel(level)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
}
