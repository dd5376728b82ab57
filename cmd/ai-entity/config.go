package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ai-entity/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	var effective bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if effective {
				_, loaded, err := loadConfig(cmd, opts)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().BoolVar(&effective, "effective", false, "print the merged configuration instead of defaults")
	return cmd
}
