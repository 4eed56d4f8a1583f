package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := mustCLI(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cli.config)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := mustCLI(cmd)
			if err != nil {
				return err
			}

			path := cli.configManager.UserConfigPath()
			if len(args) == 1 {
				path = args[0]
			}
			if exists, _ := afero.Exists(cli.fs, path); exists && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := cli.configManager.SaveToFile(cli.configManager.GetDefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(initCmd)

	return configCmd
}
