package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/chatshell/internal/cli/styles"
	"github.com/bnema/chatshell/internal/infrastructure/config"
)

var configSchemaOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where chatshell keeps its files and print the effective configuration.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, accounts and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file and CHATSHELL_*
environment overrides have been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaOut, "output", "o", "", "write the schema to a file instead of stdout")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)

	logDir, err := a.Config.LogDir()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPaths([]styles.PathEntry{
		{Label: "Config", Path: a.Core.Config.ConfigFile()},
		{Label: "Accounts", Path: a.Core.AccountsDir},
		{Label: "Logs", Path: logDir},
	}))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)

	data, err := toml.Marshal(a.Config)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderHeader(a.Core.Config.ConfigFile()))
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaOut != "" {
		if err := config.GenerateSchemaFile(configSchemaOut); err != nil {
			return err
		}
		a, err := requireApp()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(a.Theme).RenderSaved(configSchemaOut))
		return nil
	}

	data, err := config.ConfigSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
