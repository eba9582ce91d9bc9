package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-vault/internal/client"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// skipAppAnnotation marks commands that run without opening the vault.
const skipAppAnnotation = "keyvault/skip-app"

// cli holds the state shared by all commands of one invocation.
type cli struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo

	root *cobra.Command

	cfg *config.StructuredConfig
	log *logger.Logger
	app *client.App
}

func newCLI(buildInfo models.AppBuildInfo) *cli {
	c := &cli{buildInfo: buildInfo}
	c.root = c.newRootCmd()
	return c
}

// execute runs the command selected by the arguments and closes the vault
// afterwards, whether the command failed or not.
func (c *cli) execute(ctx context.Context) error {
	err := c.root.ExecuteContext(ctx)
	if closeErr := c.close(); err == nil {
		err = closeErr
	}
	return err
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "keyvault",
		Short: "Keyed password vault",
		Long: `keyvault keeps account passwords encrypted with a key you type in.
The key is never stored. Listing with another key yields other text.

Run without a subcommand to start the terminal UI.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           c.buildInfo.String(),
		PersistentPreRunE: c.open,
		RunE:              c.runTUI,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	c.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.newTUICmd(),
		c.newSaveCmd(),
		c.newListCmd(),
		c.newAccountsCmd(),
		c.newDeleteCmd(),
		c.newGenerateCmd(),
		c.newWipeCmd(),
		c.newImportLegacyCmd(),
		c.newMigrateCmd(),
		c.newVersionCmd(),
	)

	return root
}

// open loads the configuration and opens the vault for commands that need it.
func (c *cli) open(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipAppAnnotation] != "" {
		return nil
	}

	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg
	c.log = logger.NewClientLogger("keyvault", cfg.Log.File, cfg.Log.Level)

	app, err := client.NewApp(cmd.Context(), cfg, c.buildInfo, c.log)
	if err != nil {
		return describe(err)
	}
	c.app = app

	cmd.SetContext(c.log.WithContext(cmd.Context()))
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

func (c *cli) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal UI",
		Args:  cobra.NoArgs,
		RunE:  c.runTUI,
	}
}

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	if err := c.app.Run(cmd.Context()); err != nil {
		return describe(err)
	}
	return nil
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", c.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", c.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", c.buildInfo.BuildCommit())
		},
	}
}
