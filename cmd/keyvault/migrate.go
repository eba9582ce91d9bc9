package main

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-vault/internal/app"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/store"
)

func (c *cli) newMigrateCmd() *cobra.Command {
	var to config.Storage

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy the vault to another storage backend",
		Long: `Copy the stored vault unchanged to another backend or slot.

Settings not given with --to-* flags are taken from the source.
Records keep their cipher text, so no key is needed.

Example:
  keyvault migrate --to-backend sqlite --to-dsn ~/.config/keyvault/vault.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := migrationTarget(c.cfg.Storage, to)
			if err != nil {
				return err
			}
			if err := dst.Validate(); err != nil {
				return err
			}

			target, err := store.NewStorage(cmd.Context(), dst, c.log)
			if err != nil {
				return describe(err)
			}
			defer target.Close()

			if err := store.Migrate(cmd.Context(), c.app.Storage(), target); err != nil {
				return describe(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgMigrated)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&to.Backend, "to-backend", "", "target backend: memory | file | sqlite | postgres | leveldb")
	fs.StringVar(&to.Slot, "to-slot", "", "target vault name")
	fs.StringVar(&to.Files.Path, "to-file", "", "target vault file path")
	fs.StringVar(&to.Files.SealKey, "to-seal-key", "", "seal the target file with this key")
	fs.StringVar(&to.DB.DSN, "to-dsn", "", "target database DSN")
	fs.StringVar(&to.LevelDB.Dir, "to-leveldb-dir", "", "target LevelDB directory")

	return cmd
}

// migrationTarget fills every empty field of to from src.
func migrationTarget(src, to config.Storage) (config.Storage, error) {
	if err := mergo.Merge(&to, src); err != nil {
		return config.Storage{}, fmt.Errorf("build migration target: %w", err)
	}
	return to, nil
}
