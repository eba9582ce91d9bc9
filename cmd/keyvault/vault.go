package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-vault/internal/app"
	"github.com/MKhiriev/go-key-vault/internal/service"
)

var writeClipboard = clipboard.WriteAll

func (c *cli) newSaveCmd() *cobra.Command {
	var generate bool

	cmd := &cobra.Command{
		Use:   "save <account> [password]",
		Short: "Encrypt a password under a key and store it",
		Long: `Encrypt a password under a key and append it to the vault.

The password is prompted for when it is not given as an argument.
The key is always prompted for and never stored.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vault := c.app.Vault()
			account := args[0]

			var password string
			switch {
			case len(args) == 2:
				password = args[1]
			case generate:
				p, err := vault.GeneratePassword(0)
				if err != nil {
					return describe(err)
				}
				password = p
				fmt.Fprintf(cmd.OutOrStdout(), "password: %s\n", password)
			default:
				p, err := readSecret(cmd, "Password: ")
				if err != nil {
					return err
				}
				password = p
			}

			key, err := readSecret(cmd, "Key: ")
			if err != nil {
				return err
			}

			if err := vault.Save(cmd.Context(), account, password, key); err != nil {
				return describe(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgSaved)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "generate the password instead of prompting for it")
	return cmd
}

func (c *cli) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Decrypt and print every record with a key",
		Long: `Decrypt every record with the key that is prompted for.

A wrong key does not fail: it yields other text. Records that cannot be
decrypted at all are shown as "` + service.UndecryptableMarker + `".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readSecret(cmd, "Key: ")
			if err != nil {
				return err
			}

			entries, err := c.app.Vault().ListDecrypted(cmd.Context(), key)
			if err != nil {
				return describe(err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.MsgEmptyVault)
				return nil
			}

			w := newTable(cmd.OutOrStdout())
			for _, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\n", e.Index, e.Account, e.Password)
			}
			return w.Flush()
		},
	}
}

func (c *cli) newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Print account names without decrypting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := c.app.Vault().Accounts(cmd.Context())
			if err != nil {
				return describe(err)
			}
			if len(accounts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.MsgEmptyVault)
				return nil
			}

			w := newTable(cmd.OutOrStdout())
			for i, account := range accounts {
				fmt.Fprintf(w, "%d\t%s\n", i, account)
			}
			return w.Flush()
		},
	}
}

func (c *cli) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the record at an index",
		Long: `Delete the record at an index as printed by list or accounts.
Later records move up by one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return describe(fmt.Errorf("%w: index %q", service.ErrInvalidInput, args[0]))
			}

			if err := c.app.Vault().Delete(cmd.Context(), index); err != nil {
				return describe(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgDeleted)
			return nil
		},
	}
}

func (c *cli) newGenerateCmd() *cobra.Command {
	var (
		length      int
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password from the vault alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := c.app.Vault().GeneratePassword(length)
			if err != nil {
				return describe(err)
			}

			if toClipboard {
				if err := writeClipboard(password); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 0, "password length (default from configuration)")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "copy the password to the clipboard instead of printing it")
	return cmd
}

func (c *cli) newWipeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Remove every record and clear the storage slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(cmd, "Remove every record from the vault?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), app.MsgWipeAborted)
					return nil
				}
			}

			if err := c.app.Vault().Wipe(cmd.Context()); err != nil {
				return describe(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgWiped)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (c *cli) newImportLegacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-legacy <file>",
		Short: "Append the records of a legacy account-to-ciphertext JSON file",
		Long: `Append the records of a legacy vault file, a JSON object mapping each
account to its cipher text. Use "-" to read standard input. Imported
records decrypt with the modular arithmetic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open legacy vault: %w", err)
				}
				defer f.Close()
				r = f
			}

			n, err := c.app.Vault().ImportLegacy(cmd.Context(), r)
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", app.MsgImported, n)
			return nil
		},
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
