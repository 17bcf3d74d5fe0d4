package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errNameRequired = errors.New("--name is required")

func (c *cli) vaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage saved ciphertexts",
		Long: `Saved ciphertexts are stored on the server together with the private key
that decrypts them. Every record belongs to the authenticated caller; records
of other callers are reported as not found.`,
	}

	cmd.AddCommand(
		c.vaultListCmd(),
		c.vaultSaveCmd(),
		c.vaultDeleteCmd(),
		c.vaultDecryptCmd(),
	)
	return cmd
}

func (c *cli) vaultListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your saved ciphertexts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := c.server()
			if err != nil {
				return err
			}

			records, err := server.ListSavedCiphertexts(cmd.Context())
			if err != nil {
				return fmt.Errorf("list saved ciphertexts: %w", err)
			}

			w := cmd.OutOrStdout()
			if ok, err := c.printJSON(w, records); ok || err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(w, color.CyanString("→")+" No saved ciphertexts")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCREATED")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Name, r.CreatedAt.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}
}

func (c *cli) vaultSaveCmd() *cobra.Command {
	var (
		name           string
		ciphertextFile string
		privateKeyFile string
	)

	cmd := &cobra.Command{
		Use:   "save [ciphertext]",
		Short: "Save a ciphertext together with its private key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errNameRequired
			}
			ciphertext, err := resolveInput(cmd, firstArgOr(args, ""), ciphertextFile)
			if err != nil {
				return err
			}
			ciphertext = trimTrailingNewline(ciphertext)
			if ciphertext == "" {
				return errCiphertextRequired
			}
			if privateKeyFile == "" {
				return errPrivateKeyRequired
			}
			privateKey, err := resolveInput(cmd, "", privateKeyFile)
			if err != nil {
				return err
			}

			server, err := c.server()
			if err != nil {
				return err
			}

			view, err := server.SaveCiphertext(cmd.Context(), models.CreateSavedCiphertextRequest{
				Name:       name,
				Ciphertext: ciphertext,
				PrivateKey: privateKey,
			})
			if err != nil {
				return fmt.Errorf("save ciphertext: %w", err)
			}

			w := cmd.OutOrStdout()
			if ok, err := c.printJSON(w, view); ok || err != nil {
				return err
			}
			fmt.Fprintf(w, "%s Saved %s as %s\n", color.GreenString("✓"), color.CyanString(view.Name), color.YellowString(view.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name of the record")
	cmd.Flags().StringVarP(&privateKeyFile, "private-key-file", "k", "", "PEM private key file (- for stdin)")
	cmd.Flags().StringVarP(&ciphertextFile, "ciphertext-file", "f", "", "read the ciphertext from a file (- for stdin)")
	return cmd
}

func (c *cli) vaultDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your saved ciphertexts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := c.server()
			if err != nil {
				return err
			}

			if err = server.DeleteSavedCiphertext(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete saved ciphertext: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", color.GreenString("✓"), color.YellowString(args[0]))
			return nil
		},
	}
}

func (c *cli) vaultDecryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <id>",
		Short: "Decrypt one of your saved ciphertexts on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := c.server()
			if err != nil {
				return err
			}

			resp, err := server.DecryptSavedCiphertext(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("decrypt saved ciphertext: %w", err)
			}

			w := cmd.OutOrStdout()
			if ok, err := c.printJSON(w, resp); ok || err != nil {
				return err
			}
			fmt.Fprintln(w, resp.Plaintext)
			return nil
		},
	}
}
