package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	errPlaintextRequired  = errors.New("plaintext is required")
	errCiphertextRequired = errors.New("ciphertext is required")
	errPublicKeyRequired  = errors.New("--public-key-file is required")
	errPrivateKeyRequired = errors.New("--private-key-file is required")
)

func (c *cli) generateCmd() *cobra.Command {
	var (
		keySize int
		out     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an RSA key pair (1024 or 2048 bits)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := c.server()
			if err != nil {
				return err
			}

			pair, err := server.Generate(cmd.Context(), keySize)
			if err != nil {
				return fmt.Errorf("generate key pair: %w", err)
			}

			w := cmd.OutOrStdout()
			if out != "" {
				pubPath, privPath := out+".pub.pem", out+".pem"
				if err = os.WriteFile(pubPath, []byte(pair.PublicKey), 0o644); err != nil {
					return fmt.Errorf("write public key: %w", err)
				}
				if err = os.WriteFile(privPath, []byte(pair.PrivateKey), 0o600); err != nil {
					return fmt.Errorf("write private key: %w", err)
				}
				fmt.Fprintf(w, "%s Generated %d-bit key pair\n", color.GreenString("✓"), pair.KeySize)
				fmt.Fprintln(w, "  Public key:  "+color.CyanString(pubPath))
				fmt.Fprintln(w, "  Private key: "+color.CyanString(privPath))
				return nil
			}

			if ok, err := c.printJSON(w, pair); ok || err != nil {
				return err
			}
			fmt.Fprint(w, pair.PublicKey)
			fmt.Fprint(w, pair.PrivateKey)
			return nil
		},
	}

	cmd.Flags().IntVarP(&keySize, "key-size", "s", 0, "modulus size in bits: 1024 or 2048 (server default 2048)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write <out>.pub.pem and <out>.pem instead of printing")
	return cmd
}

func (c *cli) encryptCmd() *cobra.Command {
	var (
		plaintextFile string
		publicKeyFile string
	)

	cmd := &cobra.Command{
		Use:   "encrypt [plaintext]",
		Short: "Encrypt UTF-8 text with a public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := resolveInput(cmd, firstArgOr(args, ""), plaintextFile)
			if err != nil {
				return err
			}
			if plaintext == "" {
				return errPlaintextRequired
			}
			if publicKeyFile == "" {
				return errPublicKeyRequired
			}
			publicKey, err := resolveInput(cmd, "", publicKeyFile)
			if err != nil {
				return err
			}

			server, err := c.server()
			if err != nil {
				return err
			}

			resp, err := server.Encrypt(cmd.Context(), models.EncryptRequest{Plaintext: plaintext, PublicKey: publicKey})
			if err != nil {
				return fmt.Errorf("encrypt: %w", err)
			}

			w := cmd.OutOrStdout()
			if ok, err := c.printJSON(w, resp); ok || err != nil {
				return err
			}
			fmt.Fprintln(w, resp.Ciphertext)
			return nil
		},
	}

	cmd.Flags().StringVarP(&publicKeyFile, "public-key-file", "k", "", "PEM public key file (- for stdin)")
	cmd.Flags().StringVarP(&plaintextFile, "plaintext-file", "f", "", "read the plaintext from a file (- for stdin)")
	return cmd
}

func (c *cli) decryptCmd() *cobra.Command {
	var (
		ciphertextFile string
		privateKeyFile string
	)

	cmd := &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a base64 ciphertext with a private key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			resp, err := server.Decrypt(cmd.Context(), models.DecryptRequest{Ciphertext: ciphertext, PrivateKey: privateKey})
			if err != nil {
				return fmt.Errorf("decrypt: %w", err)
			}

			w := cmd.OutOrStdout()
			if ok, err := c.printJSON(w, resp); ok || err != nil {
				return err
			}
			fmt.Fprintln(w, resp.Plaintext)
			return nil
		},
	}

	cmd.Flags().StringVarP(&privateKeyFile, "private-key-file", "k", "", "PEM private key file (- for stdin)")
	cmd.Flags().StringVarP(&ciphertextFile, "ciphertext-file", "f", "", "read the ciphertext from a file (- for stdin)")
	return cmd
}

func (c *cli) avalancheCmd() *cobra.Command {
	var publicKeyFile string

	cmd := &cobra.Command{
		Use:   "avalanche <plaintext>",
		Short: "Compare the ciphertexts of a plaintext and of \"s\" + plaintext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errPlaintextRequired
			}
			if publicKeyFile == "" {
				return errPublicKeyRequired
			}
			publicKey, err := resolveInput(cmd, "", publicKeyFile)
			if err != nil {
				return err
			}

			server, err := c.server()
			if err != nil {
				return err
			}

			result, err := server.Avalanche(cmd.Context(), models.AvalancheRequest{Plaintext: args[0], PublicKey: publicKey})
			if err != nil {
				return fmt.Errorf("avalanche: %w", err)
			}

			w := cmd.OutOrStdout()
			if ok, err := c.printJSON(w, result); ok || err != nil {
				return err
			}
			fmt.Fprintf(w, "Avalanche: %s\n", color.YellowString("%.2f%%", result.AvalanchePercent))
			fmt.Fprintf(w, "  Original:  %q\n", args[0])
			fmt.Fprintf(w, "  Modified:  %q\n", result.ModifiedPlaintext)
			fmt.Fprintf(w, "  Original ciphertext (hex): %s\n", result.OriginalHex)
			fmt.Fprintf(w, "  Modified ciphertext (hex): %s\n", result.ModifiedHex)
			return nil
		},
	}

	cmd.Flags().StringVarP(&publicKeyFile, "public-key-file", "k", "", "PEM public key file (- for stdin)")
	return cmd
}
