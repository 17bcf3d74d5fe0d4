package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/adapter"
	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/spf13/cobra"
)

// adapterFactory builds the server adapter once configuration is known.
type adapterFactory func(config.ClientAdapter, config.ClientAuth, *logger.Logger) (adapter.ServerAdapter, error)

// cli holds the state shared by every subcommand.
type cli struct {
	// persistent flags
	address       string
	timeout       time.Duration
	token         string
	principalID   string
	principalName string
	verbose       bool
	jsonOutput    bool

	cfg        *config.ClientConfig
	log        *logger.Logger
	newAdapter adapterFactory
	adapter    adapter.ServerAdapter
}

func newRootCmd(newAdapter adapterFactory) *cobra.Command {
	c := &cli{newAdapter: newAdapter}

	root := &cobra.Command{
		Use:   "rsa-vault",
		Short: "Command-line client for the go-rsa-vault server",
		Long: `rsa-vault talks to a go-rsa-vault server: it generates RSA key pairs,
encrypts and decrypts with RSA-OAEP (SHA-256), runs the avalanche analysis and
manages saved ciphertexts.

Connection and identity settings come from RSA_VAULT_* environment variables
and can be overridden with flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.address, "address", "a", "", "server address (env RSA_VAULT_ADDRESS)")
	flags.DurationVar(&c.timeout, "timeout", 0, "request timeout (env RSA_VAULT_REQUEST_TIMEOUT)")
	flags.StringVarP(&c.token, "token", "t", "", "bearer token for vault commands (env RSA_VAULT_TOKEN)")
	flags.StringVar(&c.principalID, "principal-id", "", "owner id sent as X-MS-CLIENT-PRINCIPAL-ID (env RSA_VAULT_PRINCIPAL_ID)")
	flags.StringVar(&c.principalName, "principal-name", "", "owner email sent as X-MS-CLIENT-PRINCIPAL-NAME (env RSA_VAULT_PRINCIPAL_NAME)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging on stderr")
	flags.BoolVar(&c.jsonOutput, "json", false, "print raw JSON results")

	root.AddCommand(
		c.generateCmd(),
		c.encryptCmd(),
		c.decryptCmd(),
		c.avalancheCmd(),
		c.vaultCmd(),
		c.tokenCmd(),
		c.versionCmd(),
	)

	return root
}

// setup resolves configuration: environment first, then non-empty flags.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	c.log = logger.NewClientLogger("rsa-vault-client", c.verbose)

	cfg, err := config.GetClientConfig()
	if err != nil {
		return err
	}

	err = cfg.Override(config.ClientConfig{
		Adapter: config.ClientAdapter{
			HTTPAddress:    c.address,
			RequestTimeout: c.timeout,
		},
		Auth: config.ClientAuth{
			Token:         c.token,
			PrincipalID:   c.principalID,
			PrincipalName: c.principalName,
		},
	})
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.log.Debug().Str("command", cmd.CommandPath()).Str("address", cfg.Adapter.HTTPAddress).Msg("client configured")
	return nil
}

// server returns the adapter, creating it on first use.
func (c *cli) server() (adapter.ServerAdapter, error) {
	if c.adapter != nil {
		return c.adapter, nil
	}

	a, err := c.newAdapter(c.cfg.Adapter, c.cfg.Auth, c.log)
	if err != nil {
		return nil, err
	}
	c.adapter = a
	return a, nil
}

// printJSON writes v as indented JSON when --json is set and reports whether
// it did.
func (c *cli) printJSON(w io.Writer, v any) (bool, error) {
	if !c.jsonOutput {
		return false, nil
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return true, encoder.Encode(v)
}

// resolveInput returns the contents of path ("-" is stdin) when path is set,
// else inline.
func resolveInput(cmd *cobra.Command, inline, path string) (string, error) {
	switch path {
	case "":
		return inline, nil
	case "-":
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(raw), nil
	}
}

// firstArgOr returns args[0] when present, else fallback.
func firstArgOr(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}

// trimTrailingNewline strips a single trailing newline left by shells and
// editors around base64 input.
func trimTrailingNewline(s string) string {
	return strings.TrimRight(s, "\r\n")
}
