package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprint(w, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

			server, err := c.server()
			if err != nil {
				return err
			}

			version, err := server.Version(cmd.Context())
			if err != nil {
				c.log.Debug().Err(err).Msg("server version unavailable")
				fmt.Fprintf(w, "%s Server unreachable: %v\n", color.YellowString("!"), err)
				return nil
			}

			fmt.Fprintf(w, "Server version: %s\n", strings.TrimSpace(version))
			return nil
		},
	}
}
