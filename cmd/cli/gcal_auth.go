package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"time-range-parser/pkg/gcalendar"
)

// newGCalAuthCmd authorizes read-only Google Calendar access once and stores
// the token used by the public holiday lookup.
func newGCalAuthCmd() *cobra.Command {
	var tokenPath string

	cmd := &cobra.Command{
		Use:   "gcal-auth [credentials.json]",
		Short: "Authorize Google Calendar access and write token.json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
			}
			oauthCfg, err := gcalendar.OAuthConfig(data)
			if err != nil {
				return fmt.Errorf("%w (is %q an OAuth Desktop App credentials file?)", err, credsPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Step 1: open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, gcalendar.AuthCodeURL(oauthCfg))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Step 2: paste the authorization code and press Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			if _, err := gcalendar.ExchangeAndSave(cmd.Context(), oauthCfg, strings.TrimSpace(code), tokenPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nToken saved to %s. Set holiday_calendar.credentials_path and token_path to use it.\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenPath, "where to write the token")
	return cmd
}
