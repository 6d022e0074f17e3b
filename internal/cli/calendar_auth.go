package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// newCalendarAuthCmd runs the one-time OAuth consent for desktop credentials
// and saves the token the calendar mirror loads at startup.
func newCalendarAuthCmd(a *app) *cobra.Command {
	var tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth [credentials.json]",
		Short: "Authorize Google Calendar access and save a token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("reading credentials file %q: %w", credsPath, err)
			}
			oauthCfg, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
			if err != nil {
				return fmt.Errorf("parsing credentials (expected an OAuth desktop app file): %w", err)
			}

			fmt.Fprintln(a.out, "1. Open this URL and sign in with the calendar owner account:")
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(a.out)
			fmt.Fprint(a.out, "2. Paste the authorization code here: ")

			code, err := bufio.NewReader(a.in).ReadString('\n')
			if err != nil && code == "" {
				return fmt.Errorf("reading authorization code: %w", err)
			}
			tok, err := oauthCfg.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchanging authorization code: %w", err)
			}

			return saveToken(tokenPath, tok, a)
		},
	}
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "Where to write the OAuth token")
	return cmd
}

func saveToken(path string, tok *oauth2.Token, a *app) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(a.out, "\nToken saved to %s\n", path)
	return nil
}
