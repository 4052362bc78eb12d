package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	shareCmd := &cobra.Command{Use: "share", Short: "Share-link operations"}

	var customHost string
	var compact bool
	var qrOut string
	linkCmd := &cobra.Command{
		Use:   "link NOTE_ID",
		Short: "Generate a share link for a note, optionally with a QR PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := apiClient()

			noteData, err := checkStatus(c.R().
				Get(fmt.Sprintf("/api/users/%s/notes/%s", userFlag, args[0])))
			if err != nil {
				return err
			}
			var note map[string]interface{}
			if err := json.Unmarshal(noteData, &note); err != nil {
				return fmt.Errorf("unexpected note payload: %w", err)
			}

			body := map[string]interface{}{
				"note":       note,
				"user":       userFlag,
				"customHost": customHost,
				"compact":    compact,
			}
			data, err := checkStatus(c.R().SetBody(body).Post("/api/share"))
			if err != nil {
				return err
			}

			var res struct {
				URL         string `json:"url"`
				Mode        string `json:"mode"`
				Truncated   bool   `json:"truncated"`
				OverBudget  bool   `json:"overBudget"`
				QRAvailable bool   `json:"qrAvailable"`
			}
			if err := json.Unmarshal(data, &res); err != nil {
				return fmt.Errorf("unexpected share response: %w", err)
			}
			fmt.Fprintf(os.Stdout, "%s\n", res.URL)
			if res.Truncated {
				fmt.Fprintln(os.Stderr, "note content was truncated to fit the link budget")
			}

			if qrOut == "" {
				return nil
			}
			if !res.QRAvailable {
				return fmt.Errorf("link exceeds QR capacity; use the URL directly")
			}
			png, err := checkStatus(c.R().
				SetQueryParam("text", res.URL).
				Get("/api/share/qr"))
			if err != nil {
				return err
			}
			if err := os.WriteFile(qrOut, png, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "QR code written to %s\n", qrOut)
			return nil
		},
	}
	linkCmd.Flags().StringVar(&customHost, "host", "", "Override the link hostname for LAN sharing")
	linkCmd.Flags().BoolVar(&compact, "compact", false, "Force compact mode (plain text, no metadata)")
	linkCmd.Flags().StringVarP(&qrOut, "qr", "q", "", "Write a QR code PNG to this path")
	shareCmd.AddCommand(linkCmd)

	openCmd := &cobra.Command{
		Use:   "open URL",
		Short: "Fetch a share link and print the rendered page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid share URL: %w", err)
			}
			data, err := checkStatus(apiClient().R().Get("/?" + u.RawQuery))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	shareCmd.AddCommand(openCmd)

	rootCmd.AddCommand(shareCmd)
}
