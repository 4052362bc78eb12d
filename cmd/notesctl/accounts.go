package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	accountsCmd := &cobra.Command{Use: "accounts", Short: "Account operations"}

	var username, password string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a local account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password required")
			}
			data, err := checkStatus(apiClient().R().
				SetBody(map[string]string{"username": username, "password": password}).
				Post("/api/accounts"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	registerCmd.Flags().StringVarP(&username, "username", "n", "", "Username (required)")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	accountsCmd.AddCommand(registerCmd)

	var loginUser, loginPass string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and adopt guest notes into the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if loginUser == "" || loginPass == "" {
				return fmt.Errorf("--username and --password required")
			}
			data, err := checkStatus(apiClient().R().
				SetBody(map[string]string{"username": loginUser, "password": loginPass}).
				Post("/api/sessions"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&loginUser, "username", "n", "", "Username (required)")
	loginCmd.Flags().StringVarP(&loginPass, "password", "p", "", "Password (required)")
	accountsCmd.AddCommand(loginCmd)

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := checkStatus(apiClient().R().Delete("/api/sessions")); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "logged out")
			return nil
		},
	}
	accountsCmd.AddCommand(logoutCmd)

	profileCmd := &cobra.Command{
		Use:   "profile USERNAME",
		Short: "Show an account profile with usage stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkStatus(apiClient().R().
				Get(fmt.Sprintf("/api/accounts/%s", args[0])))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	accountsCmd.AddCommand(profileCmd)

	rootCmd.AddCommand(accountsCmd)
}
