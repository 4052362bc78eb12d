package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	notesCmd := &cobra.Command{Use: "notes", Short: "Note operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes in the user namespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkStatus(apiClient().R().
				Get(fmt.Sprintf("/api/users/%s/notes", userFlag)))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	notesCmd.AddCommand(listCmd)

	var title, content string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" && content == "" {
				return fmt.Errorf("--title or --content required")
			}
			data, err := checkStatus(apiClient().R().
				SetBody(map[string]string{"title": title, "content": content}).
				Post(fmt.Sprintf("/api/users/%s/notes", userFlag)))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&title, "title", "t", "", "Note title")
	createCmd.Flags().StringVarP(&content, "content", "c", "", "Note content")
	notesCmd.AddCommand(createCmd)

	getCmd := &cobra.Command{
		Use:   "get NOTE_ID",
		Short: "Get a note by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := checkStatus(apiClient().R().
				Get(fmt.Sprintf("/api/users/%s/notes/%s", userFlag, args[0])))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	notesCmd.AddCommand(getCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete NOTE_ID",
		Short: "Delete a note by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := checkStatus(apiClient().R().
				Delete(fmt.Sprintf("/api/users/%s/notes/%s", userFlag, args[0])))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "deleted")
			return nil
		},
	}
	notesCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(notesCmd)
}
