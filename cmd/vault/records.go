package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/toolbox-vault/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	errRecordNotFound  = errors.New("no credential matches")
	errAmbiguousRecord = errors.New("more than one credential matches, use the id")
	errCorruptStore    = errors.New("credential file is corrupt and saving would replace it, recover it first or pass --force")
)

var writeClipboard = clipboard.WriteAll

// findRecord resolves ref as an exact id first, then as a case-insensitive
// title.
func findRecord(records models.CredentialCollection, ref string) (int, error) {
	for i, r := range records {
		if r.ID == ref {
			return i, nil
		}
	}

	found := -1
	for i, r := range records {
		if strings.EqualFold(r.Title, ref) {
			if found >= 0 {
				return -1, fmt.Errorf("%w: %q", errAmbiguousRecord, ref)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %q", errRecordNotFound, ref)
	}
	return found, nil
}

// replaceAll persists records as the whole collection.
func (a *app) replaceAll(cmd *cobra.Command, records models.CredentialCollection) (models.CredentialCollection, error) {
	payload, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	return a.client.ReplaceAllCredentials(cmd.Context(), payload)
}

func (a *app) load(cmd *cobra.Command) (models.CredentialCollection, error) {
	snap, err := a.client.ReadAllCredentials(cmd.Context())
	if err != nil {
		return nil, err
	}
	printWarning(cmd.ErrOrStderr(), snap)
	return snap.Records, nil
}

// loadForUpdate is load for commands that write the collection back. The
// host reports a corrupt file as an empty collection, so writing on top of
// that view would replace the unreadable bytes. It refuses unless force is
// set.
func (a *app) loadForUpdate(cmd *cobra.Command, force bool) (models.CredentialCollection, error) {
	snap, err := a.client.ReadAllCredentials(cmd.Context())
	if err != nil {
		return nil, err
	}
	printWarning(cmd.ErrOrStderr(), snap)
	if snap.Code == models.CodeCorruptStore && !force {
		return nil, errCorruptStore
	}
	return snap.Records, nil
}

func registerForce(cmd *cobra.Command, force *bool) {
	cmd.Flags().BoolVar(force, "force", false, "write even when the credential file is corrupt, replacing it")
}

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List stored credentials",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.load(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), records)
			}
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the collection as JSON")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show <id|title>",
		Short: "Show one credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.load(cmd)
			if err != nil {
				return err
			}
			i, err := findRecord(records, args[0])
			if err != nil {
				return err
			}
			printRecord(cmd.OutOrStdout(), records[i], reveal)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the password in clear")
	return cmd
}

type recordFlags struct {
	title, username, password, website, notes string
	passwordStdin, force                      bool
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "display name")
	cmd.Flags().StringVar(&f.username, "username", "", "login name")
	cmd.Flags().StringVar(&f.password, "password", "", "secret (prefer --password-stdin)")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false, "read the secret from stdin")
	cmd.Flags().StringVar(&f.website, "website", "", "URL or host")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
	registerForce(cmd, &f.force)
}

func (f *recordFlags) readPassword(in io.Reader) error {
	if !f.passwordStdin {
		return nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	f.password = strings.TrimRight(string(b), "\r\n")
	return nil
}

func newAddCmd(a *app) *cobra.Command {
	var f recordFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.readPassword(cmd.InOrStdin()); err != nil {
				return err
			}
			if strings.TrimSpace(f.title) == "" {
				return errors.New("--title is required")
			}

			records, err := a.loadForUpdate(cmd, f.force)
			if err != nil {
				return err
			}
			records = append(records, models.CredentialRecord{
				Title:    f.title,
				Username: f.username,
				Password: f.password,
				Website:  f.website,
				Notes:    f.notes,
			})

			saved, err := a.replaceAll(cmd, records)
			if err != nil {
				return err
			}
			added := saved[len(saved)-1]
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Added %q (%s)", added.Title, added.ID)))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var f recordFlags

	cmd := &cobra.Command{
		Use:   "edit <id|title>",
		Short: "Change fields of a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.readPassword(cmd.InOrStdin()); err != nil {
				return err
			}

			records, err := a.loadForUpdate(cmd, f.force)
			if err != nil {
				return err
			}
			i, err := findRecord(records, args[0])
			if err != nil {
				return err
			}

			r := &records[i]
			flags := cmd.Flags()
			if flags.Changed("title") {
				r.Title = f.title
			}
			if flags.Changed("username") {
				r.Username = f.username
			}
			if flags.Changed("password") || f.passwordStdin {
				r.Password = f.password
			}
			if flags.Changed("website") {
				r.Website = f.website
			}
			if flags.Changed("notes") {
				r.Notes = f.notes
			}
			r.UpdatedAt = models.FormatTimestamp(time.Now())

			if _, err = a.replaceAll(cmd, records); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Updated %q", r.Title)))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <id|title>",
		Short:   "Remove a credential",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.loadForUpdate(cmd, force)
			if err != nil {
				return err
			}
			i, err := findRecord(records, args[0])
			if err != nil {
				return err
			}
			removed := records[i]
			records = append(records[:i:i], records[i+1:]...)

			if _, err = a.replaceAll(cmd, records); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Removed %q", removed.Title)))
			return nil
		},
	}
	registerForce(cmd, &force)
	return cmd
}

func newCopyCmd(a *app) *cobra.Command {
	var username bool

	cmd := &cobra.Command{
		Use:   "copy <id|title>",
		Short: "Copy a password to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.load(cmd)
			if err != nil {
				return err
			}
			i, err := findRecord(records, args[0])
			if err != nil {
				return err
			}

			value, what := records[i].Password, "password"
			if username {
				value, what = records[i].Username, "username"
			}
			if value == "" {
				return fmt.Errorf("%q has no %s", records[i].Title, what)
			}
			if err = writeClipboard(value); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %s of %q\n", what, records[i].Title)
			return nil
		},
	}
	cmd.Flags().BoolVar(&username, "username", false, "copy the username instead")
	return cmd
}
