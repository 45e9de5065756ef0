package main

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/toolbox-vault/internal/tui"
	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the credential file lives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := a.client.GetStoragePath(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("File:     "), loc.FilePath)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("Directory:"), loc.Directory)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("Strategy: "), loc.Strategy)
			return nil
		},
	}
}

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open [path]",
		Short: "Open the storage folder, or a path inside it, with the desktop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			if len(args) == 1 {
				target = args[0]
			}

			// relative paths are taken relative to the storage folder
			if target == "" || !filepath.IsAbs(target) {
				loc, err := a.client.GetStoragePath(cmd.Context())
				if err != nil {
					return err
				}
				target = filepath.Join(loc.Directory, target)
			}

			opened, err := a.client.OpenPathExternally(cmd.Context(), target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", opened)
			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show host application metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meta, err := a.client.GetAppMetadata(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", headerStyle.Render(meta.Name), meta.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s/%s\n", meta.Platform, meta.Arch)
			fmt.Fprintf(cmd.OutOrStdout(), "Path:     %s\n", meta.AppPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Built:    %s (%s)\n", meta.BuildDate, meta.BuildCommit)
			return nil
		},
	}
}

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the host answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Health(cmd.Context()); err != nil {
				return err
			}
			if err := a.client.Ping(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("pong"))
			return nil
		},
	}
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse credentials interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.New(a.client, a.logger).Browse(cmd.Context())
		},
	}
}
