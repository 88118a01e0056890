package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newAuthorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "List every author with their articles, magazines and topic areas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(a.svc.Snapshot(cmd.Context()).Authors)
		},
	}
}

func newMagazinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "magazines",
		Short: "List every magazine with its contributors and article titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(a.svc.Snapshot(cmd.Context()).Magazines)
		},
	}
}

func newAuthorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "author <name>",
		Short: "Show one author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.AuthorReport(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(r)
		},
	}
}

func newMagazineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "magazine <name>",
		Short: "Show one magazine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.MagazineReport(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(r)
		},
	}
}

func newTopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Show the magazine with the most articles (null when there are none)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, ok := a.svc.TopPublisher(cmd.Context())
			if !ok {
				return a.print(nil)
			}
			return a.print(r)
		},
	}
}

// print encodes v to stdout in the configured output format.
func (a *app) print(v any) error {
	switch a.cfg.OutputFormat {
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
