package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/twig/internal/paths"
	"github.com/zjrosen/twig/internal/store"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Manage the repositories shown in the picker",
}

var reposListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered repositories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(st *store.Store) error {
			list, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			current, err := st.Current(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no repositories registered")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range list {
				marker := " "
				if r.Path == current {
					marker = "*"
				}
				opened := "never"
				if !r.OpenedAt.IsZero() {
					opened = r.OpenedAt.Format(time.DateTime)
				}
				fmt.Fprintf(w, "%s %s\t%s\t%s\n", marker, r.Name, r.Path, opened)
			}
			return w.Flush()
		})
	},
}

var reposAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Register the repository enclosing path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := paths.ResolveRepo(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return withStore(func(st *store.Store) error {
			r, err := st.Add(cmd.Context(), root)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", r.Name, r.Path)
			return err
		})
	},
}

var reposRemoveCmd = &cobra.Command{
	Use:     "remove <path>",
	Aliases: []string{"rm"},
	Short:   "Unregister a repository; nothing on disk is touched",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		// Accept the path as typed or as resolved; a deleted work tree no
		// longer resolves.
		if root, err := paths.ResolveRepo(path); err == nil {
			path = root
		}
		return withStore(func(st *store.Store) error {
			if err := st.Remove(cmd.Context(), path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
			return err
		})
	},
}

func withStore(fn func(st *store.Store) error) error {
	st, err := store.Open(cfg.StorePath())
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	return fn(st)
}

func init() {
	reposCmd.AddCommand(reposListCmd, reposAddCmd, reposRemoveCmd)
	rootCmd.AddCommand(reposCmd)
}
