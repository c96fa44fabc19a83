package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livalex/egraph/pkg/eg"
	"github.com/livalex/egraph/pkg/errors"
	"github.com/livalex/egraph/pkg/store"
)

// newStoreCmd creates the store command with its subcommands for managing
// named graphs in the configured backend.
func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage named graphs in the configured store",
	}

	cmd.AddCommand(newStoreSaveCmd())
	cmd.AddCommand(newStoreShowCmd())
	cmd.AddCommand(newStoreListCmd())
	cmd.AddCommand(newStoreRmCmd())

	return cmd
}

// withStore opens the configured store, runs fn, and closes the store.
func withStore(ctx context.Context, fn func(store.Store) error) error {
	cfg, err := loadConfig(configPathFromContext(ctx))
	if err != nil {
		return err
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)
	return fn(st)
}

func newStoreSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <notation>",
		Short: "Save a graph under a name, canonicalized",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			name := args[0]
			if err := errors.ValidateGraphName(name); err != nil {
				return err
			}
			text, err := readNotation(args[1])
			if err != nil {
				return err
			}
			g, err := eg.Parse(text)
			if err != nil {
				return err
			}

			return withStore(c.Context(), func(st store.Store) error {
				rec, err := st.Save(c.Context(), name, g.String())
				if err != nil {
					return err
				}
				printSuccess("Saved %s", rec.Name)
				printDetail("%s", rec.Notation)
				return nil
			})
		},
	}
}

func newStoreShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored graph's notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withStore(c.Context(), func(st store.Store) error {
				rec, err := st.Get(c.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Println(rec.Notation)
				return nil
			})
		},
	}
}

func newStoreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graphs",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return withStore(c.Context(), func(st store.Store) error {
				recs, err := st.List(c.Context())
				if err != nil {
					return err
				}
				if len(recs) == 0 {
					printInfo("store is empty")
					return nil
				}
				for _, rec := range recs {
					printKeyValue(rec.Name, rec.Notation)
				}
				return nil
			})
		},
	}
}

func newStoreRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a stored graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withStore(c.Context(), func(st store.Store) error {
				if err := st.Delete(c.Context(), args[0]); err != nil {
					return err
				}
				printSuccess("Removed %s", args[0])
				return nil
			})
		},
	}
}
