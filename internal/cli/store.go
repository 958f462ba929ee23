package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/pathabs/internal/manifest"
	"github.com/roach88/pathabs/internal/pathabs"
	"github.com/roach88/pathabs/internal/store"
)

// StoreOptions holds flags for the store commands.
type StoreOptions struct {
	*RootOptions
	Database string

	// IDs overrides the set ID generator (for testing).
	// If nil, the store uses UUIDv7.
	IDs store.IDGenerator
}

// SetResult is the JSON form of a stored set.
type SetResult struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Seq   int64          `json:"seq"`
	Paths []pathabs.Path `json:"paths"`
}

// NewStoreCommand creates the store command and its subcommands.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Keep named path sets in a SQLite database",
		Long: `Save, load, list and delete named, ordered path sets. Paths are stored
as escaped text, so non-UTF-8 paths survive unchanged.

Example:
  pathabs store put work ./paths.json --db ./pathabs.db
  pathabs store get work`,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", rootOpts.DB, "path to SQLite database")

	cmd.AddCommand(newStorePutCommand(opts))
	cmd.AddCommand(newStoreGetCommand(opts))
	cmd.AddCommand(newStoreListCommand(opts))
	cmd.AddCommand(newStoreDeleteCommand(opts))
	cmd.AddCommand(newStoreFindCommand(opts))

	return cmd
}

// withStore opens the database, runs fn and closes the database.
func withStore(opts *StoreOptions, formatter *OutputFormatter, fn func(*store.Store) error) error {
	log := opts.logger().With(zap.String("db", opts.Database))

	var storeOpts []store.Option
	if opts.IDs != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(opts.IDs))
	}
	st, err := store.Open(opts.Database, storeOpts...)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			log.Error("error closing database", zap.Error(closeErr))
		}
	}()
	log.Debug("database ready")

	return fn(st)
}

// storeFailure maps a store error to an exit code.
func storeFailure(formatter *OutputFormatter, err error) error {
	if errors.Is(err, store.ErrSetNotFound) {
		return formatter.Fail(ExitCommandError, manifest.ErrCodeNotFound, err.Error(), nil)
	}
	var decErr *pathabs.DecodeError
	if errors.As(err, &decErr) {
		return formatter.Fail(ExitFailure, manifest.ErrCodeInvalidPath, err.Error(), nil)
	}
	return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
}

func newStorePutCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "put <name> <manifest>",
		Short:         "Save a manifest's paths under a name",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, file := args[0], args[1]
			formatter := opts.formatter(cmd)

			paths, err := loadStrict(opts.RootOptions, formatter, file)
			if err != nil {
				return err
			}

			return withStore(opts, formatter, func(st *store.Store) error {
				id, err := st.PutSet(cmd.Context(), name, paths)
				if err != nil {
					return storeFailure(formatter, err)
				}
				opts.logger().Info("set stored", zap.String("name", name), zap.String("id", id), zap.Int("count", len(paths)))

				if formatter.Format == "json" {
					return formatter.Success(map[string]any{"id": id, "name": name, "count": len(paths)})
				}
				fmt.Fprintf(formatter.Writer, "✓ Stored %d path(s) as %q (%s)\n", len(paths), name, id)
				return nil
			})
		},
	}
}

func newStoreGetCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "get <name>",
		Short:         "Print the paths of a stored set",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			return withStore(opts, formatter, func(st *store.Store) error {
				set, err := st.GetSet(cmd.Context(), args[0])
				if err != nil {
					return storeFailure(formatter, err)
				}

				if formatter.Format == "json" {
					return formatter.Success(SetResult{ID: set.ID, Name: set.Name, Seq: set.Seq, Paths: set.Paths})
				}
				for _, p := range set.Paths {
					fmt.Fprintln(formatter.Writer, p)
				}
				return nil
			})
		},
	}
}

func newStoreListCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List stored sets by name",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			return withStore(opts, formatter, func(st *store.Store) error {
				sets, err := st.ListSets(cmd.Context())
				if err != nil {
					return storeFailure(formatter, err)
				}

				if formatter.Format == "json" {
					return formatter.Success(sets)
				}
				for _, s := range sets {
					fmt.Fprintf(formatter.Writer, "%s\t%d\n", s.Name, s.Count)
				}
				return nil
			})
		},
	}
}

func newStoreDeleteCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <name>",
		Short:         "Delete a stored set",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			return withStore(opts, formatter, func(st *store.Store) error {
				if err := st.DeleteSet(cmd.Context(), args[0]); err != nil {
					return storeFailure(formatter, err)
				}
				opts.logger().Info("set deleted", zap.String("name", args[0]))

				if formatter.Format == "json" {
					return formatter.Success(map[string]string{"deleted": args[0]})
				}
				fmt.Fprintf(formatter.Writer, "✓ Deleted %q\n", args[0])
				return nil
			})
		},
	}
}

func newStoreFindCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "find <path>",
		Short:         "List the sets that contain a path",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := opts.formatter(cmd)

			p, err := pathabs.Abs(args[0])
			if err != nil {
				return formatter.Fail(ExitCommandError, manifest.ErrCodeInvalidPath, err.Error(), nil)
			}

			return withStore(opts, formatter, func(st *store.Store) error {
				names, err := st.SetsContaining(cmd.Context(), p)
				if err != nil {
					return storeFailure(formatter, err)
				}

				if formatter.Format == "json" {
					return formatter.Success(names)
				}
				for _, name := range names {
					fmt.Fprintln(formatter.Writer, name)
				}
				return nil
			})
		},
	}
}
