package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lectio/lectio-go/internal/bible"
	"github.com/lectio/lectio-go/internal/config"
	"github.com/lectio/lectio-go/internal/database"
	"github.com/lectio/lectio-go/internal/exporter"
	"github.com/lectio/lectio-go/internal/query"
)

func newBibleCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bible",
		Short: "Read bible verses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&cfg.Version, "version", "v", config.DefaultVersion, "Version to use")

	cmd.AddCommand(
		newBooksCmd(cfg),
		newVerseCmd(cfg),
		newRangeCmd(cfg),
		newVersionsCmd(cfg),
	)
	return cmd
}

func newBooksCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List book names in canonical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, store, err := openStore(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer db.Close()

			books, err := store.Books(cmd.Context())
			if err != nil {
				return err
			}
			for _, b := range books {
				fmt.Fprintln(cmd.OutOrStdout(), b.Name)
			}
			return nil
		},
	}
}

func newVerseCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "verse <book> <chapter> <verse>",
		Short:   "Print a single verse",
		Example: `  lectio bible verse "1 John" 4 8`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			chapter, err := parseNumber("chapter", args[1])
			if err != nil {
				return err
			}
			verse, err := parseNumber("verse", args[2])
			if err != nil {
				return err
			}

			db, store, err := openStore(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer db.Close()

			bookID, err := store.BookID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			text, err := store.Verse(cmd.Context(), bookID, chapter, verse)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newRangeCmd(cfg *config.Config) *cobra.Command {
	var formatStr string

	cmd := &cobra.Command{
		Use:   "range <book> <chapters> [verses]",
		Short: "Print verses selected by chapter and verse ranges",
		Long: `Print verses selected by chapter and verse ranges.

<chapters> is a single range ("3" or "1-3"). [verses] is an optional
comma-separated list of ranges ("1-5,8,10-12"); without it every verse
of the selected chapters is printed. Rows are "{chapter}:{verse} {text}"
ordered by chapter and verse.`,
		Example: `  lectio bible range Psalms 23
  lectio bible range John 1 1-5,14`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			cfg.Format = format.Resolve(cfg.OutputFile)

			chapters, err := query.Parse(args[1])
			if err != nil {
				return err
			}
			verses := []query.Range{}
			if len(args) == 3 {
				if verses, err = query.ParseList(args[2]); err != nil {
					return err
				}
			}
			filter := query.Combine(chapters, verses)

			stderr := cmd.ErrOrStderr()
			for _, r := range filter.Ranges() {
				if r.Reversed() {
					warnColor.Fprintf(stderr, "Warning: range %s is reversed and matches nothing\n", r)
				}
			}

			return runRange(cmd, cfg, args[0], filter)
		},
	}

	cmd.Flags().StringVarP(&cfg.OutputFile, "output", "o", "", "Output file path, .gz compressed by extension (default: stdout)")
	cmd.Flags().StringVar(&formatStr, "format", "auto", "Output format: 'text', 'csv', 'tsv', or 'auto' (by output extension)")

	return cmd
}

func runRange(cmd *cobra.Command, cfg *config.Config, book string, filter query.Filter) error {
	stderr := cmd.ErrOrStderr()

	db, store, err := openStore(cfg, stderr)
	if err != nil {
		return err
	}
	defer db.Close()

	bookID, err := store.BookID(cmd.Context(), book)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		infoColor.Fprintf(stderr, "Filter: book_id = %d AND %s\n", bookID, filter)
	}

	output, err := exporter.OpenOutputFile(cfg.OutputFile, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	vw, err := exporter.NewVerseWriter(output, cfg.Format, book)
	if err != nil {
		output.Close()
		return err
	}
	if err := store.Passage(cmd.Context(), bookID, filter, vw.Write); err != nil {
		output.Close()
		return err
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	if cfg.Verbose {
		infoColor.Fprintf(stderr, "Wrote %d verse(s)\n", vw.Count())
	}
	return nil
}

func newVersionsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the versions available in the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := database.ListStores(cfg.StoreDir(), config.StoreExt)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// openStore opens the selected version's store read-only and checks its
// schema. No query runs against a store that is missing or foreign.
func openStore(cfg *config.Config, stderr io.Writer) (*database.DB, *bible.Store, error) {
	if cfg.Version == "" {
		cfg.Version = config.DefaultVersion
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	path := cfg.StorePath()
	if cfg.Verbose {
		infoColor.Fprintf(stderr, "Opening store: %s (%s driver)\n", path, database.DriverType())
	}

	db, err := database.OpenReadOnly(path)
	if err != nil {
		return nil, nil, fmt.Errorf("version %s: %w", cfg.Version, err)
	}
	if err := database.CheckSchema(db.DB); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, bible.NewStore(db.DB), nil
}

func parseNumber(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &query.ParseError{Input: s, Err: fmt.Errorf("%s must be an integer", name)}
	}
	return n, nil
}
