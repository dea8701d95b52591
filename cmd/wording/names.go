package main

import (
	"fmt"

	"github.com/npillmayer/wording/names"
	"github.com/spf13/cobra"
)

func (a *app) namesCmd() *cobra.Command {
	var gender, db string
	var count int
	var doImport bool
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Draw person names",
		Long: `Draws names from the configured name source. With --db, names are drawn
from a sqlite database, which --import fills with the built-in names of the
configured language.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := names.ParseGender(gender)
			if err != nil {
				return err
			}
			if db != "" {
				a.cfg.Names.Source = "sqlite"
				a.cfg.Names.Database = db
			}
			if doImport {
				if err := a.importNames(cmd); err != nil {
					return err
				}
			}
			src, release, err := a.nameSource(newRand())
			if err != nil {
				return err
			}
			defer release()
			for i := 0; i < count; i++ {
				name, err := src.Next(g)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&gender, "gender", "g", "", "gender of names: m or f")
	cmd.Flags().IntVarP(&count, "number", "n", 1, "number of names to draw")
	cmd.Flags().StringVar(&db, "db", "", "sqlite names database")
	cmd.Flags().BoolVar(&doImport, "import", false, "import the built-in names into the database")
	return cmd
}

func (a *app) importNames(cmd *cobra.Command) error {
	if a.cfg.Names.Source != "sqlite" {
		return fmt.Errorf("--import needs a names database")
	}
	db, err := a.openNamesDB(a.cfg.Names.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	tag := a.cfg.LanguageTag()
	entries, err := names.Builtin(tag)
	if err != nil {
		return err
	}
	return names.Populate(cmd.Context(), db, languageKey(tag), entries)
}
