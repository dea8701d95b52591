// Command wording fills in exercise wordings from the command line.
//
//	wording render "{name} has {nb1} {capacity_unit}. |hint:capacity_unit|" --set nb1=2
//	wording sheet week12.yaml --format latex --answers
//	wording names --gender f -n 3
package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/wording/config"
	"github.com/npillmayer/wording/names"
	"github.com/npillmayer/wording/quantity"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// app carries the state shared by all sub-commands.
type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wording",
		Short: "Fill in templated exercise wordings",
		Long: `wording turns exercise templates into finished sentences.

Templates contain {tags} for numbers, units, currencies and person names.
Missing names and units are drawn at random; numbers are merged with their
units and printed in the configured language.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (YAML)")
	root.AddCommand(a.renderCmd(), a.sheetCmd(), a.namesCmd())
	return root
}

// setup loads the configuration and installs the tracer.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(cfg.TraceLevel())
	gtrace.CoreTracer.Debugf("wording: language %s, style %s", cfg.Language, cfg.Style)
	return nil
}

func (a *app) printer(style quantity.Style) *quantity.Printer {
	pr := quantity.NewPrinter(a.cfg.LanguageTag(), style)
	pr.Precision = a.cfg.Precision
	return pr
}

// nameSource opens the configured name source. The returned function
// releases it.
func (a *app) nameSource(rnd *rand.Rand) (names.Source, func(), error) {
	if a.cfg.Names.Source != "sqlite" {
		entries, err := names.Builtin(a.cfg.LanguageTag())
		if err != nil {
			return nil, nil, err
		}
		return names.NewListSource(entries, rnd), func() {}, nil
	}
	db, err := a.openNamesDB(a.cfg.Names.Database)
	if err != nil {
		return nil, nil, err
	}
	src := names.NewSQLSource(db, languageKey(a.cfg.LanguageTag()), rnd)
	return src, func() { db.Close() }, nil
}

func (a *app) openNamesDB(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("no names database configured")
	}
	return names.OpenSQLite(path)
}

// languageKey is the language column value of the names table.
func languageKey(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
