package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/wording"
	"github.com/npillmayer/wording/quantity"
	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Fill in a single template",
		Long: `Fills in a single template and prints the sentence, followed by the
hint if the template has one.

Example:
  wording render "{name} buys {nb1} {mass_unit} of flour. |hint:mass_unit|" --set nb1=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := attrsFromSets(sets)
			if err != nil {
				return err
			}
			obj.Set("wording", args[0])
			rnd := newRand()
			src, release, err := a.nameSource(rnd)
			if err != nil {
				return err
			}
			defer release()
			engine := wording.NewEngine(src, rnd, a.printer(a.cfg.OutputStyle()), a.cfg.CurrencySymbol())
			w, err := engine.SetupWordingFormat(obj, "")
			if err != nil {
				return err
			}
			text, err := w.Text()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, engine.PostProcess(text))
			if w.Hint != "" {
				fmt.Fprintf(out, "hint: %s\n", w.Hint)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set attribute key=value (repeatable)")
	return cmd
}

// attrsFromSets reads key=value pairs. Numeric values become numbers.
func attrsFromSets(sets []string) (*wording.Attrs, error) {
	obj := wording.NewAttrs()
	for _, kv := range sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", kv)
		}
		if n, err := quantity.ParseNumber(v); err == nil {
			obj.Set(k, n)
		} else {
			obj.Set(k, v)
		}
	}
	return obj, nil
}
