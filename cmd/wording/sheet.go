package main

import (
	"fmt"

	"github.com/npillmayer/wording/exercise"
	"github.com/npillmayer/wording/quantity"
	"github.com/npillmayer/wording/sheet"
	"github.com/spf13/cobra"
)

func (a *app) sheetCmd() *cobra.Command {
	var format, seed string
	var answers bool
	cmd := &cobra.Command{
		Use:   "sheet <file.yaml>",
		Short: "Generate an exercise sheet",
		Long: `Generates the questions listed in a sheet description and prints them
as Markdown, HTML or LaTeX. The same seed always yields the same sheet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style := quantity.Plain
			switch format {
			case "md", "html":
			case "latex":
				style = quantity.LaTeX
			default:
				return fmt.Errorf("unknown format %q, expected md, html or latex", format)
			}
			spec, err := sheet.Load(args[0])
			if err != nil {
				return err
			}
			if seed != "" {
				spec.Seed = seed
			}
			g := &exercise.Generator{
				Printer:  a.printer(style),
				Currency: a.cfg.CurrencySymbol(),
			}
			if a.cfg.Names.Source == "sqlite" {
				src, release, err := a.nameSource(newRand())
				if err != nil {
					return err
				}
				defer release()
				g.NameSource = src
			}
			s, err := sheet.Build(g, spec)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case "html":
				return s.HTML(out, answers)
			case "latex":
				return s.LaTeX(out, answers)
			}
			return s.Markdown(out, answers)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "md", "output format: md, html or latex")
	cmd.Flags().BoolVar(&answers, "answers", false, "append the answers")
	cmd.Flags().StringVar(&seed, "seed", "", "override the sheet's seed")
	return cmd
}
