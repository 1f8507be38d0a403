package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"foster-intake/internal/domain/dosing"
	"foster-intake/internal/domain/intakes"

	"github.com/urfave/cli/v3"
)

var cmdDoses = &cli.Command{
	Name:  "doses",
	Usage: "Print the dose of every product for a kitten weight",
	Flags: []cli.Flag{
		&cli.FloatFlag{
			Name:     "grams",
			Aliases:  []string{"g"},
			Usage:    "kitten weight in grams",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "topical",
			Value: "none",
			Usage: "flea topical: revolution, advantage or none",
		},
	},
	Action: printDoses,
}

func printDoses(ctx context.Context, cmd *cli.Command) error {
	grams := cmd.Float("grams")
	if !intakes.ValidWeight(grams) {
		return errWeightRequired
	}
	topical, ok := dosing.ParseTopical(cmd.String("topical"))
	if !ok {
		return fmt.Errorf("unknown topical %q", cmd.String("topical"))
	}

	return writeDoses(cmd.Root().Writer, grams, dosing.ComputeGrams(grams, topical))
}

func writeDoses(out io.Writer, grams float64, d dosing.Doses) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "weight\t%.0f g\t%.2f lb\n", grams, d.WeightLb)

	for _, med := range dosing.Medications() {
		dose, product, ok := d.For(med)
		if !ok {
			fmt.Fprintf(tw, "%s\t-\tno topical\n", med)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", med, product.DisplayName(), dose)
	}
	return tw.Flush()
}
