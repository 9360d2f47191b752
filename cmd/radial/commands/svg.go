package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/radial"
)

func svgCmd() *cobra.Command {
	var (
		o      arcOptions
		radius float64
		track  bool
	)
	cmd := &cobra.Command{
		Use:   "svg VALUE",
		Short: "Print the SVG path of the arc swept up to VALUE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse VALUE: %w", err)
			}
			arc, err := o.arcSpec()
			if err != nil {
				return err
			}
			if radius <= 0 {
				return fmt.Errorf("radius must be positive, got %v", radius)
			}
			rng := o.rangeOf()
			center := radial.Vec2{X: radius, Y: radius}
			p := radial.SweepPath(center, radius, arc, rng.Fraction(rng.Clamp(v))*arc.ArcLength)
			if track {
				fmt.Fprintln(cmd.OutOrStdout(), radial.TrackPath(center, radius, arc).SVG())
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.SVG())
			return nil
		},
	}
	o.bind(cmd)
	cmd.Flags().Float64Var(&radius, "radius", 50, "arc radius; the center sits at (radius, radius)")
	cmd.Flags().BoolVar(&track, "track", false, "also print the full track first")
	return cmd
}
