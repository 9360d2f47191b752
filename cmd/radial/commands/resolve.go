package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/radial"
)

func resolveCmd() *cobra.Command {
	var (
		o           arcOptions
		tick        float64
		precise     float64
		preciseDist float64
		deadzone    float64
		previous    float64
	)
	cmd := &cobra.Command{
		Use:   "resolve DX DY",
		Short: "Resolve a pointer offset from the dial center to a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dx, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse DX: %w", err)
			}
			dy, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse DY: %w", err)
			}
			arc, err := o.arcSpec()
			if err != nil {
				return err
			}
			steps, err := radial.NewBinarySteps(tick, precise, preciseDist)
			if err != nil {
				return err
			}
			r, err := radial.NewResolver(radial.ResolverConfig{
				Range:    o.rangeOf(),
				Arc:      arc,
				Deadzone: deadzone,
				Steps:    steps,
			})
			if err != nil {
				return err
			}
			v := r.Resolve(radial.Vec2{X: dx, Y: dy}, radial.Vec2{}, previous)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value: %s\n", strconv.FormatFloat(v, 'f', steps.Precision(), 64))
			fmt.Fprintf(out, "angle: %.2f\n", radial.AngleOf(dx, dy))
			fmt.Fprintf(out, "step:  %g\n", steps.Step(radial.DistanceOf(dx, dy)))
			return nil
		},
	}
	o.bind(cmd)
	cmd.Flags().Float64Var(&tick, "tick", 1, "step near the center")
	cmd.Flags().Float64Var(&precise, "precise", 1, "step beyond --precise-distance")
	cmd.Flags().Float64Var(&preciseDist, "precise-distance", 0, "distance where the precise step takes over")
	cmd.Flags().Float64Var(&deadzone, "deadzone", 0, "radius that keeps --previous")
	cmd.Flags().Float64Var(&previous, "previous", 0, "value returned inside the deadzone")
	return cmd
}
