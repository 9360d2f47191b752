package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/radial"
)

// arcOptions are the flags shared by every command that builds a dial.
type arcOptions struct {
	min, max float64
	arc      string
	reverse  bool
}

func (o *arcOptions) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.min, "min", 0, "range minimum")
	cmd.Flags().Float64Var(&o.max, "max", 100, "range maximum")
	cmd.Flags().StringVar(&o.arc, "arc", "full", "arc preset: full, gauge, top, right, bottom, left")
	cmd.Flags().BoolVar(&o.reverse, "reverse", false, "sweep counter-clockwise")
}

func (o *arcOptions) rangeOf() radial.Range {
	return radial.Range{Min: o.min, Max: o.max}
}

func (o *arcOptions) arcSpec() (radial.ArcSpec, error) {
	var arc radial.ArcSpec
	switch strings.ToLower(o.arc) {
	case "full":
		arc = radial.FullCircle
	case "gauge":
		arc = radial.Gauge
	case "top":
		arc = radial.HalfCircle(radial.OrientationTop)
	case "right":
		arc = radial.HalfCircle(radial.OrientationRight)
	case "bottom":
		arc = radial.HalfCircle(radial.OrientationBottom)
	case "left":
		arc = radial.HalfCircle(radial.OrientationLeft)
	default:
		return radial.ArcSpec{}, fmt.Errorf("unknown arc %q", o.arc)
	}
	if o.reverse {
		arc = arc.Reversed()
	}
	return arc, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "radial",
		Short:        "Inspect radial dial configurations",
		SilenceUsage: true,
	}
	root.AddCommand(resolveCmd(), svgCmd())
	return root
}

// Execute runs the radial CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}
