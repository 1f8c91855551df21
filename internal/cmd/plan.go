package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gravitrone/recycler/internal/config"
	"github.com/gravitrone/recycler/internal/layout"
	"github.com/gravitrone/recycler/internal/ui/components"
)

// planBoxWidth is the terminal width the plan box is laid out for.
const planBoxWidth = 80

// gridFlags are the config overrides shared by plan and simulate.
type gridFlags struct {
	total    int
	fullGrid bool
	axis     string
	rows     int
	cols     int
}

func (f *gridFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.total, "total", "n", 0, "item count (default from config)")
	cmd.Flags().BoolVar(&f.fullGrid, "full-grid", false, "round the count up to whole lines")
	cmd.Flags().StringVar(&f.axis, "axis", "", "scroll axis: vertical or horizontal")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "fixed row count (horizontal grids)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "fixed column count (vertical grids)")
}

// resolve loads the config and applies every flag the user set.
func (f *gridFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := LoadOrDefault()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("total") {
		cfg.Total = f.total
	}
	if flags.Changed("full-grid") {
		cfg.FullGrid = f.fullGrid
	}
	if flags.Changed("axis") {
		cfg.Axis = f.axis
	}
	if flags.Changed("rows") {
		cfg.Rows = f.rows
	}
	if flags.Changed("cols") {
		cfg.Cols = f.cols
	}
	if cfg.Total < 0 {
		return nil, fmt.Errorf("total %d: %w", cfg.Total, layout.ErrInvalidArgument)
	}
	return cfg, nil
}

// PlanCmd returns the `recycler plan` command.
func PlanCmd() *cobra.Command {
	var flags gridFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the capacity plan for the configured grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			spec, err := cfg.Spec()
			if err != nil {
				return fmt.Errorf("grid config: %w", err)
			}
			plan, err := layout.PlanCapacity(spec, cfg.Total, cfg.FullGrid)
			if err != nil {
				return fmt.Errorf("plan capacity: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderPlan(plan))
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

// RenderPlan formats a plan as a field/value grid with the mode marked.
func RenderPlan(p layout.Plan) string {
	mode := "static"
	if p.Recycling {
		mode = "recycling"
	}
	fields := []components.Field{
		{Name: "axis", Value: p.Axis.String()},
		{Name: "requested", Value: strconv.Itoa(p.Requested)},
		{Name: "total", Value: strconv.Itoa(p.Total)},
		{Name: "cross", Value: strconv.Itoa(p.Cross)},
		{Name: "fit", Value: strconv.Itoa(p.Fit)},
		{Name: "visible lines", Value: strconv.Itoa(p.VisibleAlong)},
		{Name: "logical lines", Value: strconv.Itoa(p.LogicalAlong)},
		{Name: "slots", Value: strconv.Itoa(p.SlotCount())},
		{Name: "mode", Value: mode, Mark: true},
		{Name: "content", Value: fmt.Sprintf("%gx%g", p.Content.W, p.Content.H)},
		{Name: "max offset", Value: strconv.FormatFloat(p.MaxOffset(), 'f', -1, 64)},
		{Name: "bounds", Value: fmt.Sprintf("%d..%d", p.Bottom, p.Top)},
	}
	grid := components.FieldGrid("field", "value", fields, 16, components.BoxContentWidth(planBoxWidth))
	return components.TitledBox("capacity plan", grid, planBoxWidth)
}
