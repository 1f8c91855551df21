package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/recycler/internal/layout"
	"github.com/gravitrone/recycler/internal/recycle"
)

// headlessCell is a slot item that only records what the engine did to it.
type headlessCell struct {
	pos    layout.Vec2
	active bool
}

// headlessHost backs a ScrollRect without any rendering.
type headlessHost struct {
	created   int
	destroyed int
}

func (h *headlessHost) Instantiate() (*headlessCell, error) {
	h.created++
	return &headlessCell{}, nil
}

func (h *headlessHost) Destroy(*headlessCell) { h.destroyed++ }

func (h *headlessHost) SetActive(c *headlessCell, active bool) { c.active = active }

func (h *headlessHost) Place(c *headlessCell, pos layout.Vec2) { c.pos = pos }

// step is one simulate instruction: a scroll delta or a jump.
type step struct {
	raw   string
	delta float64
	jump  bool
	index int
}

func parseSteps(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, a := range args {
		if rest, ok := strings.CutPrefix(a, "@"); ok {
			n, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("parse jump %q: %w", a, err)
			}
			steps = append(steps, step{raw: a, jump: true, index: n})
			continue
		}
		d, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("parse scroll delta %q: %w", a, err)
		}
		steps = append(steps, step{raw: a, delta: d})
	}
	return steps, nil
}

// SimulateCmd returns the `recycler simulate` command.
func SimulateCmd() *cobra.Command {
	var (
		flags gridFlags
		row   int
	)
	cmd := &cobra.Command{
		Use:   "simulate [delta|@index]...",
		Short: "Drive the grid headlessly and print every content update",
		Long: "Binds the configured grid to a headless host, then applies each step in order.\n" +
			"A number scrolls by that many units, @N jumps to index N.",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			spec, err := cfg.Spec()
			if err != nil {
				return fmt.Errorf("grid config: %w", err)
			}
			return runSimulation(cmd.OutOrStdout(), spec, cfg.Total, cfg.FullGrid, row, steps)
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&row, "row", 1, "display line (1-based) that jumped-to items land on")
	return cmd
}

func runSimulation(out io.Writer, spec layout.Spec, total int, fullGrid bool, row int, steps []step) error {
	host := &headlessHost{}
	rect, err := recycle.New[*headlessCell](spec, host)
	if err != nil {
		return err
	}
	defer rect.Close()

	rect.OnCellUpdate(func(index int, id uint64, _ *headlessCell) {
		fmt.Fprintf(out, "  update index=%d slot=%d\n", index, id)
	})
	rect.SetFullGridPadding(fullGrid)

	fmt.Fprintf(out, "bind total=%d\n", total)
	if err := rect.SetCellCount(total, true); err != nil {
		return err
	}
	printState(out, rect)

	for _, s := range steps {
		fmt.Fprintf(out, "step %s\n", s.raw)
		if s.jump {
			if err := rect.JumpToIndex(s.index, row); err != nil {
				return err
			}
		} else {
			rect.OnScrollOffsetChanged(s.delta)
		}
		printState(out, rect)
	}

	live, cached := rect.PoolStats()
	fmt.Fprintf(out, "slots live=%d cached=%d created=%d arena=%d\n", live, cached, host.created, rect.ArenaSize())
	return nil
}

func printState(out io.Writer, rect *recycle.ScrollRect[*headlessCell]) {
	from, to := rect.VisibleRange()
	fmt.Fprintf(out, "  offset=%g line=%d window=[%d,%d]\n", rect.Offset(), rect.Line(), from, to)
}
