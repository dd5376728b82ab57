package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ai-entity/entity"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/render"
	"github.com/lixenwraith/ai-entity/vmath"
)

var (
	titleColor  = color.New(color.FgHiGreen, color.Bold)
	subtleColor = color.New(color.FgHiBlack)
)

// fixedCanvas is a viewport of a given terminal size, no screen attached
type fixedCanvas struct {
	w, h float64
}

func (c fixedCanvas) Size() (float64, float64) { return c.w, c.h }

func newLayoutCmd(opts *options) *cobra.Command {
	var cols, rows int
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the node layout and connections for a seed and terminal size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			seed := cfg.Render.Seed
			if seed == 0 {
				seed = 1
			}
			return printLayout(cmd.OutOrStdout(), cfg.Tuning(), seed, cols, rows)
		},
	}
	cmd.Flags().IntVar(&cols, "cols", 120, "terminal columns")
	cmd.Flags().IntVar(&rows, "rows", 40, "terminal rows")
	return cmd
}

func printLayout(w io.Writer, t parameter.Tuning, seed int64, cols, rows int) error {
	canvas := fixedCanvas{
		w: float64(cols) * parameter.CellWidth,
		h: float64(rows-parameter.BottomMargin) * parameter.CellHeight,
	}
	e, err := entity.New(canvas, entity.WithTuning(t), entity.WithRand(vmath.NewFastRand(uint64(seed))))
	if err != nil {
		return err
	}
	defer e.Close()

	titleColor.Fprintf(w, "ai-entity layout  seed=%d  %dx%d cells\n", seed, cols, rows)
	c := e.Center()
	subtleColor.Fprintf(w, "center (%.1f, %.1f)  radius %.1f\n\n", c.X, c.Y, e.Radius())

	fmt.Fprintln(w, "nodes")
	for _, n := range e.Nodes() {
		x, y := render.WorldToCell(n.Base)
		rgb := render.Hex(n.Color, render.RGB{R: 1, G: 1, B: 1})
		r, g, b := rgb.RGB255()
		dot := color.RGB(int(r), int(g), int(b)).Sprint(string(parameter.GlyphNode))
		fmt.Fprintf(w, "  %s %d %-28s anchor (%6.1f, %6.1f)  cell (%3d, %3d)  phase %.3f\n",
			dot, n.Index, n.Label, n.Base.X, n.Base.Y, x, y, n.PulsePhase)
	}

	fmt.Fprintf(w, "\nconnections (%d)\n", len(e.Connections()))
	for _, cn := range e.Connections() {
		fmt.Fprintf(w, "  %d ─ %d  strength %.2f\n", cn.From, cn.To, cn.Strength)
	}
	return nil
}
