package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/transitnet/bfs"
	"github.com/katalvlaran/transitnet/dfs"
	"github.com/katalvlaran/transitnet/traverse"
)

const keyEsc = 0x1b

// pacer decides when the next visit may be shown.
type pacer struct {
	delay time.Duration
	keys  *os.File // non-nil in step mode, stdin in raw mode
	eol   string
}

// wait blocks until the next step is allowed. It returns traverse.ErrStop
// when the user presses ESC or q, and the context error when cancelled.
func (p *pacer) wait(ctx context.Context) error {
	if p.keys != nil {
		buf := make([]byte, 1)
		if _, err := p.keys.Read(buf); err != nil {
			return err
		}
		if buf[0] == keyEsc || buf[0] == 'q' || buf[0] == 'Q' || buf[0] == 0x03 {
			return traverse.ErrStop
		}
		return nil
	}
	if p.delay <= 0 {
		return nil
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func newTraverseCmd(a *app, algo string) *cobra.Command {
	var (
		step     bool
		delay    time.Duration
		maxDepth int
	)

	short := "Walk the network breadth-first, nearest locations first"
	if algo == "dfs" {
		short = "Walk the network depth-first, following each road as far as it goes"
	}

	cmd := &cobra.Command{
		Use:   algo + " <start>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseID(args[0], "start")
			if err != nil {
				return err
			}

			p := &pacer{delay: delay, eol: "\n"}
			if step {
				fd := int(os.Stdin.Fd())
				if !term.IsTerminal(fd) {
					return fmt.Errorf("--step needs an interactive terminal")
				}
				old, err := term.MakeRaw(fd)
				if err != nil {
					return err
				}
				defer func() { _ = term.Restore(fd, old) }()
				p.keys, p.eol = os.Stdin, "\r\n"
				fmt.Fprint(a.out, a.faint("any key: next, ESC or q: stop")+p.eol)
			}

			ctx := cmd.Context()
			onVisit := func(s traverse.Step) error {
				fmt.Fprintf(a.out, "%s %d (%s)  depth %d  %s%s",
					a.bold(fmt.Sprintf("#%d", len(s.Order))), s.ID, s.Name, s.Depth,
					a.faint("waiting "+fmt.Sprint(s.Frontier)), p.eol)
				if len(s.Frontier) == 0 && !step {
					return nil
				}
				return p.wait(ctx)
			}

			var (
				order     []int
				completed bool
			)
			switch algo {
			case "bfs":
				opts := []bfs.Option{bfs.WithContext(ctx), bfs.WithOnVisit(onVisit)}
				if maxDepth > 0 {
					opts = append(opts, bfs.WithMaxDepth(maxDepth))
				}
				res, err := bfs.BFS(a.graph, start, opts...)
				if err != nil {
					return err
				}
				order, completed = res.Order, res.Completed
			default:
				opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithOnVisit(onVisit)}
				if maxDepth > 0 {
					opts = append(opts, dfs.WithMaxDepth(maxDepth))
				}
				res, err := dfs.DFS(a.graph, start, opts...)
				if err != nil {
					return err
				}
				order, completed = res.Order, res.Completed
			}
			a.metrics.Visits.WithLabelValues(algo).Add(float64(len(order)))

			ids := make([]string, len(order))
			for i, id := range order {
				ids[i] = fmt.Sprint(id)
			}
			fmt.Fprint(a.out, a.bold("Order: ")+strings.Join(ids, " → ")+p.eol)
			if !completed {
				fmt.Fprint(a.out, a.out.String("Stopped before the walk finished").Foreground(a.out.Color("3")).String()+p.eol)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&step, "step", false, "Wait for a key press after every visit")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Pause between visits, e.g. 300ms")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Do not go deeper than this many roads (0: no limit)")
	return cmd
}
