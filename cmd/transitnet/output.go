package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/transitnet/internal/config"
)

func newOutput(w io.Writer, mode string) *termenv.Output {
	switch mode {
	case config.ColorAlways:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256))
	case config.ColorNever:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	default:
		return termenv.NewOutput(w)
	}
}

func (a *app) ok(format string, args ...any) {
	fmt.Fprintln(a.out, a.out.String(fmt.Sprintf(format, args...)).Foreground(a.out.Color("2")))
}

func (a *app) warn(format string, args ...any) {
	fmt.Fprintln(a.out, a.out.String(fmt.Sprintf(format, args...)).Foreground(a.out.Color("3")))
}

func (a *app) bold(s string) string {
	return a.out.String(s).Bold().String()
}

func (a *app) faint(s string) string {
	return a.out.String(s).Faint().String()
}

func parseID(s, what string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", what, s)
	}
	return id, nil
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("weight must be a number, got %q", s)
	}
	return w, nil
}
