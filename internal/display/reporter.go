// Package display renders resolution outcomes for the terminal.
package display

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/rn/internal/config"
	"github.com/harrison/rn/internal/resolver"
)

// scheme defines consistent colors for the different outcome parts.
// Green: the destination name on success
// Cyan: the source name on success
// Red: refusal and failure messages
// Yellow: follow-up hints
type scheme struct {
	source *color.Color
	target *color.Color
	fail   *color.Color
	hint   *color.Color
}

func newScheme(enabled bool) *scheme {
	s := &scheme{
		source: color.New(color.FgCyan),
		target: color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		hint:   color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{s.source, s.target, s.fail, s.hint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Reporter writes confirmations to out and refusals to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	scheme *scheme
}

// NewReporter creates a Reporter for the given writers. mode is the
// configured color mode (auto, always or never); auto enables color only
// when out is a terminal, honoring NO_COLOR through the color package's
// global detection.
func NewReporter(out, errOut io.Writer, mode string) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		scheme: newScheme(colorEnabled(out, mode)),
	}
}

func colorEnabled(out io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := out.(*os.File)
		if !ok {
			return false
		}
		return !color.NoColor && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
}

// Success prints the "source → target" confirmation.
func (r *Reporter) Success(rename *resolver.Rename) {
	fmt.Fprintf(r.out, "%s → %s\n",
		r.scheme.source.Sprint(rename.Source),
		r.scheme.target.Sprint(rename.Target))
}

// Refusal prints a structured refusal or failure. Ambiguous resolutions get
// the full candidate list, one per line, plus a hint on how to
// disambiguate; other kinds print their message with a hint where one
// exists.
func (r *Reporter) Refusal(err error) {
	var resErr *resolver.Error
	if !errors.As(err, &resErr) {
		fmt.Fprintln(r.errOut, r.scheme.fail.Sprint(err.Error()))
		return
	}

	switch resErr.Kind {
	case resolver.KindAmbiguous:
		fmt.Fprintln(r.errOut, r.scheme.fail.Sprintf("Multiple candidates found for '%s':", resErr.Target))
		for _, candidate := range resErr.Candidates {
			fmt.Fprintf(r.errOut, "  %s\n", candidate)
		}
		fmt.Fprintln(r.errOut, r.scheme.hint.Sprint("Cannot proceed - ambiguous match. Rename a competing file first or use a more specific name."))
	case resolver.KindTargetExists:
		fmt.Fprintln(r.errOut, r.scheme.fail.Sprintf("Target '%s' already exists.", resErr.Target))
		fmt.Fprintln(r.errOut, r.scheme.hint.Sprint("Use --force to overwrite."))
	default:
		fmt.Fprintln(r.errOut, r.scheme.fail.Sprint(resErr.Error()))
	}
}
