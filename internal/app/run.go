package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/trulysimple/tsargp/help"
	"github.com/trulysimple/tsargp/internal/ctxlog"
)

// Run executes the main viewer logic: validate the loaded option set, report
// warnings, and render the formatted help message.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	warnings, err := a.validate(ctx)
	if err != nil {
		return err
	}

	width := resolveWidth(a.outW, a.config.Width)
	withStyles := resolveColor(a.outW, a.config.Color)
	a.logger.Debug("Render parameters resolved.", "width", width, "styles", withStyles)

	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w.Wrap(width, false))
	}
	if len(warnings) > 0 {
		a.logger.Warn("Validation produced warnings.", "count", len(warnings))
	}

	formatter := help.New(nil, a.msgCfg, a.set)
	message := formatter.FormatSections([]help.Section{
		{Kind: help.SectionUsage, Title: "Usage", Program: a.config.Program, Indent: 2},
		{Kind: help.SectionGroups},
	})
	fmt.Fprint(a.outW, message.Wrap(width, withStyles))

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveWidth maps the configured width to a wrapping width. Zero asks the
// terminal; a negative value disables wrapping entirely.
func resolveWidth(outW io.Writer, configured int) int {
	if configured > 0 {
		return configured
	}
	if configured < 0 {
		return 0
	}
	if f, ok := outW.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// resolveColor decides whether styled sequences should reach the output.
func resolveColor(outW io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := outW.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
