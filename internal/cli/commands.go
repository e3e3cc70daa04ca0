package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/vrhud/internal/app"
	"github.com/riordanpawley/vrhud/internal/config"
	"github.com/riordanpawley/vrhud/internal/menu"
	"github.com/riordanpawley/vrhud/internal/notify"
	"github.com/riordanpawley/vrhud/internal/ui/hud"
	"github.com/riordanpawley/vrhud/internal/ui/overlay"
	"github.com/riordanpawley/vrhud/internal/ui/richtext"
)

// DefaultMaxFrames bounds a headless run when no limit is given
const DefaultMaxFrames = 10000

// Dependencies holds everything the CLI commands need
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
	Out    io.Writer
}

// NewDependencies creates Dependencies writing to stdout
func NewDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dependencies{
		Config: cfg,
		Logger: logger,
		Out:    os.Stdout,
	}
}

// RunCommand starts the interactive overlay
func RunCommand(deps *Dependencies) error {
	deps.Logger.Info("starting overlay", "frame_rate", deps.Config.Host.FrameRate)

	p := tea.NewProgram(app.New(deps.Config, deps.Logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("overlay exited: %w", err)
	}
	return nil
}

// NotifyOptions controls a headless notification run
type NotifyOptions struct {
	Level     notify.Level
	MaxFrames int  // 0 means DefaultMaxFrames
	Raw       bool // print markup instead of the parsed lines
}

// NotifyCommand posts messages to a headless overlay and steps it at the
// configured frame rate, printing the display text every time it changes,
// until every notification has expired and the panel has faded out.
func NotifyCommand(deps *Dependencies, messages []string, opts NotifyOptions) error {
	h := app.NewHUD(deps.Config, hud.DemoScene(), nil, deps.Logger)
	for _, msg := range messages {
		h.Service.Notify(opts.Level, msg)
	}
	if h.Queue.Len() == 0 {
		return errors.New("nothing to show: every message was blank")
	}

	limit := opts.MaxFrames
	if limit <= 0 {
		limit = DefaultMaxFrames
	}
	dt := deps.Config.Host.FrameInterval()

	var elapsed time.Duration
	last := h.Queue.Text()
	writeSnapshot(deps.Out, elapsed, last, opts.Raw)

	frames := 0
	for frames < limit && !h.Settled() {
		h.Step(dt)
		elapsed += dt
		frames++

		if text := h.Queue.Text(); text != last {
			last = text
			writeSnapshot(deps.Out, elapsed, text, opts.Raw)
		}
	}

	if !h.Settled() {
		return fmt.Errorf("overlay still animating after %d frames", limit)
	}
	fmt.Fprintf(deps.Out, "settled after %s (%d frames)\n", elapsed.Round(time.Millisecond), frames)
	return nil
}

func writeSnapshot(w io.Writer, at time.Duration, markup string, raw bool) {
	fmt.Fprintf(w, "[%s]\n", at.Round(time.Millisecond))

	if raw {
		if markup != "" {
			fmt.Fprintln(w, markup)
		}
		return
	}

	frags := richtext.Parse(markup)
	if len(frags) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	for _, f := range frags {
		fmt.Fprintf(w, "  size %2d  alpha %.2f  %s\n", f.Size, f.Alpha, f.Text)
	}
}

// TabsCommand lists the built-in tab registrations and whether the demo
// scene provides the view and button each one needs
func TabsCommand(deps *Dependencies) error {
	regs := overlay.Registrations(app.TabSettings(deps.Config))
	m := menu.Build(hud.DemoScene(), regs, &hud.Surface{}, deps.Config.Menu.AnimatorOptions(), deps.Logger)

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HANDLER\tTAB\tID\tSTATUS")
	fmt.Fprintln(w, "-------\t---\t--\t------")

	for i, err := range m.Results() {
		reg := regs[i]
		status := "ok"
		if err != nil {
			status = "skipped: " + err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", reg.Handler, reg.TabName(), reg.ID(), status)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write tab list: %w", err)
	}

	if n := len(m.Skipped()); n > 0 {
		return fmt.Errorf("%d of %d tabs could not be registered", n, len(regs))
	}
	return nil
}

// InitCommand writes the default configuration to dir. An existing file is
// only replaced when force is set.
func InitCommand(deps *Dependencies, dir string, force bool) error {
	path := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}

	deps.Logger.Info("config written", "path", path)
	fmt.Fprintf(deps.Out, "✓ Wrote %s\n", path)
	return nil
}
