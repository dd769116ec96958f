package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetower/pkg/algorithms"
	mterrors "github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/maze"
	"github.com/matzehuels/mazetower/pkg/pipeline"
	"github.com/matzehuels/mazetower/pkg/render/sink"
)

// frameInterval is the redraw period of the animation.
const frameInterval = time.Second / 30

// Animation styles
var (
	markerStyle    = lipgloss.NewStyle().Background(colorCyan).Foreground(lipgloss.Color("0"))
	unvisitedStyle = lipgloss.NewStyle().Foreground(colorDim)
	setPalette     = []lipgloss.Color{"36", "35", "220", "167", "75", "141", "208", "114"}
)

// animateOpts holds the command-line flags for the animate command.
type animateOpts struct {
	algorithm string
	size      int
	seed      uint64
	interval  time.Duration
	maxBurst  int
	paused    bool
}

// animateCommand creates the animate command that carves a maze live in the terminal.
func (c *CLI) animateCommand() *cobra.Command {
	var opts animateOpts

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Watch a maze being carved in the terminal",
		Long: `Watch a maze being carved in the terminal.

The algorithm performs one unit of work per --interval of wall-clock time
and the current cell or row is highlighted after every frame.

Keys:
  space  pause / resume
  n      single step (pauses)
  r      restart with the next seed
  q      quit`,
		Example: `  mazetower animate -a eller -n 20
  mazetower animate -a aldousbroder -n 12 --interval 5ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := pipeline.Options{Algorithm: opts.algorithm, Size: opts.size, Seed: opts.seed}
			c.applyConfig(cmd, &popts, nil)
			opts.algorithm, opts.size, opts.seed = popts.Algorithm, popts.Size, popts.Seed
			if !cmd.Flags().Changed("interval") {
				opts.interval = c.Config.Interval.Duration
			}
			if err := popts.ValidateForGenerate(); err != nil {
				return err
			}
			return c.runAnimate(cmd.Context(), opts)
		},
	}

	addMazeFlags(cmd, &opts.algorithm, &opts.size, &opts.seed)
	cmd.Flags().DurationVar(&opts.interval, "interval", 50*time.Millisecond, "time per unit of work (0 = one unit per frame)")
	cmd.Flags().IntVar(&opts.maxBurst, "max-burst", maze.DefaultMaxBurst, "most units performed in one frame")
	cmd.Flags().BoolVar(&opts.paused, "paused", false, "start paused")

	return cmd
}

// runAnimate runs the bubbletea program until the user quits.
func (c *CLI) runAnimate(ctx context.Context, opts animateOpts) error {
	if opts.interval < 0 {
		return mterrors.New(mterrors.ErrCodeInvalidInput, "interval must not be negative, got %s", opts.interval)
	}
	build := func(seed uint64) (maze.Algorithm, error) {
		return algorithms.New(opts.algorithm,
			algorithms.WithSeed(seed),
			algorithms.WithInterval(opts.interval),
			algorithms.WithMaxBurst(opts.maxBurst))
	}
	m, err := newAnimateModel(build, opts.algorithm, opts.size, opts.seed, time.Now())
	if err != nil {
		return err
	}
	m.paused = opts.paused

	c.Logger.Debug("starting animation", "algorithm", opts.algorithm, "size", opts.size, "seed", opts.seed, "interval", opts.interval)

	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("animate: %w", err)
	}

	if fm, ok := final.(animateModel); ok {
		c.Logger.Info("animation finished",
			"algorithm", opts.algorithm,
			"seed", fm.seed,
			"done", fm.alg.Done(),
			"passages", maze.PassageCount(fm.alg.Grid()))
	}
	return nil
}

// =============================================================================
// animateModel - bubbletea model driving one engine
// =============================================================================

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// setColourer is implemented by engines that expose per-column set ids.
type setColourer interface {
	SetOf(x int) int
}

// animateModel feeds wall-clock time to an engine. The engine clock only
// advances while running, so pausing does not cause a burst on resume.
type animateModel struct {
	build func(seed uint64) (maze.Algorithm, error)
	alg   maze.Algorithm
	title string
	size  int
	seed  uint64

	clock   time.Duration
	last    time.Time
	paused  bool
	ticking bool
	width   int
	height  int
}

func newAnimateModel(build func(uint64) (maze.Algorithm, error), name string, size int, seed uint64, now time.Time) (animateModel, error) {
	m := animateModel{build: build, size: size, seed: seed, last: now, title: name}
	if info, ok := algorithms.Lookup(name); ok {
		m.title = info.Title
	}
	if err := m.restart(seed); err != nil {
		return animateModel{}, err
	}
	return m, nil
}

func (m *animateModel) restart(seed uint64) error {
	alg, err := m.build(seed)
	if err != nil {
		return err
	}
	alg.Init(m.size)
	m.alg = alg
	m.seed = seed
	m.clock = 0
	return nil
}

func (m animateModel) Init() tea.Cmd {
	return tick()
}

func (m animateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		if !m.paused && !m.alg.Done() {
			m.clock += now.Sub(m.last)
			m.alg.Step(m.clock)
		}
		m.last = now
		if m.alg.Done() {
			m.ticking = false
			return m, nil
		}
		m.ticking = true
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.alg.Stop()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n":
			m.paused = true
			if s, ok := m.alg.(maze.Stepper); ok {
				s.Next()
			}
		case "r":
			if err := m.restart(m.seed + 1); err != nil {
				return m, tea.Quit
			}
			m.paused = false
			if !m.ticking {
				m.ticking = true
				return m, tick()
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m animateModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %dx%d · seed %d", m.size, m.size, m.seed)))
	b.WriteString("\n\n")

	if m.width > 0 && (2*m.size+1 > m.width || m.size+6 > m.height) {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("%s terminal too small for a %dx%d maze", iconWarning, m.size, m.size)))
		b.WriteString("\n")
	} else {
		b.WriteString(sink.RenderText(m.alg.Grid(),
			sink.WithTextMarker(m.alg.Current()),
			sink.WithCellStyler(m.styleCell)))
	}

	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space pause  n step  r restart  q quit"))
	return b.String()
}

func (m animateModel) status() string {
	carved := maze.PassageCount(m.alg.Grid())
	total := m.size*m.size - 1
	if total < 0 {
		total = 0
	}
	counter := StyleNumber.Render(fmt.Sprintf("%d/%d", carved, total)) + StyleDim.Render(" passages")

	switch {
	case m.alg.Done():
		return styleIconSuccess.Render(iconSuccess) + " " + counter + StyleDim.Render(" · done")
	case m.paused:
		return styleIconWarning.Render(iconWarning) + " " + counter + StyleDim.Render(" · paused")
	}
	return styleIconInfo.Render(iconInfo) + " " + counter
}

// styleCell colours the marker, dims unvisited cells and, for engines that
// carry sets down between rows, tints the cells of the next row by set.
func (m animateModel) styleCell(x, y int, chunk string, highlighted bool) string {
	if highlighted {
		return markerStyle.Render(chunk)
	}
	cur := m.alg.Current()
	if sc, ok := m.alg.(setColourer); ok && cur.Kind == maze.MarkerRow && y == cur.Row+1 {
		if id := sc.SetOf(x); id > 0 {
			return lipgloss.NewStyle().Foreground(setPalette[id%len(setPalette)]).Render(chunk)
		}
	}
	if !m.alg.Grid().Visited(x, y) {
		return unvisitedStyle.Render(chunk)
	}
	return chunk
}
