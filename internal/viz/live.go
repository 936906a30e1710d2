package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/oscillab/internal/oscillator"
	"github.com/san-kum/oscillab/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

type TickMsg time.Time

// runOutcome carries the published result once the engine loop ends.
type runOutcome struct {
	result *sim.Result
	err    error
}

// tickObserver forwards each engine sample to the view. The send is
// unbuffered, so the engine loop suspends at its hand-off point until
// the view consumes the sample: pausing the view pauses the run.
type tickObserver struct {
	ch chan<- oscillator.Sample
}

func (o tickObserver) OnTick(s oscillator.Sample) { o.ch <- s }

// Model is the rendering collaborator of a live run. The engine owns
// the tick loop; the view only consumes samples published through the
// observer hook and issues Stop requests.
type Model struct {
	params oscillator.Parameters
	desc   oscillator.Descriptor
	fps    int
	frames int

	runner  *sim.Runner
	samples chan oscillator.Sample
	outcome chan runOutcome

	series        *sim.TimeSeries
	energyHistory []float64

	canvas *Canvas
	paused bool
	result *sim.Result
	err    error
}

// NewModel prepares a live run. Classify must have accepted the
// parameters before the view starts.
func NewModel(p oscillator.Parameters, d oscillator.Descriptor, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	frames := int(p.Duration * float64(fps))

	samples := make(chan oscillator.Sample)
	runner := sim.NewRunner()
	runner.AddObserver(tickObserver{ch: samples})

	return Model{
		params:        p,
		desc:          d,
		fps:           fps,
		frames:        frames,
		runner:        runner,
		samples:       samples,
		outcome:       make(chan runOutcome, 1),
		series:        sim.NewTimeSeries(frames),
		energyHistory: make([]float64, 0, historyCapacity),
		canvas:        NewCanvas(width, height),
	}
}

// Init launches the engine loop; samples is closed once it returns so
// an abandoned view can drain cleanly.
func (m Model) Init() tea.Cmd {
	go func() {
		result, err := m.runner.Run(context.Background(), m.params, sim.Options{FPS: m.fps})
		close(m.samples)
		m.outcome <- runOutcome{result: result, err: err}
	}()
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.abandon()
			return m, tea.Quit
		case " ":
			if !m.done() {
				m.paused = !m.paused
			}
		case "s":
			if !m.done() {
				m.runner.Stop()
			}
		case "r":
			m.abandon()
			next := NewModel(m.params, m.desc, m.fps)
			return next, next.Init()
		}
	case TickMsg:
		if !m.done() {
			if !m.paused {
				select {
				case s, ok := <-m.samples:
					if ok {
						m.append(s)
					}
				default:
				}
			}
			select {
			case out := <-m.outcome:
				m.result, m.err = out.result, out.err
			default:
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) append(s oscillator.Sample) {
	m.series.Append(s)
	m.energyHistory = append(m.energyHistory, s.TE)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *Model) done() bool {
	return m.result != nil || m.err != nil
}

// abandon releases a still-active engine loop when the view quits or
// resets: stop it, then drain until the run goroutine closes samples.
func (m *Model) abandon() {
	if m.done() {
		return
	}
	m.runner.Stop()
	go func(ch <-chan oscillator.Sample) {
		for range ch {
		}
	}(m.samples)
}

// Series exposes the published series once the run ends, or the render
// buffer of samples consumed so far.
func (m Model) Series() *sim.TimeSeries {
	if m.result != nil {
		return m.result.Series
	}
	return m.series
}

// Result returns the published outcome, nil while the run is active.
func (m Model) Result() *sim.Result { return m.result }

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	status := statusRunning.Render("RUNNING")
	switch {
	case m.result != nil && m.result.Phase == sim.Stopped:
		status = statusDone.Render("STOPPED")
	case m.result != nil:
		status = statusDone.Render("COMPLETED")
	case m.err != nil:
		status = statusPaused.Render("ERROR")
	case m.paused:
		status = statusPaused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("DAMPED OSCILLATOR") + "\n")
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("Total Energy"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	t := 0.0
	if n := m.series.Len(); n > 0 {
		t = m.series.Times[n-1]
	}
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs / %.2fs", t, m.params.Duration)) + "\n")

	if n := m.series.Len(); n > 0 {
		last := m.series.At(n - 1)
		s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("%.3f m", last.X)) + "\n")
		s.WriteString(labelStyle.Render("Velocity") + valueStyle.Render(fmt.Sprintf("%.3f m/s", last.V)) + "\n")
		s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.3f J", last.TE)) + "\n")
	}

	s.WriteString("\n" + labelStyle.Render("ω₀") + valueStyle.Render(fmt.Sprintf("%.2f rad/s", m.desc.Omega0)) + "\n")
	s.WriteString(labelStyle.Render("γ") + valueStyle.Render(fmt.Sprintf("%.2f 1/s", m.desc.Gamma)) + "\n")
	s.WriteString(labelStyle.Render("ωd") + valueStyle.Render(fmt.Sprintf("%.2f rad/s", m.desc.OmegaD)) + "\n")
	s.WriteString(labelStyle.Render("Period") + valueStyle.Render(fmt.Sprintf("%.2f s", m.desc.Period)) + "\n")

	if m.result != nil {
		if avg, ok := m.result.AvgTotalEnergy(); ok {
			s.WriteString("\n" + labelStyle.Render("Avg Energy") + valueStyle.Render(fmt.Sprintf("%.2f J", avg)) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause S:Stop R:Reset Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// draw renders the wall, zigzag spring and mass block for the current
// displacement.
func (m *Model) draw() {
	m.canvas.Clear()

	cy := height * 4 / 2
	wallX := 10
	m.canvas.DrawLine(wallX, cy-12, wallX, cy+12)

	x := m.params.Displacement
	if n := m.series.Len(); n > 0 {
		x = m.series.Positions[n-1]
	}

	// Rest position sits at mid-canvas; displacement scales to sub-pixels.
	restX := width
	scale := 40.0
	massX := restX + int(x*scale)
	if massX < wallX+8 {
		massX = wallX + 8
	}

	const numCoils = 10
	dist := massX - 4 - wallX
	stepW := float64(dist) / float64(numCoils)
	prevX, prevY := wallX, cy
	for i := 1; i <= numCoils; i++ {
		currX := wallX + int(float64(i)*stepW)
		currY := cy
		if i%2 == 0 {
			currY -= 6
		} else {
			currY += 6
		}
		m.canvas.DrawLine(prevX, prevY, currX, currY)
		prevX, prevY = currX, currY
	}
	m.canvas.DrawLine(prevX, prevY, massX-4, cy)

	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			m.canvas.Set(massX+dx, cy+dy)
		}
	}
}
