package plot

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-sigproc/dsp/conv"
	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/fourier"
	"github.com/cwbudde/algo-sigproc/dsp/signal"
)

// Default titles and axis labels passed to the renderer.
const (
	TitleSignal       = "Signal plot"
	TitleImage        = "Image"
	TitleDFTMagnitude = "DFT Magnitude Spectrum"

	LabelTime         = "Time [s]"
	LabelAmplitude    = "Amplitude"
	LabelSampleIndex  = "Sample index"
	LabelFrequencyBin = "Frequency bin"
	LabelMagnitude    = "Magnitude"
)

// ErrNoRenderer is returned when a Plotter was built without a Renderer.
var ErrNoRenderer = fmt.Errorf("%w: plot: nil renderer", core.ErrInvalidArgument)

// Series is one line plot. A nil X means Y is plotted against its index.
type Series struct {
	X      []float64
	Y      []float64
	Title  string
	XLabel string
	YLabel string
}

// Renderer draws what it is given. Implementations live outside this module.
type Renderer interface {
	Line(s Series) error
	Image(image [][]float64, title string) error
}

// Plotter prepares data for a Renderer.
type Plotter struct {
	r   Renderer
	cfg core.ProcessorConfig
}

// New returns a Plotter that delegates to r. With a nil r every plotting
// method fails with ErrNoRenderer.
func New(r Renderer, opts ...core.ProcessorOption) *Plotter {
	return &Plotter{
		r:   r,
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Line generates a waveform and plots it against time in seconds.
func (p *Plotter) Line(typ signal.Type, freqHz, sampleRate, duration float64) error {
	y, err := signal.Generate(typ, freqHz, sampleRate, duration)
	if err != nil {
		return err
	}
	t, err := signal.Times(len(y), sampleRate)
	if err != nil {
		return err
	}
	return p.line(Series{
		X:      t,
		Y:      y,
		Title:  TitleSignal,
		XLabel: LabelTime,
		YLabel: LabelAmplitude,
	})
}

// Signal plots x against its sample index. An empty title selects
// TitleSignal.
func (p *Plotter) Signal(x []float64, title string) error {
	if title == "" {
		title = TitleSignal
	}
	return p.line(Series{
		Y:      x,
		Title:  title,
		XLabel: LabelSampleIndex,
		YLabel: LabelAmplitude,
	})
}

// DFT plots the magnitude of the DFT of x against the bin index.
func (p *Plotter) DFT(x []float64) error {
	return p.line(Series{
		Y:      fourier.MagnitudeSpectrum(x),
		Title:  TitleDFTMagnitude,
		XLabel: LabelFrequencyBin,
		YLabel: LabelMagnitude,
	})
}

// Image validates image and hands it to the renderer. An empty title
// selects TitleImage.
func (p *Plotter) Image(image [][]float64, title string) error {
	if p.r == nil {
		return ErrNoRenderer
	}
	rows, cols, err := conv.ValidateMatrix(image)
	if err != nil {
		return err
	}
	if title == "" {
		title = TitleImage
	}
	p.cfg.Logger.Debug("delegating image",
		slog.String("title", title),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
	)
	if err := p.r.Image(image, title); err != nil {
		return fmt.Errorf("plot: render image %q: %w", title, err)
	}
	return nil
}

func (p *Plotter) line(s Series) error {
	if p.r == nil {
		return ErrNoRenderer
	}
	p.cfg.Logger.Debug("delegating line plot",
		slog.String("title", s.Title),
		slog.Int("points", len(s.Y)),
	)
	if err := p.r.Line(s); err != nil {
		return fmt.Errorf("plot: render line %q: %w", s.Title, err)
	}
	return nil
}
