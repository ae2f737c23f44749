// Package plot hands signals, spectra and images to an external renderer.
//
// Nothing here draws. A [Renderer] receives plain slices together with the
// titles and axis labels to show, and is responsible for all figure, axis and
// display handling. [Plotter] prepares the data (generating a waveform, taking
// the DFT magnitude, validating an image) and fills in the default titles:
//
//	"Signal plot"             line plots of a signal
//	"Image"                   2D images
//	"DFT Magnitude Spectrum"  DFT magnitude plots
package plot
