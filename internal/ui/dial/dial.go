// Package dial draws the circular countdown indicator.
package dial

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"pomodoro/internal/core/progress"
)

var (
	TrackColor = color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	ArcColor   = color.NRGBA{R: 0x7e, G: 0x5b, B: 0xef, A: 0xff}
)

// DefaultThickness is the ring width in pixels.
const DefaultThickness = 10

// Ring describes one frame of the indicator.
type Ring struct {
	Fraction  float64
	Visible   bool
	Thickness float64
}

// At returns the color of pixel (x, y) in a w×h raster.
// The track is a full circle; the arc starts at 12 o'clock and runs clockwise.
func (ring Ring) At(x, y, w, h int) color.Color {
	if !ring.Visible || w <= 0 || h <= 0 {
		return color.Transparent
	}
	thickness := ring.Thickness
	if thickness <= 0 {
		thickness = DefaultThickness
	}

	centerX := float64(w) / 2
	centerY := float64(h) / 2
	radius := math.Min(centerX, centerY) - thickness/2 - 1
	if radius <= 0 {
		return color.Transparent
	}

	dx := float64(x) + 0.5 - centerX
	dy := float64(y) + 0.5 - centerY
	if math.Abs(math.Hypot(dx, dy)-radius) > thickness/2 {
		return color.Transparent
	}

	if clockwiseAngle(dx, dy) < progress.Sweep(ring.Fraction) {
		return ArcColor
	}
	return TrackColor
}

// clockwiseAngle measures degrees from 12 o'clock in screen coordinates.
func clockwiseAngle(dx, dy float64) float64 {
	angle := math.Atan2(dx, -dy) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle
}

// Dial is a raster canvas object showing a Ring.
type Dial struct {
	mu     sync.Mutex
	ring   Ring
	raster *canvas.Raster
}

// New creates a dial with the given minimum size.
func New(minSize fyne.Size) *Dial {
	dial := &Dial{ring: Ring{Thickness: DefaultThickness}}
	dial.raster = canvas.NewRasterWithPixels(dial.pixel)
	dial.raster.SetMinSize(minSize)
	return dial
}

// Object returns the canvas object to place in a layout.
func (dial *Dial) Object() fyne.CanvasObject {
	return dial.raster
}

// SetProgress updates the countdown shown by the dial.
func (dial *Dial) SetProgress(remaining, total int) {
	fraction, ok := progress.Fraction(remaining, total)
	dial.mu.Lock()
	dial.ring.Fraction = fraction
	dial.ring.Visible = ok
	dial.mu.Unlock()
	dial.raster.Refresh()
}

// Ring returns the frame currently drawn.
func (dial *Dial) Ring() Ring {
	dial.mu.Lock()
	defer dial.mu.Unlock()
	return dial.ring
}

func (dial *Dial) pixel(x, y, w, h int) color.Color {
	dial.mu.Lock()
	ring := dial.ring
	dial.mu.Unlock()
	return ring.At(x, y, w, h)
}
