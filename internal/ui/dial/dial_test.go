package dial

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

const size = 200

// top, right, bottom and left points on the ring of a 200x200 raster.
var (
	top    = [2]int{100, 6}
	right  = [2]int{193, 100}
	bottom = [2]int{100, 193}
	left   = [2]int{6, 100}
)

func colorAt(ring Ring, point [2]int) color.Color {
	return ring.At(point[0], point[1], size, size)
}

func TestRingHiddenDrawsNothing(t *testing.T) {
	ring := Ring{Fraction: 0.5, Visible: false}
	assert.Equal(t, color.Transparent, colorAt(ring, top))
	assert.Equal(t, color.Transparent, colorAt(ring, bottom))
}

func TestRingTrackAlwaysDrawn(t *testing.T) {
	ring := Ring{Fraction: 0, Visible: true}
	for _, point := range [][2]int{top, right, bottom, left} {
		assert.Equal(t, color.Color(TrackColor), colorAt(ring, point))
	}
	assert.Equal(t, color.Transparent, ring.At(100, 100, size, size))
}

func TestRingSweepsClockwiseFromTop(t *testing.T) {
	ring := Ring{Fraction: 0.3, Visible: true}
	assert.Equal(t, color.Color(ArcColor), colorAt(ring, right))
	assert.Equal(t, color.Color(TrackColor), colorAt(ring, bottom))
	assert.Equal(t, color.Color(TrackColor), colorAt(ring, left))

	ring.Fraction = 0.6
	assert.Equal(t, color.Color(ArcColor), colorAt(ring, bottom))
	assert.Equal(t, color.Color(TrackColor), colorAt(ring, left))

	ring.Fraction = 1
	for _, point := range [][2]int{top, right, bottom, left} {
		assert.Equal(t, color.Color(ArcColor), colorAt(ring, point))
	}
}

func TestClockwiseAngle(t *testing.T) {
	assert.InDelta(t, 0, clockwiseAngle(0, -1), 1e-9)
	assert.InDelta(t, 90, clockwiseAngle(1, 0), 1e-9)
	assert.InDelta(t, 180, clockwiseAngle(0, 1), 1e-9)
	assert.InDelta(t, 270, clockwiseAngle(-1, 0), 1e-9)
}

func TestDialSetProgress(t *testing.T) {
	test.NewApp()
	dial := New(fyne.NewSize(size, size))

	dial.SetProgress(750, 1500)
	ring := dial.Ring()
	assert.True(t, ring.Visible)
	assert.InDelta(t, 0.5, ring.Fraction, 1e-9)

	dial.SetProgress(0, 0)
	assert.False(t, dial.Ring().Visible)
}
