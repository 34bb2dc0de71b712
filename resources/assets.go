package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"

	"pomodoro/internal/ui/dial"
)

const iconSize = 64

// IconStyle selects one of the generated application icons.
type IconStyle string

const (
	IconApp     IconStyle = "app"
	IconRunning IconStyle = "running"
	IconPaused  IconStyle = "paused"
)

var iconCache sync.Map

// Icon returns a PNG resource for style, drawn with the countdown dial.
func Icon(style IconStyle) (fyne.Resource, error) {
	if cached, ok := iconCache.Load(style); ok {
		return cached.(fyne.Resource), nil
	}

	ring, err := iconRing(style)
	if err != nil {
		return nil, err
	}
	data, err := renderRing(ring, iconSize)
	if err != nil {
		return nil, fmt.Errorf("render icon %s: %w", style, err)
	}

	resource := fyne.NewStaticResource(fmt.Sprintf("pomodoro-%s.png", style), data)
	iconCache.Store(style, resource)
	return resource, nil
}

// MustIcon returns an icon resource or panics on error.
func MustIcon(style IconStyle) fyne.Resource {
	resource, err := Icon(style)
	if err != nil {
		panic(err)
	}
	return resource
}

func iconRing(style IconStyle) (dial.Ring, error) {
	switch style {
	case IconApp:
		return dial.Ring{Fraction: 0.75, Visible: true, Thickness: 12}, nil
	case IconRunning:
		return dial.Ring{Fraction: 1, Visible: true, Thickness: 12}, nil
	case IconPaused:
		return dial.Ring{Fraction: 0, Visible: true, Thickness: 12}, nil
	default:
		return dial.Ring{}, fmt.Errorf("unknown icon style %q", style)
	}
}

func renderRing(ring dial.Ring, size int) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, ring.At(x, y, size, size))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
