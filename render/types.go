// Package render draws a solved maze as an animated GIF: the first frame
// shows walls and floor, and every following frame marks one more cell of
// the escape path.
package render

import (
	"errors"
	"fmt"
	"image/color"
)

// Sentinel errors for rendering.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("render: grid is nil")
	// ErrEmptyPath is returned when there is nothing to animate.
	ErrEmptyPath = errors.New("render: path is empty")
	// ErrOutOfBounds is returned for a path point outside the grid.
	ErrOutOfBounds = errors.New("render: path point out of bounds")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Default colours.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
	Blue  = color.RGBA{R: 51, G: 153, B: 255, A: 255}
)

// DefaultScale is the side, in pixels, of one maze cell.
const DefaultScale = 10

// Option configures rendering via functional arguments.
type Option func(*Options)

// Options holds drawing parameters.
type Options struct {
	// Scale is the side of a cell in pixels.
	Scale int
	// Delay is the per-frame delay in 100ths of a second.
	Delay int
	// Floor, Wall and Path are the three palette colours.
	Floor, Wall, Path color.Color

	err error
}

// DefaultOptions returns white floor, black walls, a blue path,
// Scale=DefaultScale and Delay=0.
func DefaultOptions() Options {
	return Options{
		Scale: DefaultScale,
		Floor: White,
		Wall:  Black,
		Path:  Blue,
	}
}

// WithScale sets the cell size in pixels; n < 1 is an ErrOptionViolation.
func WithScale(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: scale must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Scale = n
	}
}

// WithDelay sets the per-frame delay in 100ths of a second; negative values
// are an ErrOptionViolation.
func WithDelay(centis int) Option {
	return func(o *Options) {
		if centis < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%d)", ErrOptionViolation, centis)
			return
		}
		o.Delay = centis
	}
}

// WithColors overrides the palette. Nil arguments keep the defaults.
func WithColors(floor, wall, path color.Color) Option {
	return func(o *Options) {
		if floor != nil {
			o.Floor = floor
		}
		if wall != nil {
			o.Wall = wall
		}
		if path != nil {
			o.Path = path
		}
	}
}

func (o Options) palette() color.Palette {
	return color.Palette{o.Floor, o.Wall, o.Path}
}
