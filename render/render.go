package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/mazescape/maze"
)

// Frames draws len(path)+1 frames: frame 0 is the bare maze and frame i+1
// adds path[i] on top of frame i.
func Frames(g *maze.Grid, path []maze.Point, opts ...Option) ([]*image.Paletted, error) {
	o, err := build(g, path, opts)
	if err != nil {
		return nil, err
	}
	s := float64(o.Scale)
	dc := gg.NewContext(g.Width()*o.Scale, g.Height()*o.Scale)
	dc.SetColor(o.Floor)
	dc.Clear()

	dc.SetColor(o.Wall)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.Reachable(maze.Point{X: x, Y: y}) {
				dc.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
			}
		}
	}
	dc.Fill()

	pal := o.palette()
	frames := make([]*image.Paletted, 0, len(path)+1)
	frames = append(frames, snapshot(dc, pal))

	dc.SetColor(o.Path)
	for _, p := range path {
		dc.DrawRectangle(float64(p.X)*s, float64(p.Y)*s, s, s)
		dc.Fill()
		frames = append(frames, snapshot(dc, pal))
	}
	return frames, nil
}

// GIF assembles the frames into an endlessly looping animation.
func GIF(g *maze.Grid, path []maze.Point, opts ...Option) (*gif.GIF, error) {
	o, err := build(g, path, opts)
	if err != nil {
		return nil, err
	}
	frames, err := Frames(g, path, opts...)
	if err != nil {
		return nil, err
	}
	anim := &gif.GIF{
		Image: frames,
		Delay: make([]int, len(frames)),
	}
	for i := range anim.Delay {
		anim.Delay[i] = o.Delay
	}
	return anim, nil
}

// Write encodes the animation for g and path to w.
func Write(w io.Writer, g *maze.Grid, path []maze.Point, opts ...Option) error {
	anim, err := GIF(g, path, opts...)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}

// build validates the inputs and returns the effective options.
func build(g *maze.Grid, path []maze.Point, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGridNil
	}
	if len(path) == 0 {
		return o, ErrEmptyPath
	}
	for i, p := range path {
		if !g.InBounds(p) {
			return o, fmt.Errorf("%w: step %d at %v", ErrOutOfBounds, i, p)
		}
	}
	return o, nil
}

// snapshot copies the current canvas onto a new paletted image.
func snapshot(dc *gg.Context, pal []color.Color) *image.Paletted {
	src := dc.Image()
	dst := image.NewPaletted(src.Bounds(), pal)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
