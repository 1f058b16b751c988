package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"
)

var ErrNoFrames = errors.New("animation has no frames")

// Animation is a looping, pre-composited frame sequence. The zero value has
// no frames.
type Animation struct {
	frames []image.Image
	next   int
}

// LoadAnimation decodes every frame of a GIF file.
func LoadAnimation(path string) (*Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening animation: %w", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("decoding animation %s: %w", path, err)
	}
	return NewAnimation(g)
}

// NewAnimation composites the frames of g so each one can be drawn on its
// own, honouring the per-frame disposal method.
func NewAnimation(g *gif.GIF) (*Animation, error) {
	if g == nil || len(g.Image) == 0 {
		return nil, ErrNoFrames
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	anim := &Animation{frames: make([]image.Image, 0, len(g.Image))}

	for i, frame := range g.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		anim.frames = append(anim.frames, cloneRGBA(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	return anim, nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

func (a *Animation) Len() int {
	return len(a.frames)
}

// Frame returns frame i, wrapping modulo the frame count, or nil when there
// are no frames.
func (a *Animation) Frame(i int) image.Image {
	n := len(a.frames)
	if n == 0 {
		return nil
	}
	i %= n
	if i < 0 {
		i += n
	}
	return a.frames[i]
}

// Next returns the current frame and advances, restarting after the last.
func (a *Animation) Next() image.Image {
	frame := a.Frame(a.next)
	if frame != nil {
		a.next = (a.next + 1) % len(a.frames)
	}
	return frame
}
