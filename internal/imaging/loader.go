// Package imaging decodes breed photos and the splash animation.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"cat-encyclopedia/internal/logger"

	"gocv.io/x/gocv"
)

const (
	component = "ImageLoader"

	// DetailSize is the edge length detail photos are scaled to.
	DetailSize = 200
)

var (
	ErrNoImage           = errors.New("record has no image reference")
	ErrUnsupportedFormat = errors.New("unsupported or corrupt image")
)

// Loader resolves image references against a fixed root directory.
type Loader struct {
	root   string
	size   image.Point
	logger logger.Logger
}

func NewLoader(root string, log logger.Logger) *Loader {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Loader{
		root:   root,
		size:   image.Pt(DetailSize, DetailSize),
		logger: log,
	}
}

func (l *Loader) Resolve(ref string) string {
	return filepath.Join(l.root, ref)
}

// Load decodes the referenced file and scales it to the detail size. The
// caller owns the returned asset and must Close it.
func (l *Loader) Load(ref string) (*Asset, error) {
	if ref == "" {
		return nil, ErrNoImage
	}

	path := l.Resolve(ref)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	decoded, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer decoded.Close()

	if decoded.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	resized := gocv.NewMat()
	gocv.Resize(decoded, &resized, l.size, 0, 0, gocv.InterpolationLanczos4)

	img, err := resized.ToImage()
	if err != nil {
		resized.Close()
		return nil, fmt.Errorf("converting %s: %w", path, err)
	}

	l.logger.Debug(component, "image loaded", map[string]interface{}{
		"path":          path,
		"source_width":  decoded.Cols(),
		"source_height": decoded.Rows(),
		"channels":      decoded.Channels(),
	})

	return &Asset{mat: resized, img: img, path: path}, nil
}

// Asset is a decoded, scaled image backed by an OpenCV matrix.
type Asset struct {
	mat    gocv.Mat
	img    image.Image
	path   string
	closed bool
}

func (a *Asset) Image() image.Image {
	if a == nil || a.closed {
		return nil
	}
	return a.img
}

func (a *Asset) Path() string {
	return a.path
}

func (a *Asset) Closed() bool {
	return a == nil || a.closed
}

// Close releases the matrix. Safe to call more than once.
func (a *Asset) Close() error {
	if a == nil || a.closed {
		return nil
	}
	a.closed = true
	a.img = nil
	return a.mat.Close()
}
