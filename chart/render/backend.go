//go:build !cairo
// +build !cairo

package render

func newSurface(width, height int) (pngSurface, error) {
	return NewRaster(width, height)
}
