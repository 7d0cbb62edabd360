package render

import "sync/atomic"

// Framebuffer dimensions packed into one word so resize events from the
// event loop and per-frame reads never see a torn width/height pair.
var dimensions atomic.Uint64

// SetDimensions stores the current framebuffer size. Called on resize.
func SetDimensions(width, height uint32) {
	dimensions.Store(uint64(width) | uint64(height)<<32)
}

// Dimensions returns the last stored framebuffer size.
func Dimensions() (width, height uint32) {
	packed := dimensions.Load()
	return uint32(packed), uint32(packed >> 32)
}
