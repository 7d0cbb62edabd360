// Package atlas implements a shelf-packing texture atlas shared by 2-D
// components. Allocations accumulate on the CPU side and are uploaded to
// the GPU once per frame, before any draw that samples the atlas.
package atlas

import "fmt"

// Region is an allocated rectangle inside the atlas, in pixels.
type Region struct {
	X, Y, W, H int32
}

type shelf struct {
	y      int32
	height int32
	xNext  int32
}

// packer places rectangles onto horizontal shelves. A rectangle goes on
// the first shelf tall enough with room left; otherwise a new shelf is
// opened below the last one.
type packer struct {
	width   int32
	height  int32
	shelves []shelf
	yNext   int32
}

func newPacker(width, height int32) *packer {
	return &packer{width: width, height: height}
}

func (p *packer) alloc(w, h int32) (Region, error) {
	if w <= 0 || h <= 0 {
		return Region{}, fmt.Errorf("invalid allocation size %dx%d", w, h)
	}
	if w > p.width {
		return Region{}, fmt.Errorf("allocation width %d exceeds atlas width %d", w, p.width)
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if h <= s.height && s.xNext+w <= p.width {
			r := Region{X: s.xNext, Y: s.y, W: w, H: h}
			s.xNext += w
			return r, nil
		}
	}

	if p.yNext+h > p.height {
		return Region{}, fmt.Errorf("atlas full: cannot place %dx%d", w, h)
	}

	p.shelves = append(p.shelves, shelf{y: p.yNext, height: h, xNext: w})
	r := Region{X: 0, Y: p.yNext, W: w, H: h}
	p.yNext += h
	return r, nil
}
