package curves

import "image"

func pts(coords ...int) []image.Point {
	out := make([]image.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, image.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}
