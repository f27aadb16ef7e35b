// Package curves generates the decorative wave shapes drawn behind the
// subject of every mockup. Shapes are derived from a seed string so the same
// screenshot name always gets the same pattern.
package curves

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math/rand"
	"strings"

	"github.com/user/storeshots/pkg/ports"
)

// ErrDegenerateGeometry reports that no curve could be generated for the
// requested canvas. It is never fatal to an asset.
var ErrDegenerateGeometry = errors.New("degenerate curve geometry")

// Orientation selects the wave layout.
type Orientation int

const (
	// Vertical waves grow from the left/right edges (portrait screenshots).
	Vertical Orientation = iota
	// Horizontal waves grow from the top/bottom edges (banners).
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Edge is the canvas edge a curve is anchored to.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// Config holds the random ranges used by the generator.
type Config struct {
	AmplitudeMin float64 // fraction of canvas width
	AmplitudeMax float64
	StartYMin    float64 // fraction of canvas height
	StartYMax    float64
	EndYMin      float64
	EndYMax      float64
	MinCurves    int
	MaxCurves    int
}

// DefaultConfig returns the standard decorative curve configuration.
func DefaultConfig() Config {
	return Config{
		AmplitudeMin: 0.25,
		AmplitudeMax: 0.45,
		StartYMin:    0.0,
		StartYMax:    0.15,
		EndYMin:      0.85,
		EndYMax:      1.0,
		MinCurves:    1,
		MaxCurves:    2,
	}
}

// Path is one closed decorative shape.
type Path struct {
	Edge     Edge
	Points   []image.Point // wave anchors, edge to edge
	Segments []ports.PathSegment
}

// SVG renders the path as an SVG path "d" attribute.
func (p Path) SVG() string {
	var b strings.Builder
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch seg.Op {
		case ports.PathMoveTo:
			b.WriteString("M")
		case ports.PathLineTo:
			b.WriteString("L")
		case ports.PathQuadTo:
			b.WriteString("Q")
		case ports.PathCubicTo:
			b.WriteString("C")
		case ports.PathClose:
			b.WriteString("Z")
		}
		for _, pt := range seg.Points {
			fmt.Fprintf(&b, " %d,%d", pt.X, pt.Y)
		}
	}
	return b.String()
}

// Generator produces seeded decorative curves.
type Generator struct {
	cfg Config
}

// NewGenerator creates a generator with the given configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate dispatches on orientation.
func (g *Generator) Generate(width, height int, seed string, orientation Orientation) ([]Path, error) {
	if orientation == Horizontal {
		return g.Horizontal(width, height, seed)
	}
	return g.Vertical(width, height, seed)
}

// Vertical generates 1-2 curves anchored to the left and/or right edges.
func (g *Generator) Vertical(width, height int, seed string) ([]Path, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateGeometry, width, height)
	}
	rng := newRand(seed)
	numCurves := randInt(rng, g.cfg.MinCurves, g.cfg.MaxCurves)

	// left and right twice as likely as both
	sides := []string{"left", "left", "right", "right", "both"}

	var paths []Path
	for i := 0; i < numCurves; i++ {
		switch side := sides[rng.Intn(len(sides))]; side {
		case "both":
			left := g.verticalPoints(width, height, rng, EdgeLeft)
			right := g.verticalPoints(width, height, rng, EdgeRight)
			paths = append(paths, verticalPath(left, width, height, EdgeLeft), verticalPath(right, width, height, EdgeRight))
		default:
			edge := Edge(side)
			paths = append(paths, verticalPath(g.verticalPoints(width, height, rng, edge), width, height, edge))
		}
	}
	return paths, nil
}

// Horizontal generates 1-2 curves anchored to the top and/or bottom edges.
func (g *Generator) Horizontal(width, height int, seed string) ([]Path, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateGeometry, width, height)
	}
	rng := newRand(seed)
	numCurves := randInt(rng, 1, 2)

	var paths []Path
	for i := 0; i < numCurves; i++ {
		var edge Edge
		if numCurves == 2 {
			edge = EdgeTop
			if i == 1 {
				edge = EdgeBottom
			}
		} else {
			edge = []Edge{EdgeTop, EdgeBottom}[rng.Intn(2)]
		}
		waves := randInt(rng, 2, 3)
		points := horizontalPoints(width, height, rng, edge, waves)
		paths = append(paths, horizontalPath(points, width, height, edge))
	}
	return paths, nil
}

// Blobs generates count closed ellipse-like shapes. They are not part of the
// standard backgrounds but share the seeding so callers can layer them.
func (g *Generator) Blobs(width, height int, seed string, count int) ([]Path, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateGeometry, width, height)
	}
	rng := newRand(seed)
	paths := make([]Path, 0, count)
	for i := 0; i < count; i++ {
		paths = append(paths, blob(width, height, rng))
	}
	return paths, nil
}

func (g *Generator) verticalPoints(width, height int, rng *rand.Rand, edge Edge) []image.Point {
	waves := randInt(rng, 2, 3)
	cfg := g.cfg

	amplitude := int(float64(width) * uniform(rng, cfg.AmplitudeMin, cfg.AmplitudeMax))
	segment := float64(height) / float64(waves*2)
	startY := int(float64(height) * uniform(rng, cfg.StartYMin, cfg.StartYMax))
	endY := int(float64(height) * uniform(rng, cfg.EndYMin, cfg.EndYMax))

	edgeX, dir := 0, 1
	if edge == EdgeRight {
		edgeX, dir = width, -1
	}

	points := []image.Point{{X: edgeX, Y: startY}}
	for i := 0; i < waves*2; i++ {
		progress := float64(i+1) / float64(waves*2)
		y := int(float64(startY) + float64(endY-startY)*progress)
		variance := int(segment * 0.2)
		y += randInt(rng, -variance, variance)
		y = clamp(y, 0, height)

		var depth float64
		if i%2 == 0 {
			depth = uniform(rng, 0.85, 1.0) // peak
		} else {
			depth = uniform(rng, 0.4, 0.6) // valley
		}
		points = append(points, image.Point{X: edgeX + dir*int(float64(amplitude)*depth), Y: y})
	}
	return append(points, image.Point{X: edgeX, Y: endY})
}

func horizontalPoints(width, height int, rng *rand.Rand, edge Edge, waves int) []image.Point {
	amplitude := int(float64(height) * uniform(rng, 0.3, 0.5))
	segment := float64(width) / float64(waves*2)
	startX := int(float64(width) * uniform(rng, 0.0, 0.1))
	endX := int(float64(width) * uniform(rng, 0.9, 1.0))

	edgeY, dir := 0, 1
	if edge == EdgeBottom {
		edgeY, dir = height, -1
	}

	points := []image.Point{{X: startX, Y: edgeY}}
	for i := 0; i < waves*2; i++ {
		progress := float64(i+1) / float64(waves*2)
		x := int(float64(startX) + float64(endX-startX)*progress)
		variance := int(segment * 0.2)
		x += randInt(rng, -variance, variance)
		x = clamp(x, 0, width)

		var depth float64
		if i%2 == 0 {
			depth = uniform(rng, 0.7, 1.0)
		} else {
			depth = uniform(rng, 0.2, 0.4)
		}
		points = append(points, image.Point{X: x, Y: edgeY + dir*int(float64(amplitude)*depth)})
	}
	return append(points, image.Point{X: endX, Y: edgeY})
}

// smooth joins the anchors with quadratic segments: every interior point is a
// control point and each segment ends halfway to the next anchor, except the
// last which lands on the final point.
func smooth(points []image.Point) []ports.PathSegment {
	segs := []ports.PathSegment{{Op: ports.PathMoveTo, Points: []image.Point{points[0]}}}
	for i := 1; i < len(points)-1; i++ {
		ctrl := points[i]
		end := points[i+1]
		if i < len(points)-2 {
			end = image.Point{
				X: floorDiv(points[i].X+points[i+1].X, 2),
				Y: floorDiv(points[i].Y+points[i+1].Y, 2),
			}
		}
		segs = append(segs, ports.PathSegment{Op: ports.PathQuadTo, Points: []image.Point{ctrl, end}})
	}
	return segs
}

func verticalPath(points []image.Point, width, height int, edge Edge) Path {
	segs := smooth(points)
	x := 0
	if edge == EdgeRight {
		x = width
	}
	segs = append(segs,
		lineTo(x, height),
		lineTo(x, points[0].Y),
		ports.PathSegment{Op: ports.PathClose},
	)
	return Path{Edge: edge, Points: points, Segments: segs}
}

func horizontalPath(points []image.Point, width, height int, edge Edge) Path {
	segs := smooth(points)
	y := 0
	if edge == EdgeBottom {
		y = height
	}
	segs = append(segs,
		lineTo(width, y),
		lineTo(0, y),
		lineTo(points[0].X, points[0].Y),
		ports.PathSegment{Op: ports.PathClose},
	)
	return Path{Edge: edge, Points: points, Segments: segs}
}

func blob(width, height int, rng *rand.Rand) Path {
	cx := int(float64(width) * uniform(rng, 0.2, 0.8))
	cy := int(float64(height) * uniform(rng, 0.2, 0.8))
	sx := int(float64(width) * uniform(rng, 0.3, 0.5))
	sy := int(float64(height) * uniform(rng, 0.2, 0.4))

	scale := func(v int, f float64) int { return int(float64(v) * f) }
	pts := []image.Point{
		{X: cx - sx, Y: cy},
		{X: cx - scale(sx, 0.7), Y: cy - scale(sy, 0.8)},
		{X: cx + scale(sx, 0.7), Y: cy - scale(sy, 0.9)},
		{X: cx + sx, Y: cy},
		{X: cx + scale(sx, 0.8), Y: cy + scale(sy, 0.85)},
		{X: cx - scale(sx, 0.8), Y: cy + scale(sy, 0.9)},
	}
	return Path{
		Points: pts,
		Segments: []ports.PathSegment{
			{Op: ports.PathMoveTo, Points: []image.Point{pts[0]}},
			{Op: ports.PathCubicTo, Points: []image.Point{pts[1], pts[2], pts[3]}},
			{Op: ports.PathCubicTo, Points: []image.Point{pts[4], pts[5], pts[0]}},
			{Op: ports.PathClose},
		},
	}
}

func lineTo(x, y int) ports.PathSegment {
	return ports.PathSegment{Op: ports.PathLineTo, Points: []image.Point{{X: x, Y: y}}}
}

// newRand seeds a generator from the MD5 digest of seed, folding the two
// 64-bit halves together.
func newRand(seed string) *rand.Rand {
	sum := md5.Sum([]byte(seed))
	hi := binary.BigEndian.Uint64(sum[:8])
	lo := binary.BigEndian.Uint64(sum[8:])
	return rand.New(rand.NewSource(int64(hi ^ lo)))
}

// randInt returns an integer in [lo, hi], both inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
