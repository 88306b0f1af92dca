package motion

// Point is a 2D coordinate, used both in source pixels and normalized
// [0,1] space depending on context.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point      { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point      { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(s float64) Point  { return Point{p.X * s, p.Y * s} }
func (p Point) Lerp(o Point, u float64) Point {
	return Point{p.X + (o.X-p.X)*u, p.Y + (o.Y-p.Y)*u}
}
