package motion

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vedantwpatil/compositor/internal/project"
)

// Cluster is a motion-cluster attractor candidate: a run of mouse events
// that stayed near a common centroid for at least 400ms (§4.E).
type Cluster struct {
	Start, End float64 // source ms
	Centroid   Point
	Count      int
}

// BuildClusters scans events in timestamp order, growing a cluster while
// each new event stays within clusterRadius of the running centroid, and
// closing it (emitting it only if it lasted >= minHoldMs) otherwise (§4.E).
// width/height are the source recording's pixel dimensions, used to derive
// clusterRadius = radiusFrac * sqrt(w^2+h^2).
func BuildClusters(events []project.MouseEvent, width, height float64, radiusFrac, minHoldMs float64) []Cluster {
	if len(events) == 0 {
		return nil
	}
	radius := radiusFrac * math.Sqrt(width*width+height*height)

	var clusters []Cluster
	start := events[0].TimeMs
	sumX, sumY := events[0].X, events[0].Y
	count := 1
	last := events[0]

	flush := func(end float64) {
		if end-start >= minHoldMs {
			clusters = append(clusters, Cluster{
				Start:    start,
				End:      end,
				Centroid: Point{X: sumX / float64(count), Y: sumY / float64(count)},
				Count:    count,
			})
		}
	}

	for _, e := range events[1:] {
		centroid := Point{X: sumX / float64(count), Y: sumY / float64(count)}
		d := math.Hypot(e.X-centroid.X, e.Y-centroid.Y)
		if d <= radius {
			sumX += e.X
			sumY += e.Y
			count++
			last = e
			continue
		}
		flush(last.TimeMs)
		start = e.TimeMs
		sumX, sumY = e.X, e.Y
		count = 1
		last = e
	}
	flush(last.TimeMs)
	return clusters
}

// CinematicAverage samples the interpolated mouse position at t, t-W/8, ...
// for `samples` points spanning windowMs, and averages them (§4.E, the
// fallback attractor when no cluster covers t).
func CinematicAverage(events []project.MouseEvent, t, windowMs float64, samples int) Point {
	if samples <= 0 {
		samples = 8
	}
	step := windowMs / float64(samples)
	xs := make([]float64, 0, samples)
	ys := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		sampleT := t - step*float64(i)
		p, err := Interpolate(events, sampleT)
		if err != nil {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	if len(xs) == 0 {
		return Point{}
	}
	return Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}
}

// Attractor implements calculateAttractor(t) (§4.E): the cluster whose
// [start, end+400ms] contains t, else the cinematic average.
func Attractor(events []project.MouseEvent, clusters []Cluster, t, windowMs float64, samples int) Point {
	for _, c := range clusters {
		if t >= c.Start && t <= c.End+windowMs {
			return c.Centroid
		}
	}
	return CinematicAverage(events, t, windowMs, samples)
}
