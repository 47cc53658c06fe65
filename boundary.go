package main

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// 境界の種類
type BoundaryType string

const (
	BoundaryTypePolygon BoundaryType = "polygon"
	BoundaryTypeCircle  BoundaryType = "circle"
)

func boundary_type_from_string(str string) BoundaryType {
	switch str {
	case "polygon":
		return BoundaryTypePolygon
	case "circle":
		return BoundaryTypeCircle
	default:
		panic("boundary type must be one of [polygon, circle]")
	}
}

/*
BoundaryComp calculates the signed distance from each turbine to the wind
farm boundary. Positive values mean the turbine is inside.

polygon: for each turbine and each face of a convex polygon, the
perpendicular distance obtained by projecting the vector from the turbine to
the first vertex of the face onto the face's outward unit normal.
Output shape: [nTurbines x nVertices].

circle: r^2 - ((x-xc)^2 + (y-yc)^2) per turbine. Output shape: [nTurbines x 1].
*/
type BoundaryComp struct {
	nTurbines int
	nVertices int
	model     boundary_model
	counter   *CallCounter
}

func NewBoundaryComp(nTurbines int, nVertices int, boundary_type BoundaryType, counter *CallCounter) *BoundaryComp {
	var model boundary_model
	switch boundary_type {
	case BoundaryTypePolygon:
		model = &polygon_boundary{nTurbines: nTurbines, nVertices: nVertices}
	case BoundaryTypeCircle:
		nVertices = 1
		model = &circle_boundary{nTurbines: nTurbines}
	default:
		panic("boundary type must be one of [polygon, circle]")
	}

	return &BoundaryComp{
		nTurbines: nTurbines,
		nVertices: nVertices,
		model:     model,
		counter:   counter,
	}
}

type BoundaryParams struct {
	turbineX []float64 // x coordinates of turbines in the global reference frame, m
	turbineY []float64 // y coordinates of turbines in the global reference frame, m

	// polygon variant
	boundaryVertices [][2]float64 // vertices of the convex hull, CCW; boundaryVertices[i] is the first point of the face for boundaryNormals[i]
	boundaryNormals  [][2]float64 // outward unit normal of each boundary face

	// circle variant
	boundary_center [2]float64 // center of the circular boundary, m
	boundary_radius float64    // radius of the circular boundary, m
}

// signed perpendicular distances, [nTurbines x nVertices]; + is inside
func (c *BoundaryComp) solve_nonlinear(params *BoundaryParams) *mat.Dense {
	c.counter.record_obj_call()
	return c.model.distances(params)
}

func (c *BoundaryComp) linearize(params *BoundaryParams) Jacobian {
	c.counter.record_sens_call()

	dx, dy := c.model.partials(params)

	J := Jacobian{}
	J.set("boundaryDistances", "turbineX", dx)
	J.set("boundaryDistances", "turbineY", dy)

	return J
}

func (c *BoundaryComp) param_names() []string {
	return []string{"turbineX", "turbineY"}
}

func (c *BoundaryComp) output_names() []string {
	return []string{"boundaryDistances"}
}

type boundary_model interface {
	distances(params *BoundaryParams) *mat.Dense
	partials(params *BoundaryParams) (dx, dy *mat.Dense)
}

type polygon_boundary struct {
	nTurbines int
	nVertices int
}

func (b *polygon_boundary) distances(params *BoundaryParams) *mat.Dense {
	locations := make([][2]float64, b.nTurbines)
	for i := 0; i < b.nTurbines; i++ {
		locations[i] = [2]float64{params.turbineX[i], params.turbineY[i]}
	}

	return calculate_distance(locations, params.boundaryVertices, params.boundaryNormals)
}

/*
The face distance is affine in the turbine position, so each derivative is a
constant built from the face normal alone: projecting d(pa)/dx = (-1, 0) onto
the unit normal and back gives -nx (and -ny for y).
*/
func (b *polygon_boundary) partials(params *BoundaryParams) (*mat.Dense, *mat.Dense) {
	if len(params.boundaryVertices) != len(params.boundaryNormals) {
		panic("boundaryVertices and boundaryNormals must have the same length")
	}

	dfaceDistance_dx := zeros(b.nTurbines*b.nVertices, b.nTurbines)
	dfaceDistance_dy := zeros(b.nTurbines*b.nVertices, b.nTurbines)

	for i := 0; i < b.nTurbines; i++ {
		for j := 0; j < b.nVertices; j++ {
			nx := params.boundaryNormals[j][0]
			ny := params.boundaryNormals[j][1]

			// vector projection of the position derivative onto the unit normal
			dfaceDistance_dx.Set(i*b.nVertices+j, i, -nx*(nx*nx+ny*ny))
			dfaceDistance_dy.Set(i*b.nVertices+j, i, -ny*(nx*nx+ny*ny))
		}
	}

	return dfaceDistance_dx, dfaceDistance_dy
}

type circle_boundary struct {
	nTurbines int
}

func (b *circle_boundary) distances(params *BoundaryParams) *mat.Dense {
	xc := params.boundary_center[0]
	yc := params.boundary_center[1]
	r := params.boundary_radius

	d := zeros(b.nTurbines, 1)
	for i := 0; i < b.nTurbines; i++ {
		dx := params.turbineX[i] - xc
		dy := params.turbineY[i] - yc
		d.Set(i, 0, r*r-(dx*dx+dy*dy))
	}

	return d
}

func (b *circle_boundary) partials(params *BoundaryParams) (*mat.Dense, *mat.Dense) {
	xc := params.boundary_center[0]
	yc := params.boundary_center[1]

	dx := zeros(b.nTurbines, b.nTurbines)
	dy := zeros(b.nTurbines, b.nTurbines)
	for i := 0; i < b.nTurbines; i++ {
		dx.Set(i, i, -2.0*(params.turbineX[i]-xc))
		dy.Set(i, i, -2.0*(params.turbineY[i]-yc))
	}

	return dx, dy
}

/*
Build a valid polygon boundary from an arbitrary point set.

Keeps only the points that comprise the convex hull, arranged CCW, and
returns the outward unit normal of each face, where vertices[i] is the first
point of the face for unit_normals[i].

Args:

	points: raw boundary points (e.g. the turbine layout itself)

Returns:

	(1) hull vertices, CCW
	(2) outward unit normal of each face
*/
func calculate_boundary(points [][2]float64) ([][2]float64, [][2]float64) {
	vertices := convex_hull(points)
	nVertices := len(vertices)

	unit_normals := make([][2]float64, nVertices)

	for j := 0; j < nVertices; j++ {
		next := (j + 1) % nVertices

		// unit normal of the current face, taking points CCW
		normal := [2]float64{
			vertices[next][1] - vertices[j][1],
			-(vertices[next][0] - vertices[j][0]),
		}
		length := math.Hypot(normal[0], normal[1])
		unit_normals[j] = [2]float64{normal[0] / length, normal[1] / length}
	}

	return vertices, unit_normals
}

/*
Convex hull of a 2-D point set by Andrew's monotone chain, CCW order,
collinear boundary points discarded. Fatal for fewer than three distinct,
non-collinear points.
*/
func convex_hull(points [][2]float64) [][2]float64 {
	if len(points) < 3 {
		panic("convex hull construction requires at least 3 points")
	}

	sorted := make([][2]float64, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		return sorted[i][1] < sorted[j][1]
	})

	cross := func(o, a, b [2]float64) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	var lower [][2]float64
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper [][2]float64
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		panic("convex hull is degenerate: points are collinear")
	}

	return hull
}

/*
Signed perpendicular distance from each point to each face of a convex hull.

Args:

	points: points to measure from
	vertices: hull vertices, CCW; vertices[i] is the first point of the face for unit_normals[i]
	unit_normals: outward unit normal of each face

Returns:

	face distances, [nPoints x nVertices]; + is inside
*/
func calculate_distance(points [][2]float64, vertices [][2]float64, unit_normals [][2]float64) *mat.Dense {
	if len(vertices) != len(unit_normals) {
		panic("boundaryVertices and boundaryNormals must have the same length")
	}

	nPoints := len(points)
	nVertices := len(vertices)

	face_distance := zeros(nPoints, nVertices)

	for i := 0; i < nPoints; i++ {
		for j := 0; j < nVertices; j++ {
			// vector from the point of interest to the first point of the face
			pa := [2]float64{vertices[j][0] - points[i][0], vertices[j][1] - points[i][1]}

			// perpendicular distance via vector projection onto the unit normal
			dot := pa[0]*unit_normals[j][0] + pa[1]*unit_normals[j][1]
			d_vec := [2]float64{dot * unit_normals[j][0], dot * unit_normals[j][1]}

			// sign of the distance: + is inside, - is outside
			face_distance.Set(i, j, d_vec[0]*unit_normals[j][0]+d_vec[1]*unit_normals[j][1])
		}
	}

	return face_distance
}

/*
Same as calculate_distance, additionally reporting whether each point lies
inside the hull (all face distances non-negative). Used by feasibility checks
and visualization scans.
*/
func calculate_distance_with_inside(points [][2]float64, vertices [][2]float64, unit_normals [][2]float64) (*mat.Dense, []bool) {
	face_distance := calculate_distance(points, vertices, unit_normals)

	nPoints := len(points)
	nVertices := len(vertices)

	inside := make([]bool, nPoints)
	for i := 0; i < nPoints; i++ {
		inside[i] = true
		for j := 0; j < nVertices; j++ {
			if face_distance.At(i, j) < 0 {
				inside[i] = false
				break
			}
		}
	}

	return face_distance, inside
}
