package evaluator

import "github.com/curveforge/meshsync/internal/core/domain"

// nurbsSamples evaluates a weighted B-spline through the given control
// points. Open splines use a clamped uniform knot vector and interpolate the
// end points; cyclic splines wrap the control points and use a periodic
// uniform knot vector.
func nurbsSamples(points []domain.ControlPoint, order int, cyclic bool, res int) []sample {
	n := len(points)
	if n == 0 {
		return nil
	}
	if n == 1 {
		p := points[0]
		return []sample{{pos: p.Projected(), tilt: p.Tilt, radius: p.Radius}}
	}
	if res < 1 {
		res = 1
	}

	k := order
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}

	ctrl := points
	var knots []float64
	var count int
	var umin, umax float64
	if cyclic {
		ctrl = append(append([]domain.ControlPoint{}, points...), points[:k-1]...)
		knots = uniformKnots(len(ctrl), k)
		umin = float64(k - 1)
		umax = umin + float64(n)
		count = res * n
	} else {
		knots = clampedKnots(n, k)
		umin = 0
		umax = float64(n - k + 1)
		count = res*(n-1) + 1
	}

	out := make([]sample, 0, count)
	for i := range count {
		t := float64(i) / float64(count)
		if !cyclic {
			t = float64(i) / float64(count-1)
			if i == count-1 {
				last := points[n-1]
				out = append(out, sample{pos: last.Projected(), t: 1, tilt: last.Tilt, radius: last.Radius})
				break
			}
		}
		u := umin + (umax-umin)*t
		out = append(out, evalAt(ctrl, knots, k, u, t))
	}
	return out
}

func evalAt(ctrl []domain.ControlPoint, knots []float64, k int, u, t float64) sample {
	basis := basisFuncs(u, knots, k, len(ctrl))

	var pos [3]float64
	var tilt, radius, den float64
	for i, b := range basis {
		if b == 0 {
			continue
		}
		p := ctrl[i]
		w := p.Co[3]
		if w == 0 {
			w = 1
		}
		bw := b * w
		proj := p.Projected()
		for j := range pos {
			pos[j] += bw * proj[j]
		}
		tilt += bw * p.Tilt
		radius += bw * p.Radius
		den += bw
	}
	if den != 0 {
		for j := range pos {
			pos[j] /= den
		}
		tilt /= den
		radius /= den
	}
	return sample{pos: pos, t: t, tilt: tilt, radius: radius}
}

// basisFuncs computes all order-k B-spline basis functions at u via the
// Cox-de Boor recursion.
func basisFuncs(u float64, knots []float64, k, n int) []float64 {
	funcs := make([]float64, len(knots)-1)
	for i := range funcs {
		if u >= knots[i] && u < knots[i+1] {
			funcs[i] = 1
		}
	}

	for d := 2; d <= k; d++ {
		for i := 0; i+d < len(knots); i++ {
			var v float64
			if den := knots[i+d-1] - knots[i]; den != 0 {
				v += (u - knots[i]) / den * funcs[i]
			}
			if den := knots[i+d] - knots[i+1]; den != 0 {
				v += (knots[i+d] - u) / den * funcs[i+1]
			}
			funcs[i] = v
		}
	}
	return funcs[:n]
}

// clampedKnots builds the clamped uniform knot vector for n control points of
// the given order. The first and last knot each repeat order times, so the
// curve interpolates its end points.
func clampedKnots(n, k int) []float64 {
	knots := make([]float64, n+k)
	spans := n - k + 1
	for i := range knots {
		switch {
		case i < k:
			knots[i] = 0
		case i >= n:
			knots[i] = float64(spans)
		default:
			knots[i] = float64(i - k + 1)
		}
	}
	return knots
}

func uniformKnots(n, k int) []float64 {
	knots := make([]float64, n+k)
	for i := range knots {
		knots[i] = float64(i)
	}
	return knots
}

func sampleNURBSCurve(spline *domain.Spline, res int) []sample {
	return nurbsSamples(spline.Points, spline.OrderU, spline.Cyclic(), res)
}

// sampleNURBS evaluates one parametric direction of a surface patch,
// returning positions only.
func sampleNURBS(points []domain.ControlPoint, order int, cyclic bool, res int) [][3]float64 {
	samples := nurbsSamples(points, order, cyclic, res)
	out := make([][3]float64, 0, len(samples))
	for _, s := range samples {
		out = append(out, s.pos)
	}
	return out
}
