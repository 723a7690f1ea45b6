// Package fingerprint computes deterministic content digests over the
// shape-relevant state of a parametric source. Two sources with the same
// digest tessellate to the same mesh; object name, selection, visibility, and
// transform are deliberately excluded so they can never trigger regeneration.
package fingerprint

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/curveforge/meshsync/internal/core/domain"
)

// Engine computes source fingerprints against a fixed, explicitly enumerated
// field schema. It is stateless and safe for concurrent use.
type Engine struct{}

// NewEngine creates a fingerprint engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Fingerprint returns the content digest of the source. The second return is
// false when the source is not a recognized curve/surface type; callers must
// then treat the source as always changed.
func (e *Engine) Fingerprint(src *domain.Source) (string, bool) {
	if !src.Recognized() {
		return "", false
	}

	d := xxhash.New()
	hashSettings(d, &src.Data.Settings)
	for _, spline := range src.Data.Splines {
		hashSpline(d, spline)
	}
	hashModifiers(d, src.Modifiers)

	return fmt.Sprintf("%016x", d.Sum64()), true
}

// hashSettings encodes the curve-level settings in a fixed field order.
// The order is part of the hash schema; changing it invalidates every cached
// fingerprint.
func hashSettings(d *xxhash.Digest, s *domain.CurveSettings) {
	writeString(d, s.Dimensions)
	writeInt(d, s.ResolutionU)
	writeInt(d, s.ResolutionV)
	writeInt(d, s.RenderResolutionU)
	writeInt(d, s.RenderResolutionV)
	writeFloatText(d, s.BevelDepth)
	writeInt(d, s.BevelResolution)
	writeFloatText(d, s.Extrude)
	writeFloatText(d, s.Offset)
	writeFloatText(d, s.TwistSmooth)
	writeBool(d, s.FillCaps)
	writeBool(d, s.FillDeform)
}

func hashSpline(d *xxhash.Digest, s *domain.Spline) {
	writeString(d, string(s.Kind))
	writeBool(d, s.CyclicU)
	writeBool(d, s.CyclicV)
	writeInt(d, s.OrderU)
	writeInt(d, s.OrderV)
	writeInt(d, s.ResolutionU)
	writeInt(d, s.ResolutionV)

	switch s.Kind {
	case domain.SplineBezier:
		for _, p := range s.BezierPoints {
			writeVec3(d, p.HandleLeft)
			writeVec3(d, p.Co)
			writeVec3(d, p.HandleRight)
			writeFloat(d, p.Tilt)
			writeFloat(d, p.Radius)
		}
	case domain.SplineSurface:
		for _, row := range s.Rows {
			for _, p := range row {
				writeVec4(d, p.Co)
				writeFloat(d, p.Tilt)
				writeFloat(d, p.Radius)
			}
		}
	default:
		// NURBS, poly, and anything future-shaped carries raw weighted points.
		for _, p := range s.Points {
			writeVec4(d, p.Co)
			writeFloat(d, p.Tilt)
			writeFloat(d, p.Radius)
		}
	}
}

func hashModifiers(d *xxhash.Digest, mods []*domain.Modifier) {
	for _, mod := range mods {
		writeString(d, string(mod.Kind))
		writeBool(d, mod.ShowViewport)
		writeBool(d, mod.ShowRender)

		for _, spec := range schemaFor(mod) {
			value, ok := mod.Params[spec.Name]
			writeString(d, spec.Name)
			if !ok {
				sep(d)
				continue
			}
			switch spec.Kind {
			case domain.ParamScalar:
				writeFloat(d, value.Scalar)
			case domain.ParamRef:
				writeString(d, value.Ref)
			case domain.ParamRefList:
				for _, name := range value.Refs {
					writeString(d, name)
				}
				sep(d)
			}
		}
		sep(d)
	}
}

// The writers below insert a separator byte after every logical field so that
// adjacent encodings can never be confused: "1" then "0" hashes differently
// from "10".

func sep(d *xxhash.Digest) {
	_, _ = d.Write([]byte{0})
}

func writeString(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	sep(d)
}

func writeInt(d *xxhash.Digest, v int) {
	_, _ = d.WriteString(strconv.Itoa(v))
	sep(d)
}

func writeBool(d *xxhash.Digest, v bool) {
	if v {
		_, _ = d.WriteString("1")
	} else {
		_, _ = d.WriteString("0")
	}
	sep(d)
}

// writeFloatText encodes a settings float textually. strconv is
// locale-independent, so the encoding stays reproducible across hosts.
func writeFloatText(d *xxhash.Digest, v float64) {
	_, _ = d.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	sep(d)
}

// writeFloat encodes a coordinate component as its 8-byte IEEE-754
// representation, guaranteeing bit-exact reproducibility.
func writeFloat(d *xxhash.Digest, v float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	_, _ = d.Write(buf[:])
	sep(d)
}

func writeVec3(d *xxhash.Digest, v [3]float64) {
	writeFloat(d, v[0])
	writeFloat(d, v[1])
	writeFloat(d, v[2])
}

func writeVec4(d *xxhash.Digest, v [4]float64) {
	writeFloat(d, v[0])
	writeFloat(d, v[1])
	writeFloat(d, v[2])
	writeFloat(d, v[3])
}
