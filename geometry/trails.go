package geometry

// TrailComponents is the number of float32 components per trail sample:
// x, y, z, alpha, size.
const TrailComponents = 5

// TrailHead is the per-walker state the trail builder needs: current surface
// angles, direction, and visual attributes of the head sample.
type TrailHead struct {
	U, V   float32
	DU, DV float32
	Alpha  float32
	Size   float32
}

// BuildTrails serializes walker trails into a packed attribute array:
// one head sample plus (trailLen - 1) trailing samples per walker, each
// evaluated at backward-offset surface angles along the walker's direction.
// Alpha and size fall off linearly toward the tail.
//
// The result always holds exactly len(heads) * trailLen * TrailComponents
// elements. dst is reused across frames (streaming upload semantics); pass
// the previous frame's slice to avoid reallocation.
func BuildTrails(dst []float32, heads []TrailHead, trailLen int, spacing, major, minor float32) []float32 {
	if trailLen < 1 {
		trailLen = 1
	}
	dst = dst[:0]

	for h := range heads {
		head := &heads[h]
		for j := 0; j < trailLen; j++ {
			back := float32(j) * spacing
			u := head.U - head.DU*back
			v := head.V - head.DV*back

			falloff := 1 - float32(j)/float32(trailLen)

			x, y, z := torusPoint32(u, v, major, minor)
			dst = append(dst, x, y, z, head.Alpha*falloff, head.Size*falloff)
		}
	}

	return dst
}

// torusPoint32 is the float32 fast-trig twin of systems.TorusPoint.
func torusPoint32(u, v, major, minor float32) (x, y, z float32) {
	cu, su := fastCos(u), fastSin(u)
	cv, sv := fastCos(v), fastSin(v)

	x = (major + minor*cv) * cu
	y = (major + minor*cv) * su
	z = minor * sv
	return x, y, z
}
