// Package components defines the ECS components of the torus-effect walkers.
package components

// Surface is a walker's position and direction on the torus surface, in
// angular coordinates. U runs around the ring, V around the tube.
type Surface struct {
	U, V   float32
	DU, DV float32 // angular velocity per tick
}

// Glow holds a walker's visual constants and its per-frame brightness.
type Glow struct {
	BaseAlpha float32
	Alpha     float32
	Phase     float32
	Hue       float32
	Size      float32
}

// Route is the re-routing timer. When the cooldown expires the walker's
// direction gets a bounded random turn, mimicking traffic being rerouted
// across the mesh.
type Route struct {
	Cooldown int32
}
