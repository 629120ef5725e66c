package constant

// Arena dimensions in logical units
const (
	ArenaWidth  = 900
	ArenaHeight = 540

	// SpawnMargin keeps spawned orbs and bombs away from the arena edges
	SpawnMargin = 60
)

// Actor bounding boxes, square, in logical units
const (
	PlayerSize = 34
	OrbSize    = 24
	BombSize   = 28
)

// Broad phase grid
const (
	// SpatialCellSize is the resolv cell edge; larger than any actor so a body spans at most 4 cells
	SpatialCellSize = 45
)

// Knockback
const (
	// ImpulseDecayRate is the fraction of impulse removed per second
	ImpulseDecayRate = 4.0
)
