package sim

// World dimensions (in world units).
// 96x72 at the default zoom gives a 384x288 window.
const (
	WorldWidth  = 96
	WorldHeight = 72
	GroundY     = WorldHeight - 14 // 58
)

// Off-screen margins. Entities spawn past the right edge and are pruned
// once their right edge is left of CullX.
const (
	SpawnMargin = 8.0
	CullX       = -10.0
)

// Player constants.
const (
	PlayerX       = 24.0
	PlayerW       = 6.0
	PlayerH       = 13.0
	JumpVelocity  = -74.0
	Gravity       = 180.0
	DustJumpDX    = 1.0
	DustLandDX    = 2.0
	DustLandAbove = 1.0
)

// Scroll speed ramp.
const (
	StartSpeed = 44.0
	MaxSpeed   = 74.0
	SpeedRamp  = 0.7 // per second
)

// Obstacle spawning.
const (
	StartSpawnTimer  = 1.2
	SpawnBase        = 0.85
	SpawnJitter      = 0.85
	SpawnSpeedFactor = 0.004
)

// Pickups.
const (
	PickupChance = 0.35
	PickupSize   = 4.0
	PickupDX     = 2.0
	PickupAbove  = 17.0
	PickupScore  = 10
)

// Particles.
const (
	MaxParticles    = 512
	DustCount       = 5
	DustSpreadX     = 12.0
	DustLiftY       = 20.0
	DustLifeMin     = 0.35
	DustLifeJitter  = 0.2
	ParticleGravity = 50.0
)

// Frame driver.
const MaxFrameDT = 0.033
