package sim

// Player is the runner. X never changes; the world scrolls past it.
type Player struct {
	X, Y     float64
	VY       float64
	OnGround bool
}

func newPlayer() Player {
	return Player{
		X:        PlayerX,
		Y:        GroundY - PlayerH,
		OnGround: true,
	}
}

func (p Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: PlayerW, H: PlayerH}
}

// ObstacleKind is the tagged variant for obstacles.
type ObstacleKind uint8

const (
	KindCart ObstacleKind = iota
	KindPlant
	numObstacleKinds
)

// obstacleSizes is indexed by ObstacleKind.
var obstacleSizes = [numObstacleKinds]struct{ W, H float64 }{
	KindCart:  {W: 9, H: 8},
	KindPlant: {W: 7, H: 10},
}

// Size returns the fixed width and height for the kind.
func (k ObstacleKind) Size() (w, h float64) {
	s := obstacleSizes[k]
	return s.W, s.H
}

func (k ObstacleKind) String() string {
	switch k {
	case KindCart:
		return "cart"
	case KindPlant:
		return "plant"
	}
	return "unknown"
}

type Obstacle struct {
	X, Y float64
	Kind ObstacleKind
}

// NewObstacle places an obstacle of the given kind on the ground line.
func NewObstacle(kind ObstacleKind, x float64) Obstacle {
	_, h := kind.Size()
	return Obstacle{X: x, Y: GroundY - h, Kind: kind}
}

func (o Obstacle) Bounds() Rect {
	w, h := o.Kind.Size()
	return Rect{X: o.X, Y: o.Y, W: w, H: h}
}

type Pickup struct {
	X, Y  float64
	Taken bool
}

func (p Pickup) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: PickupSize, H: PickupSize}
}
