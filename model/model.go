package model

import "math/rand"

const (
	RoomWidth  = 1024.0
	RoomHeight = 768.0

	GridSize  = 3
	RoomCount = GridSize * GridSize

	DoorWidth  = 60.0
	DoorHeight = 80.0
	DoorMargin = 20.0

	PlayerSize      = 48.0
	PlayerSpeed     = 5.0
	StartLives      = 3
	StartParalyzers = 3

	VictoryArtifacts = 8

	WolfWidth      = 60.0
	WolfHeight     = 80.0
	WolfSpeed      = 3.0
	DifficultyStep = 0.1
	ParalyzedTicks = 100

	ArtifactSize = 30.0
)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
	None  Direction = ""
)

// Directions in the fixed order door lookups iterate in.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Overlaps reports open-interval AABB overlap, so rectangles that merely
// touch edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

var Colors = []string{
	"#ff4444", "#44ff44", "#4444ff", "#ffff44", "#ff44ff", "#44ffff",
}

func RandomColor(rng *rand.Rand) string {
	return Colors[rng.Intn(len(Colors))]
}

// Player is owned by the client that created it and mirrored everywhere
// else; remote copies are only ever written through network updates.
type Player struct {
	Id         string  `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Room       int     `json:"room"`
	Lives      int     `json:"lives"`
	Artifacts  int     `json:"artifacts"`
	Paralyzers int     `json:"paralyzers"`
}

func NewPlayer(id, name, color string) *Player {
	return &Player{
		Id:         id,
		Name:       name,
		Color:      color,
		Lives:      StartLives,
		Paralyzers: StartParalyzers,
	}
}

func (p *Player) Alive() bool {
	return p.Lives > 0
}

func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: PlayerSize, H: PlayerSize}
}

// Wolf is the single roaming NPC, one per session.
type Wolf struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Room          int     `json:"room"`
	Speed         float64 `json:"-"`
	Paralyzed     bool    `json:"isParalyzed"`
	ParalyzedLeft int     `json:"-"`
	Difficulty    float64 `json:"-"`
}

func NewWolf() *Wolf {
	return &Wolf{Speed: WolfSpeed, Difficulty: 1.0}
}

func (w *Wolf) Bounds() Rect {
	return Rect{X: w.X, Y: w.Y, W: WolfWidth, H: WolfHeight}
}

type Artifact struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Room int     `json:"room"`
}

func (a *Artifact) Bounds() Rect {
	return Rect{X: a.X, Y: a.Y, W: ArtifactSize, H: ArtifactSize}
}
