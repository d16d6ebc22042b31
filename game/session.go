package game

import (
	"math/rand"
	"time"

	"github.com/zucenko/wolfchase/model"
)

const placementAttempts = 100

// Session is the aggregate state of one game instance. It is owned by a
// single Game and only ever touched from that Game's loop: local ticks and
// inbound network events both go through it one at a time, so it needs no
// locking.
type Session struct {
	Rooms     []*model.Room
	Players   map[string]*model.Player
	Artifacts []*model.Artifact
	Wolf      *model.Wolf
	LocalId   string
	Running   bool
	StartedAt time.Time

	// Player ids in the order they became known. The head of this list is
	// the host for wolf broadcasts.
	order []string

	rng *rand.Rand
}

func NewSession(rng *rand.Rand) *Session {
	return &Session{
		Rooms:   model.NewRooms(),
		Players: make(map[string]*model.Player),
		Wolf:    model.NewWolf(),
		rng:     rng,
	}
}

func (s *Session) AddPlayer(p *model.Player) {
	if _, known := s.Players[p.Id]; known {
		return
	}
	s.Players[p.Id] = p
	s.order = append(s.order, p.Id)
}

func (s *Session) RemovePlayer(id string) {
	if _, known := s.Players[id]; !known {
		return
	}
	delete(s.Players, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Session) Player(id string) (*model.Player, bool) {
	p, ok := s.Players[id]
	return p, ok
}

// Local returns the player this client is authoritative over. It can be
// absent mid-teardown; callers treat that as a normal skip, not a fault.
func (s *Session) Local() (*model.Player, bool) {
	return s.Player(s.LocalId)
}

// Host returns the id considered authoritative for wolf broadcasts: the
// first player in this client's insertion order. It is a heuristic, not a
// consensus result; right after a join or leave, clients can transiently
// disagree.
func (s *Session) Host() string {
	if len(s.order) == 0 {
		return ""
	}
	return s.order[0]
}

func (s *Session) IsHost() bool {
	return s.LocalId != "" && s.Host() == s.LocalId
}

func (s *Session) PlayerCount() int {
	return len(s.Players)
}

// SpawnPoint samples up to placementAttempts random positions in the room
// and returns the first collision-free one, falling back to the room center
// when everything is blocked.
func (s *Session) SpawnPoint(room int, w, h float64) (float64, float64) {
	r := s.Rooms[room]
	for i := 0; i < placementAttempts; i++ {
		x := s.rng.Float64()*(r.Width-w-200) + 100
		y := s.rng.Float64()*(r.Height-h-200) + 100
		if !r.Collides(model.Rect{X: x, Y: y, W: w, H: h}) {
			return x, y
		}
	}
	return r.Width / 2, r.Height / 2
}

// RespawnPlayer drops the player at a valid position in the given room.
func (s *Session) RespawnPlayer(p *model.Player, room int) {
	p.Room = room
	p.X, p.Y = s.SpawnPoint(room, model.PlayerSize, model.PlayerSize)
}

// SpawnArtifact places a fresh artifact in a random room, resampling both
// room and position on collision. On exhaustion it falls back to a fixed
// safe spot.
func (s *Session) SpawnArtifact() *model.Artifact {
	a := &model.Artifact{X: 100, Y: 100, Room: 0}
	for i := 0; i < placementAttempts; i++ {
		room := s.rng.Intn(len(s.Rooms))
		x := s.rng.Float64() * (model.RoomWidth - 50)
		y := s.rng.Float64() * (model.RoomHeight - 50)
		if !s.Rooms[room].Collides(model.Rect{X: x, Y: y, W: model.ArtifactSize, H: model.ArtifactSize}) {
			a.Room, a.X, a.Y = room, x, y
			break
		}
	}
	s.Artifacts = append(s.Artifacts, a)
	return a
}

// TeleportWolf drops the wolf at a random position in the given room.
func (s *Session) TeleportWolf(room int) {
	s.Wolf.Room = room
	s.Wolf.X = s.rng.Float64()*(model.RoomWidth-100) + 50
	s.Wolf.Y = s.rng.Float64()*(model.RoomHeight-100) + 50
}

// RandomRoomExcept picks a uniformly random room different from the given
// one by reject-and-resample.
func (s *Session) RandomRoomExcept(exclude int) int {
	for {
		room := s.rng.Intn(len(s.Rooms))
		if room != exclude {
			return room
		}
	}
}
