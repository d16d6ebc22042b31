package game

import (
	"time"
)

// Read-only view of the current frame for an external renderer or HUD.
// Remote entity positions are the smoothed display positions; the local
// player is always raw.
type Snapshot struct {
	State         State          `json:"state"`
	Room          int            `json:"room"`
	Players       []PlayerView   `json:"players"`
	Wolf          WolfView       `json:"wolf"`
	Artifacts     []ArtifactView `json:"artifacts"`
	PlayersOnline int            `json:"playersOnline"`
	Lives         int            `json:"lives"`
	Collected     int            `json:"collected"`
	Paralyzers    int            `json:"paralyzers"`
	Elapsed       time.Duration  `json:"elapsed"`
}

type PlayerView struct {
	Id    string  `json:"id"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Room  int     `json:"room"`
	Local bool    `json:"local"`
}

type WolfView struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Room      int     `json:"room"`
	Paralyzed bool    `json:"isParalyzed"`
}

type ArtifactView struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Room int     `json:"room"`
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{State: g.State}
	s := g.Session
	if s == nil {
		return snap
	}

	if local, ok := s.Local(); ok {
		snap.Room = local.Room
		snap.Lives = local.Lives
		snap.Collected = local.Artifacts
		snap.Paralyzers = local.Paralyzers
	}
	snap.PlayersOnline = s.PlayerCount()
	if !s.StartedAt.IsZero() {
		snap.Elapsed = time.Since(s.StartedAt)
	}

	for _, id := range s.order {
		p, ok := s.Player(id)
		if !ok {
			continue
		}
		view := PlayerView{
			Id:    p.Id,
			Name:  p.Name,
			Color: p.Color,
			X:     p.X,
			Y:     p.Y,
			Room:  p.Room,
			Local: p.Id == s.LocalId,
		}
		if !view.Local {
			if x, y, ok := g.Smooth.Pos(p.Id); ok {
				view.X, view.Y = x, y
			}
		}
		snap.Players = append(snap.Players, view)
	}

	snap.Wolf = WolfView{X: s.Wolf.X, Y: s.Wolf.Y, Room: s.Wolf.Room, Paralyzed: s.Wolf.Paralyzed}
	if !s.IsHost() {
		if x, y, ok := g.Smooth.Pos(wolfKey); ok {
			snap.Wolf.X, snap.Wolf.Y = x, y
		}
	}

	for _, a := range s.Artifacts {
		snap.Artifacts = append(snap.Artifacts, ArtifactView{X: a.X, Y: a.Y, Room: a.Room})
	}
	return snap
}
