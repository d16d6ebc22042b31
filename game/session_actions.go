package game

import (
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/wolfchase/model"
)

// Intent is the abstract per-tick input for the local player. Whatever
// produced it (keyboard, gamepad, a bot) is outside the core.
type Intent struct {
	Direction model.Direction
	Interact  bool
	Paralyze  bool
}

// Outcome of one local tick.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeVictory
)

// Tick runs one local update pass: movement with collision rollback, door
// transitions, wolf pursuit, capture and collection checks. It returns the
// messages to broadcast this tick plus the terminal outcome, if any.
//
// Only the local player's capture and collection logic runs here. Remote
// players' events arrive through ApplyMessage and are never recomputed.
func (s *Session) Tick(in Intent) (out []model.Message, outcome Outcome) {
	p, ok := s.Local()
	if !ok {
		return nil, OutcomeNone
	}
	room := s.Rooms[p.Room]

	if in.Direction != model.None {
		oldX, oldY := p.Move(in.Direction)
		if room.Collides(p.Bounds()) {
			p.X, p.Y = oldX, oldY
		}
	}

	if in.Interact {
		if dir, at := room.DoorAt(p.Bounds()); at {
			if next, ok := room.Neighbor(dir); ok {
				s.passDoor(p, dir, next)
				room = s.Rooms[p.Room]
			}
		}
	}

	if in.Paralyze && s.Wolf.Room == p.Room && !s.Wolf.Paralyzed && p.UseParalyzer() {
		s.Wolf.Paralyze()
		out = append(out, model.WolfPosition(s.Wolf))
		log.Infof("wolf paralyzed by %s, %d charges left", p.Name, p.Paralyzers)
	}

	var target *model.Player
	if s.Wolf.Room == p.Room {
		target = p
	}
	s.Wolf.Pursue(target)

	if s.Wolf.Room == p.Room && s.Wolf.Captures(p) {
		alive := p.TakeDamage()
		s.TeleportWolf(s.RandomRoomExcept(p.Room))
		if s.IsHost() {
			out = append(out, model.WolfPosition(s.Wolf))
		}
		if !alive {
			log.Infof("%s ran out of lives", p.Name)
			return out, OutcomeGameOver
		}
		s.RespawnPlayer(p, s.RandomRoomExcept(s.Wolf.Room))
		log.Infof("%s captured, %d lives left", p.Name, p.Lives)
	}

	for i := len(s.Artifacts) - 1; i >= 0; i-- {
		a := s.Artifacts[i]
		if a.Room != p.Room || !a.Bounds().Overlaps(p.Bounds()) {
			continue
		}
		s.Artifacts = append(s.Artifacts[:i], s.Artifacts[i+1:]...)
		won := p.Collect()
		out = append(out, model.ArtifactCollected(p.Id))
		if won {
			return out, OutcomeVictory
		}
		s.Wolf.IncreaseDifficulty()
		s.SpawnArtifact()
		log.Infof("%s collected artifact %d/%d", p.Name, p.Artifacts, model.VictoryArtifacts)
		break
	}

	out = append(out, model.PlayerMove(p))
	return out, OutcomeNone
}

// passDoor moves the player through a door: room id flips to the neighbor
// and the player lands just inside the opposite edge, centered on the cross
// axis. No collision check applies to the landing spot; doors always open
// onto clear space.
func (s *Session) passDoor(p *model.Player, dir model.Direction, next int) {
	p.Room = next
	switch dir {
	case model.Left:
		p.X = model.RoomWidth - model.PlayerSize - 100
		p.Y = model.RoomHeight / 2
	case model.Right:
		p.X = 100
		p.Y = model.RoomHeight / 2
	case model.Up:
		p.X = model.RoomWidth / 2
		p.Y = model.RoomHeight - model.PlayerSize - 100
	case model.Down:
		p.X = model.RoomWidth / 2
		p.Y = 100
	}
}

// ApplyMessage folds one inbound message into the session and returns any
// replies to broadcast. Every branch fully overwrites the fields it targets
// and ignores references to entities that no longer exist, so duplicate or
// out-of-order delivery can only regress state to an earlier valid
// broadcast, never corrupt it.
func (s *Session) ApplyMessage(m model.Message) (replies []model.Message) {
	if m.PlayerId == s.LocalId && m.PlayerId != "" {
		return nil
	}
	if m.PlayerId == "" && m.Type != model.MsgWolfPosition {
		// Every other message targets a player; without an id there is
		// nothing to apply it to.
		return nil
	}
	switch m.Type {
	case model.MsgPlayerJoined:
		if _, known := s.Players[m.PlayerId]; !known {
			p := model.NewPlayer(m.PlayerId, m.Name, m.Color)
			p.X, p.Y, p.Room = m.X, m.Y, m.Room
			s.AddPlayer(p)
			log.Infof("player joined: %s (%d online)", m.Name, s.PlayerCount())
		}
		if local, ok := s.Local(); ok {
			replies = append(replies, model.PlayerInfo(local))
		}
	case model.MsgPlayerInfo:
		p, known := s.Players[m.PlayerId]
		if !known {
			p = model.NewPlayer(m.PlayerId, m.Name, m.Color)
			s.AddPlayer(p)
		}
		p.Name, p.Color = m.Name, m.Color
		p.X, p.Y, p.Room = m.X, m.Y, m.Room
	case model.MsgPlayerMove:
		if p, known := s.Players[m.PlayerId]; known {
			p.X, p.Y, p.Room = m.X, m.Y, m.Room
		}
	case model.MsgPlayerLeft:
		log.Infof("player left: %s", m.PlayerId)
		s.RemovePlayer(m.PlayerId)
	case model.MsgArtifactCollected:
		// The sender already removed the artifact on its side; here only
		// the counter moves. Artifact lists converge approximately, not
		// exactly, under concurrent collection.
		if p, known := s.Players[m.PlayerId]; known {
			p.Collect()
		}
	case model.MsgWolfPosition:
		s.Wolf.X, s.Wolf.Y, s.Wolf.Room = m.X, m.Y, m.Room
		s.Wolf.Paralyzed = m.IsParalyzed
		if !m.IsParalyzed {
			s.Wolf.ParalyzedLeft = 0
		} else if s.Wolf.ParalyzedLeft == 0 {
			s.Wolf.ParalyzedLeft = model.ParalyzedTicks
		}
	default:
		// Unknown types are no-ops.
	}
	return replies
}
