package model

import "math"

// Move displaces the player one tick along an axis and returns the pre-move
// position. The caller decides whether to keep the move or roll it back
// after checking collisions.
func (p *Player) Move(d Direction) (oldX, oldY float64) {
	oldX, oldY = p.X, p.Y
	switch d {
	case Up:
		p.Y -= PlayerSpeed
	case Down:
		p.Y += PlayerSpeed
	case Left:
		p.X -= PlayerSpeed
	case Right:
		p.X += PlayerSpeed
	}
	return oldX, oldY
}

// TakeDamage removes one life and reports whether the player is still alive.
func (p *Player) TakeDamage() bool {
	p.Lives--
	return p.Alive()
}

// Collect bumps the artifact count and reports whether the victory
// threshold was reached.
func (p *Player) Collect() bool {
	p.Artifacts++
	return p.Artifacts >= VictoryArtifacts
}

// UseParalyzer consumes one charge if any remain.
func (p *Player) UseParalyzer() bool {
	if p.Paralyzers <= 0 {
		return false
	}
	p.Paralyzers--
	return true
}

// Pursue advances the wolf one tick. While paralyzed the position is frozen
// and only the countdown moves. Otherwise the wolf steps straight toward
// the target by a unit vector scaled with speed and difficulty. There is no
// obstacle avoidance; getting stuck against geometry is accepted.
func (w *Wolf) Pursue(target *Player) {
	if w.Paralyzed {
		w.ParalyzedLeft--
		if w.ParalyzedLeft <= 0 {
			w.Paralyzed = false
			w.ParalyzedLeft = 0
		}
		return
	}
	if target == nil {
		return
	}
	dx := target.X - w.X
	dy := target.Y - w.Y
	dist := math.Hypot(dx, dy)
	if dist > 0 {
		w.X += dx / dist * w.Speed * w.Difficulty
		w.Y += dy / dist * w.Speed * w.Difficulty
	}
}

func (w *Wolf) Paralyze() {
	w.Paralyzed = true
	w.ParalyzedLeft = ParalyzedTicks
}

// IncreaseDifficulty adds the fixed step to the multiplier. It never
// decreases within a session.
func (w *Wolf) IncreaseDifficulty() {
	w.Difficulty += DifficultyStep
}

// Captures reports whether the active wolf overlaps the player. A paralyzed
// wolf captures nothing.
func (w *Wolf) Captures(p *Player) bool {
	return !w.Paralyzed && w.Bounds().Overlaps(p.Bounds())
}
