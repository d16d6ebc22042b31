package game

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/wolfchase/model"
	"github.com/zucenko/wolfchase/netplay"
)

type State int

const (
	Lobby State = iota + 1
	Running
	GameOver
	Victory
)

func (s State) Name() string {
	switch s {
	case Lobby:
		return "LOBBY"
	case Running:
		return "RUNNING"
	case GameOver:
		return "GAME_OVER"
	case Victory:
		return "VICTORY"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Smoother key for the wolf; player keys are their ids.
const wolfKey = "wolf"

// Game drives the session lifecycle and owns the per-frame cadence. The
// embedding code (a renderer loop, a bot ticker) calls Update once per
// frame with the local intent; everything else, including inbound network
// events, is folded in from that same call so session state only ever has
// one writer at a time.
type Game struct {
	State   State
	Session *Session
	Net     *netplay.Network
	Smooth  *Smoother

	cfg netplay.Config
	rng *rand.Rand
}

func New(cfg netplay.Config) *Game {
	return &Game{
		State: Lobby,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start allocates a fresh session and connects to the relay. A relay that
// cannot be reached is not an error: the game degrades to local-only mode
// and runs single player.
func (g *Game) Start(name string) {
	g.Session = NewSession(g.rng)
	g.Smooth = NewSmoother()
	g.Net = netplay.Dial(g.cfg)

	p := model.NewPlayer(g.Net.LocalId, name, model.RandomColor(g.rng))
	g.Session.LocalId = p.Id
	g.Session.AddPlayer(p)
	g.Session.RespawnPlayer(p, 0)

	g.Session.TeleportWolf(g.rng.Intn(model.RoomCount))
	g.Session.SpawnArtifact()
	g.Session.Running = true
	g.Session.StartedAt = time.Now()
	g.State = Running

	g.Net.Send(model.PlayerJoined(p))
	log.Infof("session started for %s (local mode: %v)", name, g.Net.LocalMode())
}

// Update runs one frame: pending inbound messages first, then the local
// tick, then outbound broadcasts. Messages that arrived while the previous
// frame ran are applied here in full before any tick logic touches the
// session, so a tick never observes a half-applied event.
func (g *Game) Update(in Intent) {
	if g.State != Running {
		return
	}
	for {
		m, ok := g.Net.Poll()
		if !ok {
			break
		}
		g.applyInbound(m)
	}

	out, outcome := g.Session.Tick(in)
	for _, m := range out {
		g.Net.Send(m)
	}
	g.Smooth.Update(1.0 / 60.0)

	switch outcome {
	case OutcomeGameOver:
		g.finish(GameOver)
	case OutcomeVictory:
		g.finish(Victory)
	}
}

func (g *Game) applyInbound(m model.Message) {
	for _, reply := range g.Session.ApplyMessage(m) {
		g.Net.Send(reply)
	}
	switch m.Type {
	case model.MsgPlayerJoined, model.MsgPlayerInfo, model.MsgPlayerMove:
		if m.PlayerId != g.Session.LocalId {
			g.Smooth.Observe(m.PlayerId, m.X, m.Y)
		}
	case model.MsgPlayerLeft:
		g.Smooth.Forget(m.PlayerId)
	case model.MsgWolfPosition:
		g.Smooth.Observe(wolfKey, m.X, m.Y)
	}
}

func (g *Game) finish(terminal State) {
	g.State = terminal
	g.Session.Running = false
	g.Net.Leave()
	if p, ok := g.Session.Local(); ok {
		log.Infof("session over: %s, artifacts %d, time %s",
			terminal.Name(), p.Artifacts, FormatElapsed(time.Since(g.Session.StartedAt)))
	}
}

// Exit clears all session state and returns to the lobby.
func (g *Game) Exit() {
	if g.State == Running && g.Net != nil {
		g.Net.Leave()
	}
	g.Session = nil
	g.Net = nil
	g.Smooth = nil
	g.State = Lobby
}

// Restart drops everything and begins a brand-new session with a freshly
// generated player identity.
func (g *Game) Restart(name string) {
	g.Exit()
	g.Start(name)
}

// FormatElapsed renders a duration as m:ss for HUD consumers.
func FormatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
