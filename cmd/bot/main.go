package main

import (
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/wolfchase/game"
	"github.com/zucenko/wolfchase/model"
	"github.com/zucenko/wolfchase/netplay"
)

// A headless client: joins the relay, wanders between rooms with random
// intents and reports its fate. Doubles as a soak tool for the relay and as
// the reference embedding of the core loop.
func main() {
	_ = godotenv.Load()
	cfg, err := netplay.ParseConfig()
	if err != nil {
		log.Fatalln(err)
	}

	name := os.Getenv("WOLFCHASE_BOT_NAME")
	if name == "" {
		name = "bot"
	}

	g := game.New(cfg)
	g.Start(name)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	dir := randomDirection(rng)
	held := 0

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	report := time.NewTicker(5 * time.Second)
	defer report.Stop()

	for g.State == game.Running {
		select {
		case <-ticker.C:
			held--
			if held <= 0 {
				dir = randomDirection(rng)
				held = 30 + rng.Intn(90)
			}
			g.Update(game.Intent{
				Direction: dir,
				Interact:  rng.Intn(40) == 0,
				Paralyze:  rng.Intn(600) == 0,
			})
		case <-report.C:
			snap := g.Snapshot()
			log.Infof("room %d, lives %d, artifacts %d/%d, %d online, %s elapsed",
				snap.Room, snap.Lives, snap.Collected, model.VictoryArtifacts,
				snap.PlayersOnline, game.FormatElapsed(snap.Elapsed))
		case <-interrupt:
			g.Exit()
			return
		}
	}

	snap := g.Snapshot()
	log.Infof("finished %s with %d artifacts in %s",
		g.State.Name(), snap.Collected, game.FormatElapsed(snap.Elapsed))
}

func randomDirection(rng *rand.Rand) model.Direction {
	dirs := []model.Direction{model.Up, model.Down, model.Left, model.Right, model.None}
	return dirs[rng.Intn(len(dirs))]
}
