package main

import (
	"flag"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	speed := flag.Int("speed", 100, "Tick interval in milliseconds")
	flag.Parse()

	stats := NewGameStats()
	g := game.NewGame(uint64(time.Now().UnixNano()))

	session := uuid.New().String()
	sessionStart := time.Now()
	log.Infof("starting game session %s (high score %d)", session, stats.GetHighScore())

	rl.InitWindow(1024, 768, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()
	updateInterval := time.Duration(*speed) * time.Millisecond

	snap := g.Snapshot()
	recorded := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW) {
			snap = g.SubmitDirection(types.Up)
		}
		if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS) {
			snap = g.SubmitDirection(types.Down)
		}
		if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA) {
			snap = g.SubmitDirection(types.Left)
		}
		if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD) {
			snap = g.SubmitDirection(types.Right)
		}
		if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyP) {
			snap = g.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			snap = g.Reset()
			session = uuid.New().String()
			sessionStart = time.Now()
			recorded = false
			log.Infof("restart, new session %s", session)
		}

		// Advance the game at the fixed tick cadence
		if time.Since(lastUpdate) >= updateInterval {
			var newHigh bool
			snap, newHigh = g.Tick(stats.GetHighScore())
			lastUpdate = time.Now()

			if newHigh {
				stats.RecordHighScore(snap.Score)
			}
			if snap.GameOver && !recorded {
				recorded = true
				stats.AddGame(GameRecord{
					Session:   session,
					Score:     snap.Score,
					Won:       snap.Won,
					StartTime: sessionStart,
					EndTime:   time.Now(),
				})
				if err := stats.Save(); err != nil {
					log.Warnf("could not save stats: %v", err)
				}
				log.Infof("game over: session %s score %d won %v", session, snap.Score, snap.Won)
			}
		}

		renderer.Draw(snap, stats.GetHighScore(), stats.GamesPlayed())
	}

	if err := stats.Save(); err != nil {
		log.Warnf("could not save stats: %v", err)
	}
	log.Info("bye")
}
