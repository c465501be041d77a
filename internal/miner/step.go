package miner

import "github.com/madminer-game/madminer/internal/core"

// Status is the cheap per-tick summary the host reads after Step.
type Status struct {
	Mode      Mode
	Score     int
	Gold      int
	HighScore int
	GameOver  bool
	Paused    bool
}

// Step advances the simulation by one fixed tick. The returned status
// reflects the state after the update. Pause is edge-triggered; while
// paused or after game over only the pause toggle is processed.
func (g *Game) Step(in core.Input) Status {
	if in.Pause && g.mode != ModeGameOver {
		g.paused = !g.paused
	}
	if g.paused || g.mode == ModeGameOver {
		return g.status()
	}

	dt := g.rt.Dt()
	g.time += dt
	g.tick++
	now := g.time

	if in.Fire {
		g.fireHook()
	}
	g.hook.Magnetizing = in.Magnet
	g.updateHook(dt)

	moving := in.Move.Len() > movingThreshold

	if g.mode == ModeDig {
		g.updateDigging(dt, in.Move)
		if now >= g.nextPuzzle {
			g.mode = ModePuzzle
			g.nextPuzzle = now + g.tun.Run.PuzzleIntervalSeconds
		}
		g.maybeStartEvent(now)
	}

	if g.mode == ModePuzzle && in.StrokeDone {
		g.applyStroke(in.Stroke)
	}

	if g.mode == ModeEvent {
		g.quakePulse(now)
		g.updateEvent(now)
	}

	g.updateResources(dt, g.mode == ModeDig && moving)
	g.res.Heat = core.ClampF(g.res.Heat+g.lavaProximityHeat()*dt, 0, maxHeat)
	g.updateLava(dt)

	if g.dead() || now-g.runStart > g.runDuration {
		g.finishRun()
	}
	return g.status()
}

// finishRun ends the run: the mode locks to GAMEOVER, the clock stops
// and the high score is folded in.
func (g *Game) finishRun() {
	g.mode = ModeGameOver
	g.paused = true
	if s := g.Score(); s > g.highScore {
		g.highScore = s
	}
}

func (g *Game) status() Status {
	mode := g.mode
	if g.paused && mode != ModeGameOver {
		mode = ModePause
	}
	return Status{
		Mode:      mode,
		Score:     g.Score(),
		Gold:      int(g.res.Gold),
		HighScore: g.highScore,
		GameOver:  g.mode == ModeGameOver,
		Paused:    g.paused,
	}
}
