// Package shooter implements the Space Shooter game logic.
// The player moves a ship along the bottom edge and shoots the meteors that
// fall from the top; each meteor that reaches the ship costs a life.
package shooter

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/audio"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// ID is the game identifier used for score storage.
const ID = "shooter"

// EndReason says why a session stopped.
type EndReason string

const (
	EndNone      EndReason = ""
	EndQuit      EndReason = "quit"
	EndDestroyed EndReason = "destroyed"
)

// Options configures a new session.
type Options struct {
	Config config.ShooterConfig
	Assets *assets.Pack
	Sound  audio.Player // nil plays nothing
	Seed   int64
}

// Stats summarizes a session for score storage.
type Stats struct {
	Score  int
	Lives  int
	Kills  int
	Ticks  int
	Reason EndReason
}

// Game is one session: the components, the shared state and the two timers.
type Game struct {
	cfg         config.ShooterConfig
	state       *State
	background  *Background
	player      *Player
	enemies     *EnemyPool
	projectiles *ProjectilePool
	hud         *HUD
	animated    []animated
	spawnTimer  *core.RepeatingTimer
	animTimer   *core.RepeatingTimer
	paused      bool
	ticks       int
	reason      EndReason
	textColor   core.Color
}

// New creates a session ready for its first frame.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pack := opts.Assets
	if pack == nil || len(pack.Player) == 0 || len(pack.Enemy) == 0 {
		return nil, errors.New("shooter: sprite pack is incomplete")
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Silent{}
	}

	w, h := cfg.Screen.Width, cfg.Screen.Height
	state := NewState(cfg.Gameplay.Lives)
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:         cfg,
		state:       state,
		background:  NewBackground(pack.Sky, cfg.Background.ScrollSpeed, colorFor(cfg, "background")),
		player:      NewPlayer(pack.Player, w, h, cfg.Player.BottomOffset, cfg.Player.Speed, colorFor(cfg, "player")),
		enemies:     NewEnemyPool(pack.Enemy, state, rng, w, h, cfg.Enemies.Speed, cfg.Enemies.SpawnMargin, colorFor(cfg, "enemy")),
		projectiles: NewProjectilePool(pack.Projectile, state, sound, cfg.Projectiles.Speed, cfg.Projectiles.Points, colorFor(cfg, "projectile")),
		hud:         NewHUD(state, w, colorFor(cfg, "hud")),
		spawnTimer:  core.NewRepeatingTimer(cfg.SpawnInterval()),
		animTimer:   core.NewRepeatingTimer(cfg.AnimationInterval()),
		textColor:   colorFor(cfg, "hud"),
	}
	g.animated = []animated{g.player, g.enemies}
	return g, nil
}

func colorFor(cfg config.ShooterConfig, key string) core.Color {
	c, _ := core.ParseColor(cfg.Colors[key])
	return c
}

// Title returns the display name.
func (g *Game) Title() string { return g.cfg.Screen.Title }

// Player returns the ship.
func (g *Game) Player() *Player { return g.player }

// Enemies returns the enemy pool.
func (g *Game) Enemies() *EnemyPool { return g.enemies }

// Projectiles returns the projectile pool.
func (g *Game) Projectiles() *ProjectilePool { return g.projectiles }

// Background returns the scrolling sky.
func (g *Game) Background() *Background { return g.background }

// HUD returns the score/lives overlay.
func (g *Game) HUD() *HUD { return g.hud }

// Ended reports whether the session has stopped.
func (g *Game) Ended() bool { return g.reason != EndNone }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		Lives:    g.state.Lives(),
		GameOver: g.state.Over(),
		Paused:   g.paused,
	}
}

// Stats returns the session summary.
func (g *Game) Stats() Stats {
	return Stats{
		Score:  g.state.Score(),
		Lives:  g.state.Lives(),
		Kills:  g.state.Kills(),
		Ticks:  g.ticks,
		Reason: g.reason,
	}
}

// Poll turns one tick of input and elapsed time into the frame's events.
// Timers do not advance while paused.
func (g *Game) Poll(in core.InputFrame, dt time.Duration) []Event {
	events := make([]Event, 0, 4)

	if in.Has(core.ActionQuit) {
		events = append(events, Event{Kind: EventQuit})
	}
	for i := 0; i < in.Presses(core.ActionPause); i++ {
		events = append(events, Event{Kind: EventKeyDown, Action: core.ActionPause})
	}
	for i := 0; i < in.Presses(core.ActionFire); i++ {
		events = append(events, Event{Kind: EventKeyDown, Action: core.ActionFire})
	}

	if g.paused {
		return events
	}
	for n := g.spawnTimer.Advance(dt); n > 0; n-- {
		events = append(events, Event{Kind: EventSpawnTimer})
	}
	for n := g.animTimer.Advance(dt); n > 0; n-- {
		events = append(events, Event{Kind: EventAnimationTimer})
	}
	return events
}

// Frame dispatches events to the components, then updates them once.
//
// A returned error abandons the rest of the frame. Errors wrapping
// ErrInvariant mean the state is corrupt and the session must stop; any
// other error is confined to this frame.
func (g *Game) Frame(events []Event, in core.InputFrame) (core.StepResult, error) {
	if g.Ended() {
		return core.StepResult{State: g.State(), Quit: g.reason == EndQuit}, nil
	}

	prev := g.state.snapshot()

	for _, ev := range events {
		quit, err := g.handleEvent(ev)
		if err != nil {
			return core.StepResult{State: g.State()}, err
		}
		if quit {
			g.reason = EndQuit
			return core.StepResult{State: g.State(), Quit: true}, nil
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}, nil
	}

	g.update(in)

	if err := g.checkInvariants(prev); err != nil {
		return core.StepResult{State: g.State()}, err
	}
	return core.StepResult{State: g.State()}, nil
}

// Step polls and runs one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) (core.StepResult, error) {
	return g.Frame(g.Poll(in, dt), in)
}

// handleEvent routes one event. It returns true for a quit request.
func (g *Game) handleEvent(ev Event) (bool, error) {
	switch ev.Kind {
	case EventQuit:
		return true, nil

	case EventSpawnTimer:
		g.enemies.Spawn()

	case EventAnimationTimer:
		for _, a := range g.animated {
			a.animation().Advance()
		}

	case EventKeyDown:
		switch ev.Action {
		case core.ActionPause:
			g.paused = !g.paused
		case core.ActionFire:
			if g.paused {
				return false, nil
			}
			return false, g.projectiles.Fire(g.player.Rect())
		}

	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownEvent, ev)
	}
	return false, nil
}

// update advances every component by one tick. A hit on the last life
// ends the session before projectiles move.
func (g *Game) update(in core.InputFrame) {
	g.ticks++
	g.background.Update()
	g.player.Update(in)
	if g.enemies.Update(g.player.Rect()) {
		g.reason = EndDestroyed
		return
	}
	g.projectiles.Update(g.enemies)
}

func (g *Game) checkInvariants(prev snapshot) error {
	if err := g.state.check(prev); err != nil {
		return err
	}
	return g.background.check()
}

// Render draws the background, ship, enemies, projectiles and overlay in that order.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.NewViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, dst.Width(), dst.Height())

	g.background.Draw(dst, vp)
	g.player.Draw(dst, vp)
	g.enemies.Draw(dst, vp)
	g.projectiles.Draw(dst, vp)
	g.hud.Draw(dst, vp)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, g.textColor)

	dst.DrawTextCentered(boxY+1, title, g.textColor)
	dst.DrawTextCentered(boxY+3, subtitle, g.textColor)
}
