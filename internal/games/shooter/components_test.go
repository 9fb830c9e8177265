package shooter

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

func mustSprite(t *testing.T, text string) assets.Sprite {
	t.Helper()
	s, err := assets.ParseSprite("test", text)
	if err != nil {
		t.Fatalf("ParseSprite(%q): %v", text, err)
	}
	return s
}

// newTestEnemies returns a pool of 48x48 enemies on an 800x600 field.
func newTestEnemies(t *testing.T, state *State, seed int64) *EnemyPool {
	t.Helper()
	frame := mustSprite(t, "##").Scale(3)
	return NewEnemyPool([]assets.Sprite{frame, frame}, state, rand.New(rand.NewSource(seed)), 800, 600, 5, 50, core.ColorDefault)
}

// recordingSound counts fire sounds and optionally fails.
type recordingSound struct {
	plays int
	err   error
}

func (r *recordingSound) PlayFire() error {
	r.plays++
	return r.err
}

var farPlayer = core.NewRect(600, 526, 40, 48)

func TestEnemyRemovedAfterLeavingBottom(t *testing.T) {
	state := NewState(3)
	ep := newTestEnemies(t, state, 1)
	ep.Add(100, 595)
	ep.Add(100, 590)

	if ep.Update(farPlayer) {
		t.Fatal("Update reported session end")
	}
	if ep.Len() != 1 {
		t.Fatalf("Len = %d after first update, want 1", ep.Len())
	}
	if got := ep.Rects()[0].Y; got != 595 {
		t.Errorf("remaining enemy Y = %d, want 595", got)
	}

	ep.Update(farPlayer)
	if ep.Len() != 0 {
		t.Errorf("Len = %d after second update, want 0", ep.Len())
	}
	if state.Lives() != 3 || state.Score() != 0 {
		t.Errorf("state changed: lives=%d score=%d", state.Lives(), state.Score())
	}
}

func TestEnemyHitTakesLife(t *testing.T) {
	state := NewState(3)
	ep := newTestEnemies(t, state, 1)
	player := core.NewRect(400, 500, 40, 48)
	ep.Add(400, 495)
	ep.Add(100, 100)

	if ep.Update(player) {
		t.Fatal("Update reported session end with lives left")
	}
	if state.Lives() != 2 {
		t.Errorf("Lives = %d, want 2", state.Lives())
	}
	if ep.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ep.Len())
	}
	if got := ep.Rects()[0]; got.X != 100 || got.Y != 105 {
		t.Errorf("surviving enemy at (%d,%d), want (100,105)", got.X, got.Y)
	}
}

func TestEnemyHitOnLastLifeEndsSession(t *testing.T) {
	state := NewState(1)
	ep := newTestEnemies(t, state, 1)
	player := core.NewRect(400, 500, 40, 48)
	ep.Add(400, 495)

	if !ep.Update(player) {
		t.Fatal("Update did not report session end")
	}
	if !state.Over() {
		t.Error("state not over")
	}
	if state.Lives() != 0 {
		t.Errorf("Lives = %d, want 0", state.Lives())
	}
}

func TestTwoHitsInOneTick(t *testing.T) {
	state := NewState(3)
	ep := newTestEnemies(t, state, 1)
	player := core.NewRect(400, 500, 40, 48)
	ep.Add(400, 495)
	ep.Add(390, 495)

	if ep.Update(player) {
		t.Fatal("Update reported session end with lives left")
	}
	if state.Lives() != 1 {
		t.Errorf("Lives = %d, want 1", state.Lives())
	}
	if ep.Len() != 0 {
		t.Errorf("Len = %d, want 0", ep.Len())
	}
}

func TestSpawnBounds(t *testing.T) {
	ep := newTestEnemies(t, NewState(3), 42)
	for i := 0; i < 1000; i++ {
		r := ep.Spawn()
		if r.X < 50 || r.X > 750 {
			t.Fatalf("spawn %d: X = %d outside [50, 750]", i, r.X)
		}
		if r.Y != 0 {
			t.Fatalf("spawn %d: Y = %d, want 0", i, r.Y)
		}
	}
	if ep.Len() != 1000 {
		t.Errorf("Len = %d, want 1000", ep.Len())
	}
}

func TestFireWithNoEnemies(t *testing.T) {
	state := NewState(3)
	sound := &recordingSound{}
	pp := NewProjectilePool(mustSprite(t, "|"), state, sound, 10, 10, core.ColorDefault)
	targets := newTestEnemies(t, state, 1)
	ship := core.NewRect(380, 526, 40, 48)

	if err := pp.Fire(ship); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if sound.plays != 1 {
		t.Errorf("fire sound played %d times, want 1", sound.plays)
	}
	r := pp.Rects()[0]
	if r.CenterX() != ship.CenterX() || r.Y+r.H/2 != ship.Top() {
		t.Errorf("projectile centered at (%d,%d), want (%d,%d)", r.CenterX(), r.Y+r.H/2, ship.CenterX(), ship.Top())
	}

	startY := r.Y
	for tick := 1; tick <= 53; tick++ {
		pp.Update(targets)
		if pp.Len() != 1 {
			t.Fatalf("tick %d: projectile removed early", tick)
		}
		if got := pp.Rects()[0].Y; got != startY-10*tick {
			t.Fatalf("tick %d: Y = %d, want %d", tick, got, startY-10*tick)
		}
	}
	pp.Update(targets)
	if pp.Len() != 0 {
		t.Errorf("projectile with bottom %d not removed", pp.Rects()[0].Bottom())
	}
	if state.Score() != 0 {
		t.Errorf("Score = %d, want 0", state.Score())
	}
}

func TestFireSoundFailureKeepsProjectile(t *testing.T) {
	soundErr := errors.New("device busy")
	pp := NewProjectilePool(mustSprite(t, "|"), NewState(3), &recordingSound{err: soundErr}, 10, 10, core.ColorDefault)

	err := pp.Fire(core.NewRect(380, 526, 40, 48))
	if !errors.Is(err, soundErr) {
		t.Fatalf("Fire error = %v, want %v", err, soundErr)
	}
	if pp.Len() != 1 {
		t.Errorf("Len = %d, want 1", pp.Len())
	}
}

func TestProjectileDestroysOneEnemy(t *testing.T) {
	state := NewState(3)
	pp := NewProjectilePool(mustSprite(t, "|"), state, &recordingSound{}, 10, 10, core.ColorDefault)
	enemies := newTestEnemies(t, state, 1)
	enemies.Add(380, 490)
	enemies.Add(380, 490)

	if err := pp.Fire(core.NewRect(380, 526, 40, 48)); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	pp.Update(enemies)

	if enemies.Len() != 1 {
		t.Errorf("enemies Len = %d, want 1", enemies.Len())
	}
	if pp.Len() != 0 {
		t.Errorf("projectiles Len = %d, want 0", pp.Len())
	}
	if state.Score() != 10 || state.Kills() != 1 {
		t.Errorf("score=%d kills=%d, want 10 and 1", state.Score(), state.Kills())
	}
}

func TestTwoProjectilesDestroyTwoEnemies(t *testing.T) {
	state := NewState(3)
	pp := NewProjectilePool(mustSprite(t, "|"), state, &recordingSound{}, 10, 10, core.ColorDefault)
	enemies := newTestEnemies(t, state, 1)
	enemies.Add(380, 490)
	enemies.Add(380, 490)

	ship := core.NewRect(380, 526, 40, 48)
	for i := 0; i < 2; i++ {
		if err := pp.Fire(ship); err != nil {
			t.Fatalf("Fire: %v", err)
		}
	}
	pp.Update(enemies)

	if enemies.Len() != 0 || pp.Len() != 0 {
		t.Errorf("enemies=%d projectiles=%d, want 0 and 0", enemies.Len(), pp.Len())
	}
	if state.Score() != 20 {
		t.Errorf("Score = %d, want 20", state.Score())
	}
}

func TestPlayerMovement(t *testing.T) {
	frame := mustSprite(t, "#####\n#####\n#####")

	tests := []struct {
		name  string
		held  []core.Action
		wantX int
	}{
		{"none", nil, 380},
		{"left", []core.Action{core.ActionLeft}, 365},
		{"right", []core.Action{core.ActionRight}, 395},
		{"both", []core.Action{core.ActionLeft, core.ActionRight}, 380},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer([]assets.Sprite{frame}, 800, 600, 50, 15, core.ColorDefault)
			in := core.NewInputFrame()
			for _, a := range tt.held {
				in.SetHeld(a, true)
			}
			p.Update(in)
			if got := p.Rect().X; got != tt.wantX {
				t.Errorf("X = %d, want %d", got, tt.wantX)
			}
		})
	}
}

func TestPlayerStopsAtEdges(t *testing.T) {
	frame := mustSprite(t, "#####\n#####\n#####")
	p := NewPlayer([]assets.Sprite{frame}, 800, 600, 50, 15, core.ColorDefault)

	left := core.NewInputFrame()
	left.SetHeld(core.ActionLeft, true)
	for i := 0; i < 100; i++ {
		p.Update(left)
	}
	if p.Rect().Left() > 0 || p.Rect().Left() <= -15 {
		t.Errorf("left edge = %d after holding left", p.Rect().Left())
	}

	right := core.NewInputFrame()
	right.SetHeld(core.ActionRight, true)
	for i := 0; i < 100; i++ {
		p.Update(right)
	}
	if p.Rect().Right() < 800 || p.Rect().Right() >= 815 {
		t.Errorf("right edge = %d after holding right", p.Rect().Right())
	}
}

func TestPlayerStartPosition(t *testing.T) {
	frame := mustSprite(t, "#####\n#####\n#####")
	p := NewPlayer([]assets.Sprite{frame}, 800, 600, 50, 15, core.ColorDefault)
	if r := p.Rect(); r.CenterX() != 400 || r.Y+r.H/2 != 550 {
		t.Errorf("center = (%d,%d), want (400,550)", r.CenterX(), r.Y+r.H/2)
	}
}

func TestBackgroundWrap(t *testing.T) {
	tile := mustSprite(t, "..\n..") // 32px tall
	b := NewBackground(tile, 1, core.ColorDefault)
	b.rect1.Y = tile.Height() - 1
	b.rect2.Y = -1

	b.Update()

	r1, r2 := b.Tiles()
	if r1.Y != -tile.Height() {
		t.Errorf("wrapped tile Y = %d, want %d", r1.Y, -tile.Height())
	}
	if r2.Y != 0 {
		t.Errorf("other tile Y = %d, want 0", r2.Y)
	}
	if err := b.check(); err != nil {
		t.Errorf("check after wrap: %v", err)
	}
}

func TestBackgroundCoversField(t *testing.T) {
	tile := mustSprite(t, "...\n...\n...") // 48px tall
	for _, speed := range []int{1, 5, 7} {
		b := NewBackground(tile, speed, core.ColorDefault)
		for tick := 0; tick < 1000; tick++ {
			b.Update()
			if err := b.check(); err != nil {
				t.Fatalf("speed %d tick %d: %v", speed, tick, err)
			}
		}
	}
}

func TestBackgroundCheckDetectsGap(t *testing.T) {
	tile := mustSprite(t, "..")
	b := NewBackground(tile, 1, core.ColorDefault)
	b.rect2.Y = -100

	if err := b.check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("check = %v, want ErrInvariant", err)
	}
}

func TestStateCheck(t *testing.T) {
	s := NewState(3)
	prev := s.snapshot()
	s.LoseLife()
	s.AddKill(10)
	if err := s.check(prev); err != nil {
		t.Fatalf("check after normal play: %v", err)
	}

	prev = s.snapshot()
	s.lives = 3
	if err := s.check(prev); !errors.Is(err, ErrInvariant) {
		t.Errorf("lives increase: check = %v, want ErrInvariant", err)
	}

	s = NewState(3)
	s.score = -10
	if err := s.check(snapshot{score: -10, lives: 3}); !errors.Is(err, ErrInvariant) {
		t.Errorf("negative score: check = %v, want ErrInvariant", err)
	}
}

func TestLoseLife(t *testing.T) {
	s := NewState(3)
	for want := 2; want >= 1; want-- {
		if s.LoseLife() {
			t.Fatalf("LoseLife ended the session with %d lives left", want)
		}
		if s.Lives() != want {
			t.Fatalf("Lives = %d, want %d", s.Lives(), want)
		}
	}
	if !s.LoseLife() {
		t.Fatal("LoseLife on the last life did not end the session")
	}
	if s.Lives() != 0 || !s.Over() {
		t.Errorf("lives=%d over=%v, want 0 and true", s.Lives(), s.Over())
	}
}

func TestAnimationCycles(t *testing.T) {
	a := NewAnimation(5)
	want := []int{1, 2, 3, 4, 0, 1}
	for i, w := range want {
		a.Advance()
		if a.Frame() != w {
			t.Fatalf("advance %d: frame %d, want %d", i+1, a.Frame(), w)
		}
	}
}

func TestHUDLines(t *testing.T) {
	s := NewState(3)
	s.AddKill(10)
	s.LoseLife()
	score, lives := NewHUD(s, 800, core.ColorDefault).Lines()
	if score != "Score: 10" || lives != "Lives: 2" {
		t.Errorf("Lines() = %q, %q", score, lives)
	}
}
