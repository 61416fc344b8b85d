package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newPlatformGame(t *testing.T, seed int64, level int, store ScoreStore) *Game {
	t.Helper()
	logger := quietLogger()
	g := New(config.DefaultSnakeConfig(), NewHighScoreKeeper(store, logger), logger)
	err := g.Reset(core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
		Level:   level,
	})
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	g1 := newPlatformGame(t, 12345, 2, nil)
	g2 := newPlatformGame(t, 12345, 2, nil)

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		switch i {
		case 3:
			g1.Steer(core.DirDown)
			g2.Steer(core.DirDown)
		case 7:
			g1.Steer(core.DirLeft)
			g2.Steer(core.DirLeft)
		}
		g1.Step(input)
		g2.Step(input)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("tick %d: snapshots differ:\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newPlatformGame(t, 1, 1, nil)

	g.Steer(core.DirUp)
	input := core.NewInputFrame()
	for i := 0; i < 6; i++ {
		g.Step(input)
	}

	snap := g.Snapshot()
	if snap.State != StateGameOver || snap.Collision != CollisionWall {
		t.Fatalf("snapshot = %+v, want wall game over", snap)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()
	for _, want := range []string{"Game Over", "Score: 0", "Highest Score: 0", "R: New Game"} {
		if !strings.Contains(content, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}

	// Steps without restart keep the game over.
	g.Step(input)
	if !g.State().GameOver {
		t.Error("game should stay over until restarted")
	}

	input.Set(core.ActionRestart)
	g.Step(input)
	snap = g.Snapshot()
	if snap.State != StatePlaying || snap.Score != 0 || snap.SnakeLen != 1 || snap.Level != 1 {
		t.Errorf("after restart snapshot = %+v", snap)
	}
}

func TestGameRecordsHighScore(t *testing.T) {
	store := &fakeScoreStore{}
	g := newPlatformGame(t, 1, 1, store)

	input := core.NewInputFrame()
	for i := 0; i < 5; i++ {
		g.Step(input)
	}
	if g.State().Score != 1 {
		t.Fatalf("score = %d, want 1 after reaching the first food", g.State().Score)
	}

	g.Steer(core.DirUp)
	for i := 0; i < 50 && !g.State().GameOver; i++ {
		g.Step(input)
	}
	if !g.State().GameOver {
		t.Fatal("game should end at the top wall")
	}

	score := g.State().Score
	if g.HighScore() != score {
		t.Errorf("HighScore = %d, want %d", g.HighScore(), score)
	}
	if len(store.saved) != 1 || store.saved[0] != score {
		t.Errorf("saved = %v, want [%d]", store.saved, score)
	}
}

func TestGamePause(t *testing.T) {
	g := newPlatformGame(t, 1, 1, nil)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	if g.Snapshot() != before {
		t.Error("paused game should not move")
	}

	g.Step(pause)
	if g.Snapshot().Tick != before.Tick+1 {
		t.Error("unpaused game should move again")
	}
}

func TestGameWindowTooSmall(t *testing.T) {
	logger := quietLogger()
	g := New(config.DefaultSnakeConfig(), nil, logger)
	if err := g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10, Level: 1}); err != nil {
		t.Fatal(err)
	}

	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("State = %s, want %s", snap.State, StatePausedSmall)
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 0 {
		t.Error("game should not advance while the window is too small")
	}

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 1 {
		t.Error("game should resume once the board fits")
	}
}

func TestGameResetUnknownLevel(t *testing.T) {
	g := New(config.DefaultSnakeConfig(), nil, quietLogger())
	if err := g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, Level: 7}); err == nil {
		t.Error("Reset should fail for an unknown level")
	}
}

func TestRender(t *testing.T) {
	g := newPlatformGame(t, 444, 2, nil)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "Snake") || !strings.Contains(content, "Score: 0") {
		t.Error("HUD should show the title and score")
	}
	if strings.Count(content, "██") != 1 {
		t.Error("board should show exactly one snake head")
	}
	if strings.Count(content, "()")+strings.Count(content, "<>") != 1 {
		t.Error("board should show exactly one food item")
	}
	if got := strings.Count(content, "##"); got != 18 {
		t.Errorf("board shows %d obstacles, want 18", got)
	}
}

func TestKindAtPrecedence(t *testing.T) {
	_, s := newTestGame(t, 1, 1)
	head := s.Body.Head().Cell

	// Force overlaps the engine never produces to check drawing order.
	s.Food = Food{Cell: head}
	s.Obstacles.Put(head)
	if got := s.KindAt(head); got != KindHead {
		t.Errorf("KindAt(head) = %v, want KindHead", got)
	}

	s.Obstacles.Put(100)
	s.Food = Food{Cell: 100, Reverses: true}
	if got := s.KindAt(100); got != KindReversingFood {
		t.Errorf("KindAt(100) = %v, want KindReversingFood", got)
	}
	s.Obstacles.Put(101)
	if got := s.KindAt(101); got != KindObstacle {
		t.Errorf("KindAt(101) = %v, want KindObstacle", got)
	}
	if got := s.KindAt(1); got != KindEmpty {
		t.Errorf("KindAt(1) = %v, want KindEmpty", got)
	}
}
