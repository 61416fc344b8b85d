package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	parsed, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	want := DefaultSnakeConfig()
	if parsed.Board != want.Board || parsed.Timing != want.Timing || parsed.Food != want.Food {
		t.Errorf("embedded defaults differ: got %+v, expected %+v", parsed, want)
	}
	if len(parsed.Levels) != len(want.Levels) {
		t.Fatalf("expected %d levels, got %d", len(want.Levels), len(parsed.Levels))
	}
	for i := range want.Levels {
		if parsed.Levels[i] != want.Levels[i] {
			t.Errorf("level %d = %+v, expected %+v", i, parsed.Levels[i], want.Levels[i])
		}
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestObstacleCount(t *testing.T) {
	cfg := DefaultSnakeConfig()

	classic, ok := cfg.Level(1)
	if !ok {
		t.Fatal("level 1 missing")
	}
	if got := classic.ObstacleCount(15); got != 0 {
		t.Errorf("level 1 should have no obstacles, got %d", got)
	}

	obstacles, ok := cfg.Level(2)
	if !ok {
		t.Fatal("level 2 missing")
	}

	tests := []struct {
		n    int
		want int
	}{
		{15, 18}, // floor(0.08*225) = 18
		{10, 8},  // floor(0.08*100) = 8
		{5, 8},   // minimum applies
		{20, 32},
	}
	for _, tc := range tests {
		if got := obstacles.ObstacleCount(tc.n); got != tc.want {
			t.Errorf("ObstacleCount(%d) = %d, expected %d", tc.n, got, tc.want)
		}
	}
}

func TestLevelLookup(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if _, ok := cfg.Level(3); ok {
		t.Error("level 3 should not exist")
	}
	ids := cfg.LevelIDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("LevelIDs() = %v, expected [1 2]", ids)
	}
}

func TestMaxDraws(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if got := cfg.MaxDraws(); got != 4*15*15 {
		t.Errorf("MaxDraws() = %d, expected %d", got, 4*15*15)
	}

	cfg.Food.MaxDraws = 7
	if got := cfg.MaxDraws(); got != 7 {
		t.Errorf("MaxDraws() = %d, expected 7", got)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  size: 20\ntiming:\n  tick_interval: 90ms\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Board.Size != 20 {
		t.Errorf("board size = %d, expected 20", cfg.Board.Size)
	}
	if cfg.Timing.TickInterval != 90*time.Millisecond {
		t.Errorf("tick interval = %v, expected 90ms", cfg.Timing.TickInterval)
	}
	if cfg.Food.ReversalChance != 0.3 {
		t.Errorf("unspecified settings should keep defaults, got reversal chance %g", cfg.Food.ReversalChance)
	}
	if len(cfg.Levels) != 2 {
		t.Errorf("unspecified levels should keep defaults, got %d", len(cfg.Levels))
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		field  string
	}{
		{"tiny board", func(c *SnakeConfig) { c.Board.Size = 3 }, "board.size"},
		{"zero tick", func(c *SnakeConfig) { c.Timing.TickInterval = 0 }, "timing.tick_interval"},
		{"chance above one", func(c *SnakeConfig) { c.Food.ReversalChance = 1.5 }, "food.reversal_chance"},
		{"negative offset", func(c *SnakeConfig) { c.Food.InitialOffset = -1 }, "food.initial_offset"},
		{"negative draws", func(c *SnakeConfig) { c.Food.MaxDraws = -1 }, "food.max_draws"},
		{"no levels", func(c *SnakeConfig) { c.Levels = nil }, "levels"},
		{"duplicate level", func(c *SnakeConfig) { c.Levels[1].ID = 1 }, "levels[1].id"},
		{"full board", func(c *SnakeConfig) { c.Levels[1].MinObstacles = 224 }, "levels[1]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake failed: %v", err)
	}
	if cfg.Board.Size != 12 {
		t.Errorf("board size = %d, expected 12", cfg.Board.Size)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("malformed config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(invalid); err == nil {
		t.Error("invalid config should fail validation")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg.Timing.TickInterval != 150*time.Millisecond {
		t.Errorf("tick interval = %v after round trip", cfg.Timing.TickInterval)
	}
}
