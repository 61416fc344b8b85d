package snake

import "github.com/charmbracelet/log"

// ScoreStore persists the best score.
type ScoreStore interface {
	// HighScore returns the stored score and whether one exists.
	HighScore() (int, bool, error)
	// SaveHighScore stores score if it beats the stored one.
	SaveHighScore(score int) error
}

// HighScoreKeeper tracks the best score of the session. It reads the store
// once and writes to it only when a game ends with a new best. Storage
// errors are logged and otherwise ignored.
type HighScoreKeeper struct {
	store  ScoreStore
	logger *log.Logger
	best   int
}

// NewHighScoreKeeper loads the stored high score. store may be nil, in which
// case scores are kept in memory only.
func NewHighScoreKeeper(store ScoreStore, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	k := &HighScoreKeeper{store: store, logger: logger}
	if store == nil {
		return k
	}

	score, ok, err := store.HighScore()
	switch {
	case err != nil:
		logger.Warn("could not read high score", "err", err)
	case ok && score > 0:
		k.best = score
	}
	return k
}

// Best returns the highest score seen so far.
func (k *HighScoreKeeper) Best() int {
	return k.best
}

// Record offers a final score. It returns true when the score is a new best.
func (k *HighScoreKeeper) Record(score int) bool {
	if score <= k.best {
		return false
	}
	k.best = score
	if k.store != nil {
		if err := k.store.SaveHighScore(score); err != nil {
			k.logger.Warn("could not save high score", "score", score, "err", err)
		}
	}
	return true
}
