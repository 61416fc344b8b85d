package storage

// Backend is a high score store the game can run against.
type Backend interface {
	HighScore() (int, bool, error)
	HighScoreEntry() (*HighScoreEntry, error)
	SaveHighScore(score int) error
	Reset() error
	Close() error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*Memory)(nil)
)
