package system

// ScoreSystem keeps the running score and the best score of the session.
// Nothing is persisted.
type ScoreSystem struct {
	Score     int
	HighScore int
}

func (s *ScoreSystem) Reset() {
	s.Score = 0
}

func (s *ScoreSystem) Add(delta int) {
	s.Score += delta
}

// Commit records the current score as the session best if it beats it.
func (s *ScoreSystem) Commit() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}
