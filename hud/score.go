package hud

import "fmt"

// ScoreTracker keeps a running integer score and mirrors it into a text
// element as "Score: <n>". The display is updated synchronously on every
// mutation, so the rendered text never lags the stored value.
type ScoreTracker struct {
	*TextDisplay

	score   int
	initial int
}

// NewScoreTracker binds id in doc and renders the initial score
// immediately.
func NewScoreTracker(doc Document, id string, initial int) (*ScoreTracker, error) {
	d, err := NewTextDisplay(doc, id)
	if err != nil {
		return nil, err
	}
	s := &ScoreTracker{
		TextDisplay: d,
		score:       initial,
		initial:     initial,
	}
	s.render()
	return s, nil
}

// Add applies delta to the score. Negative deltas are allowed; the score
// may go below zero.
func (s *ScoreTracker) Add(delta int) {
	s.score += delta
	s.render()
}

// Reset restores the score to the value the tracker was constructed with.
func (s *ScoreTracker) Reset() {
	s.score = s.initial
	s.render()
}

// Score returns the current score.
func (s *ScoreTracker) Score() int { return s.score }

func (s *ScoreTracker) render() {
	s.SetText(fmt.Sprintf("Score: %d", s.score))
}
