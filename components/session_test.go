package components

import "testing"

func TestSessionAccuracy(t *testing.T) {
	tests := []struct {
		name   string
		pets   int
		misses int
		want   int
	}{
		{"no clicks", 0, 0, 100},
		{"all hits", 5, 0, 100},
		{"all misses", 0, 4, 0},
		{"half", 3, 3, 50},
		{"rounds down", 2, 1, 66},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &SessionData{}
			for i := 0; i < tt.pets; i++ {
				s.RecordPet()
			}
			for i := 0; i < tt.misses; i++ {
				s.RecordMiss()
			}
			if got := s.Accuracy(); got != tt.want {
				t.Errorf("Accuracy() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSessionClearCounters(t *testing.T) {
	s := &SessionData{Pets: 7, Misses: 2, SpawnTimer: 13}
	s.ClearCounters()
	if s.Pets != 0 || s.Misses != 0 || s.SpawnTimer != 0 {
		t.Errorf("ClearCounters left %+v", s)
	}
}
