package playback

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "idle"},
		{Playing, "playing"},
		{Paused, "paused"},
		{Completed, "completed"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_CanPause(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Idle, false},
		{Playing, true},
		{Paused, false},
		{Completed, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanPause(); got != tt.want {
				t.Errorf("CanPause() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanResume(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Idle, false},
		{Playing, false},
		{Paused, true},
		{Completed, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanResume(); got != tt.want {
				t.Errorf("CanResume() = %v, want %v", got, tt.want)
			}
		})
	}
}
