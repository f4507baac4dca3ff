package kids

import "testing"

func TestMentorshipAdvance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current MentorshipState
		target  MentorshipState
		want    MentorshipState
	}{
		{
			name:    "not_enough_pointsからuninitializedへ前進できる",
			current: MentorshipNotEnoughPoints,
			target:  MentorshipUninitialized,
			want:    MentorshipUninitialized,
		},
		{
			name:    "uninitializedからwaitingへ前進できる",
			current: MentorshipUninitialized,
			target:  MentorshipWaiting,
			want:    MentorshipWaiting,
		},
		{
			name:    "同一状態への遷移は現状維持",
			current: MentorshipWaiting,
			target:  MentorshipWaiting,
			want:    MentorshipWaiting,
		},
		{
			name:    "後退する遷移は無視される",
			current: MentorshipWaiting,
			target:  MentorshipNotEnoughPoints,
			want:    MentorshipWaiting,
		},
		{
			name:    "mentoredからはどこへも戻らない",
			current: MentorshipMentored,
			target:  MentorshipUninitialized,
			want:    MentorshipMentored,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.current.Advance(tt.target); got != tt.want {
				t.Errorf("Advance(%s)が不正: current=%s, got=%s, want=%s", tt.target, tt.current, got, tt.want)
			}
		})
	}
}

func TestMentorshipAfterPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current MentorshipState
		points  int64
		want    MentorshipState
	}{
		{
			name:    "閾値未満では変化しない",
			current: MentorshipNotEnoughPoints,
			points:  999,
			want:    MentorshipNotEnoughPoints,
		},
		{
			name:    "閾値ちょうどでuninitializedへ前進する",
			current: MentorshipNotEnoughPoints,
			points:  1000,
			want:    MentorshipUninitialized,
		},
		{
			name:    "閾値超過でもuninitializedへ前進する",
			current: MentorshipNotEnoughPoints,
			points:  5000,
			want:    MentorshipUninitialized,
		},
		{
			name:    "waitingは残高が減っても維持される",
			current: MentorshipWaiting,
			points:  0,
			want:    MentorshipWaiting,
		},
		{
			name:    "uninitializedは残高が減っても維持される",
			current: MentorshipUninitialized,
			points:  10,
			want:    MentorshipUninitialized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := mentorshipAfterPoints(tt.current, tt.points); got != tt.want {
				t.Errorf("mentorshipAfterPoints(%s, %d)が不正: got=%s, want=%s", tt.current, tt.points, got, tt.want)
			}
		})
	}
}
