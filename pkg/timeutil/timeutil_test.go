package timeutil

import (
	"testing"
	"time"
)

func TestDialHour(t *testing.T) {
	t.Parallel()

	type args struct {
		t time.Time
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			name: "midnight is 0",
			args: args{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			want: 0,
		},
		{
			name: "noon is 0",
			args: args{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
			want: 0,
		},
		{
			name: "afternoon wraps",
			args: args{t: time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)},
			want: 3,
		},
		{
			name: "late evening",
			args: args{t: time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)},
			want: 11,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DialHour(tt.args.t); got != tt.want {
				t.Errorf("DialHour() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayouts(t *testing.T) {
	t.Parallel()

	tm := time.Date(2024, 3, 9, 7, 5, 3, 0, time.UTC)
	if got, want := tm.Format(WallClockLayout), "07:05:03"; got != want {
		t.Errorf("Format(WallClockLayout) = %v, want %v", got, want)
	}
	if got, want := tm.Format(MonthDayLayout), "03/09"; got != want {
		t.Errorf("Format(MonthDayLayout) = %v, want %v", got, want)
	}
}
