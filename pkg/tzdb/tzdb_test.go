package tzdb

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestSystem_Contains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tz   string
		want bool
	}{
		{name: "utc", tz: "UTC", want: true},
		{name: "region", tz: "Asia/Tokyo", want: true},
		{name: "nested region", tz: "America/Argentina/Buenos_Aires", want: true},
		{name: "unknown", tz: "Europe/Cairo", want: false},
		{name: "garbage", tz: "Invalid", want: false},
		{name: "empty", tz: "", want: false},
		{name: "local", tz: "Local", want: false},
		{name: "padded", tz: " UTC", want: false},
	}
	db := NewSystem()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := db.Contains(tt.tz); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.tz, got, tt.want)
			}
		})
	}
}

func TestSystem_Location(t *testing.T) {
	t.Parallel()

	db := NewSystem()
	first, err := db.Location("Asia/Tokyo")
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	second, err := db.Location("Asia/Tokyo")
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if first != second {
		t.Errorf("Location() returned a different *time.Location on the second call")
	}

	instant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := instant.In(first).Hour(); got != 9 {
		t.Errorf("hour in Asia/Tokyo = %d, want 9", got)
	}

	if _, err := db.Location("Mars/Olympus_Mons"); err == nil {
		t.Errorf("Location() error = nil, want error")
	}
}

func TestSystem_Preload(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name       string
		ctx        context.Context
		names      []string
		wantLoaded int
		wantErr    bool
	}{
		{
			name:       "all valid",
			ctx:        context.Background(),
			names:      []string{"UTC", "Europe/Paris", "Asia/Tokyo", "Australia/Sydney"},
			wantLoaded: 4,
		},
		{
			name:       "empty",
			ctx:        context.Background(),
			names:      nil,
			wantLoaded: 0,
		},
		{
			name:       "invalid names are skipped",
			ctx:        context.Background(),
			names:      []string{"UTC", "Invalid/Zone", "UTC"},
			wantLoaded: 1,
		},
		{
			name:       "cancelled context",
			ctx:        cancelled,
			names:      []string{"UTC", "Asia/Tokyo"},
			wantLoaded: 0,
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			db := NewSystem()
			if err := db.Preload(tt.ctx, tt.names); (err != nil) != tt.wantErr {
				t.Errorf("Preload() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := db.Loaded(); got != tt.wantLoaded {
				t.Errorf("Loaded() = %d, want %d", got, tt.wantLoaded)
			}
		})
	}
}

func TestFake(t *testing.T) {
	t.Parallel()

	db := NewFake(map[string]int{"Test/Plus9": 9 * 60 * 60, "Test/Broken": 0})
	db.Break("Test/Broken")

	if !db.Contains("Test/Plus9") {
		t.Errorf("Contains(Test/Plus9) = false, want true")
	}
	if db.Contains("Test/Missing") {
		t.Errorf("Contains(Test/Missing) = true, want false")
	}
	if !db.Contains("Test/Broken") {
		t.Errorf("Contains(Test/Broken) = false, want true")
	}
	if _, err := db.Location("Test/Broken"); err == nil {
		t.Errorf("Location(Test/Broken) error = nil, want error")
	}

	loc, err := db.Location("Test/Plus9")
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if got := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).In(loc).Hour(); got != 9 {
		t.Errorf("hour = %d, want 9", got)
	}
}
