package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/k-yomo/analog-world-clock/tzset"
)

func Test_loadConfig(t *testing.T) {
	t.Parallel()

	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		want    *fileConfig
		wantErr bool
	}{
		{
			name: "no file uses defaults",
			path: func(t *testing.T) string { return "" },
			want: defaultFileConfig(),
		},
		{
			name: "file overrides only the fields it sets",
			path: func(t *testing.T) string {
				return writeFile(t, `
timezones:
  - Asia/Tokyo
  - Europe/Paris
count: 2
interval: 2s
output: /tmp/world.svg
`)
			},
			want: &fileConfig{
				Timezones:       []string{"Asia/Tokyo", "Europe/Paris"},
				BackupTimezones: tzset.DefaultBackups,
				Count:           2,
				Diameter:        150,
				Columns:         6,
				Interval:        2 * time.Second,
				Output:          "/tmp/world.svg",
				Title:           defaultTitle,
			},
		},
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") },
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			path:    func(t *testing.T) string { return writeFile(t, "count: [") },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := loadConfig(tt.path(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("loadConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
