package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedPlayerSpec(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}

	if spec.Gravity != 500 || spec.RunSpeed != 100 || spec.JumpImpulse != 260 {
		t.Errorf("unexpected tuning %+v", spec)
	}
	if spec.MaxFallSpeed != 0 || spec.GroundProbe != 1 {
		t.Errorf("unexpected fall tuning %+v", spec)
	}
	if spec.Spawn.X != 60 || spec.Spawn.Y != 250 {
		t.Errorf("unexpected spawn %+v", spec.Spawn)
	}
	if spec.Collider.Width != 32 || spec.Collider.Height != 32 {
		t.Errorf("unexpected collider %+v", spec.Collider)
	}

	wantNames := []string{"walk", "idle", "jump"}
	if len(spec.Animation.Defs) != len(wantNames) {
		t.Fatalf("expected %d animations, got %d", len(wantNames), len(spec.Animation.Defs))
	}
	for i, name := range wantNames {
		if spec.Animation.Defs[i].Name != name {
			t.Errorf("animation %d = %s, want %s", i, spec.Animation.Defs[i].Name, name)
		}
	}
	if walk := spec.Animation.Defs[0]; walk.FrameCount != 2 || walk.FPS != 4 {
		t.Errorf("unexpected walk animation %+v", walk)
	}
}

func TestDiskPrefabOverridesEmbedded(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	data, err := PrefabsFS.ReadFile(PlayerFile)
	if err != nil {
		t.Fatalf("read embedded: %v", err)
	}
	patched := strings.Replace(string(data), "run_speed: 100", "run_speed: 150", 1)
	if err := os.WriteFile(filepath.Join(Dir, PlayerFile), []byte(patched), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.RunSpeed != 150 {
		t.Fatalf("expected disk override run_speed 150, got %v", spec.RunSpeed)
	}
	if _, ok := ModTime(PlayerFile); !ok {
		t.Fatalf("expected ModTime to find the disk prefab")
	}
}

func TestParsePlayerSpecValidation(t *testing.T) {
	base := `
gravity: 500
run_speed: 100
jump_impulse: 260
collider: {width: 32, height: 32}
animation:
  frame_w: 32
  frame_h: 32
  defs:
    - {name: walk, frame_count: 2, fps: 4}
`
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"valid", base, ""},
		{"negative gravity", strings.Replace(base, "gravity: 500", "gravity: -1", 1), "gravity"},
		{"zero collider", strings.Replace(base, "width: 32", "width: 0", 1), "collider"},
		{"zero fps", strings.Replace(base, "fps: 4", "fps: 0", 1), "fps"},
		{"zero frames", strings.Replace(base, "frame_count: 2", "frame_count: 0", 1), "frame_count"},
		{"misspelled animation name", strings.Replace(base, "name: walk", "name: wlak", 1), `unknown name "wlak"`},
		{"bad yaml", "gravity: [", "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlayerSpec([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, PlayerFile)
	if err := os.WriteFile(target, []byte("name: dave\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != PlayerFile {
			t.Fatalf("unexpected event for %s", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", target)
	}
}
