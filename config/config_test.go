package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Petals.Count != 10000 {
		t.Errorf("expected 10000 petals, got %d", cfg.Petals.Count)
	}
	if cfg.Petals.Radius != 2.5 {
		t.Errorf("expected petal radius 2.5, got %g", cfg.Petals.Radius)
	}
	if cfg.Petals.ColorStart != [3]float64{1.0, 0.7, 0.8} {
		t.Errorf("unexpected color_start %v", cfg.Petals.ColorStart)
	}
	if cfg.Scene.TrunkColor != (HexColor{R: 0xcc, G: 0x33, B: 0x66}) {
		t.Errorf("unexpected trunk color %s", cfg.Scene.TrunkColor)
	}
	if !cfg.Orbit.AutoRotate || cfg.Orbit.EnablePan || cfg.Orbit.EnableZoom {
		t.Errorf("unexpected orbit flags %+v", cfg.Orbit)
	}
	if cfg.Orbit.Target != [3]float64{0, 3, 0} {
		t.Errorf("unexpected orbit target %v", cfg.Orbit.Target)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	wantAspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	if cfg.Derived.Aspect != wantAspect {
		t.Errorf("expected aspect %f, got %f", wantAspect, cfg.Derived.Aspect)
	}
	if cfg.Derived.FovRadians < 1.047 || cfg.Derived.FovRadians > 1.048 {
		t.Errorf("expected 60 degrees in radians, got %f", cfg.Derived.FovRadians)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := "petals:\n  count: 500\n  area_uniform: true\nscene:\n  trunk_color: \"#102030\"\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load overlay: %v", err)
	}
	if cfg.Petals.Count != 500 {
		t.Errorf("expected overlay count 500, got %d", cfg.Petals.Count)
	}
	if !cfg.Petals.AreaUniform {
		t.Error("expected area_uniform from overlay")
	}
	// Untouched fields keep their defaults
	if cfg.Petals.Radius != 2.5 {
		t.Errorf("expected default radius to survive overlay, got %g", cfg.Petals.Radius)
	}
	if cfg.Scene.TrunkColor.String() != "#102030" {
		t.Errorf("expected overlay trunk color, got %s", cfg.Scene.TrunkColor)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero count": "petals:\n  count: 0\n",
		"bad bloom":  "petals:\n  bloom_start: 0.9\n  bloom_end: 0.5\n",
		"bad color":  "scene:\n  background: \"#12\"\n",
		"bad clip":   "camera:\n  near: 5\n  far: 1\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot: %v", err)
	}
	if back.Scene.TrunkColor != cfg.Scene.TrunkColor || back.Petals.Count != cfg.Petals.Count {
		t.Error("snapshot did not reload to the same values")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ffddee")
	if err != nil {
		t.Fatal(err)
	}
	if c != (HexColor{R: 0xff, G: 0xdd, B: 0xee}) {
		t.Errorf("got %+v", c)
	}
	f := c.Floats()
	if f[0] != 1 {
		t.Errorf("expected red 1.0, got %f", f[0])
	}
	if _, err := ParseHexColor("zzzzzz"); err == nil {
		t.Error("expected error for non-hex input")
	}
}
