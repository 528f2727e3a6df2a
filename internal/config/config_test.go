package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dtwm.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := writeTemp(t, "mfact: 0.6\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MFact != 0.6 {
		t.Fatalf("expected mfact 0.6, got %v", cfg.MFact)
	}
	if len(cfg.Tags) == 0 {
		t.Fatalf("expected default tags to survive a partial file")
	}
	if cfg.NMaster != Default().NMaster {
		t.Fatalf("expected default nmaster preserved")
	}
}

func TestValidateRejectsOutOfRangeMFact(t *testing.T) {
	cfg := Default()
	cfg.MFact = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected mfact out of (0,1) to be rejected")
	}
}

func TestValidateRejectsTooManyTags(t *testing.T) {
	cfg := Default()
	cfg.Tags = make([]string, 40)
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected too many tags to be rejected")
	}
}

func TestBuildLayoutsRejectsUnknownName(t *testing.T) {
	cfg := Default()
	cfg.Layouts = []string{"tile", "bogus"}
	if _, err := cfg.BuildLayouts(); err == nil {
		t.Fatalf("expected unknown layout name to error")
	}
}

func TestBuildKeysResolvesComboAndAction(t *testing.T) {
	cfg := Default()
	cfg.Keys = []KeySpec{{Combo: "mod+j", Action: "focusstack", Arg: "next"}}
	keys, err := cfg.BuildKeys(DefaultRegistry())
	if err != nil {
		t.Fatalf("BuildKeys: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("expected 1 key binding, got %d", len(keys))
	}
	if keys[0].ActionName != "focusstack" {
		t.Fatalf("expected action name recorded")
	}
}

func TestBuildKeysRejectsUnknownAction(t *testing.T) {
	cfg := Default()
	cfg.Keys = []KeySpec{{Combo: "mod+j", Action: "not-a-real-action"}}
	if _, err := cfg.BuildKeys(DefaultRegistry()); err == nil {
		t.Fatalf("expected unknown action to error")
	}
}

func TestTagsMask(t *testing.T) {
	if got := TagsMask([]int{1, 3}); got != 0b101 {
		t.Fatalf("expected mask 0b101, got %b", got)
	}
}
