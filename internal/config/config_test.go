package config

import (
    "errors"
    "os"
    "path/filepath"
    "testing"

    "maxlen/internal/grapheme"
)

func TestLoadJSONKeepsDefaults(t *testing.T) {
    p := filepath.Join(t.TempDir(), "field.json")
    if err := os.WriteFile(p, []byte(`{"maxCharacters": 6, "underlineOverflow": true}`), 0644); err != nil {
        t.Fatal(err)
    }
    c, err := Load(p)
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if c.MaxCharacters != 6 || !c.UnderlineOverflow {
        t.Fatalf("unexpected config: %+v", c)
    }
    if c.OverflowBackground == "" || c.Prompt == "" {
        t.Fatalf("defaults should survive partial files: %+v", c)
    }
}

func TestSaveLoadYAML(t *testing.T) {
    p := filepath.Join(t.TempDir(), "field.yaml")
    in := Default()
    in.MaxCharacters = 12
    in.Unit = "utf16"
    in.OverflowForeground = "#FFFFFF"
    if err := Save(p, in); err != nil {
        t.Fatalf("save: %v", err)
    }
    out, err := Load(p)
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if out != in {
        t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
    }
    if out.StorageUnit() != grapheme.UnitUTF16 {
        t.Fatalf("unit = %v", out.StorageUnit())
    }
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
    c, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.json"))
    if err != nil {
        t.Fatalf("missing file should not error: %v", err)
    }
    if c != Default() {
        t.Fatalf("expected defaults, got %+v", c)
    }
}

func TestValidate(t *testing.T) {
    c := Default()
    c.MaxCharacters = -1
    if err := c.Validate(); !errors.Is(err, ErrInvalid) {
        t.Fatalf("expected ErrInvalid, got %v", err)
    }
    c = Default()
    c.Unit = "words"
    if err := c.Validate(); !errors.Is(err, ErrInvalid) {
        t.Fatalf("expected ErrInvalid for unit, got %v", err)
    }
}

func TestApplyEnv(t *testing.T) {
    t.Setenv("MAXLEN_MAX_CHARACTERS", "7")
    t.Setenv("MAXLEN_UNDERLINE", "true")
    t.Setenv("MAXLEN_OVERFLOW_BG", "52")
    t.Setenv("MAXLEN_UNIT", "rune")
    t.Setenv("NO_COLOR", "1")
    c := Default()
    if err := ApplyEnv(&c); err != nil {
        t.Fatalf("apply env: %v", err)
    }
    if c.MaxCharacters != 7 || !c.UnderlineOverflow || c.OverflowBackground != "52" || c.Unit != "rune" {
        t.Fatalf("env not applied: %+v", c)
    }
    if !c.AccessibilityOverride {
        t.Fatalf("NO_COLOR should force the accessibility override")
    }
    st := c.StyleConfig()
    if !st.AccessibilityOverride || st.OverflowBackground != "52" {
        t.Fatalf("style config mismatch: %+v", st)
    }
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
    t.Setenv("MAXLEN_MAX_CHARACTERS", "lots")
    c := Default()
    if err := ApplyEnv(&c); err == nil {
        t.Fatalf("expected parse error")
    }
}

func TestApplyEnvLeavesValidationToCaller(t *testing.T) {
    t.Setenv("MAXLEN_MAX_CHARACTERS", "-1")
    c := Default()
    if err := ApplyEnv(&c); err != nil {
        t.Fatalf("apply env: %v", err)
    }
    if c.MaxCharacters != -1 {
        t.Fatalf("env not applied: %+v", c)
    }
    if err := c.Validate(); !errors.Is(err, ErrInvalid) {
        t.Fatalf("expected ErrInvalid, got %v", err)
    }
}
