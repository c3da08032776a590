package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strconv"
    "strings"

    "gopkg.in/yaml.v3"

    "maxlen/internal/grapheme"
    "maxlen/internal/overflow"
)

// DefaultPath is read by the CLI when --config is not given.
const DefaultPath = "maxlen.config.json"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config mirrors the field options. Zero values are filled from Default().
type Config struct {
    MaxCharacters         int    `json:"maxCharacters" yaml:"maxCharacters"`
    OverflowForeground    string `json:"overflowForeground,omitempty" yaml:"overflowForeground,omitempty"`
    OverflowBackground    string `json:"overflowBackground,omitempty" yaml:"overflowBackground,omitempty"`
    UnderlineOverflow     bool   `json:"underlineOverflow,omitempty" yaml:"underlineOverflow,omitempty"`
    AccessibilityOverride bool   `json:"accessibilityOverride,omitempty" yaml:"accessibilityOverride,omitempty"`
    Unit                  string `json:"unit,omitempty" yaml:"unit,omitempty"` // byte | rune | utf16
    Prompt                string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
    Placeholder           string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

func Default() Config {
    st := overflow.DefaultStyleConfig()
    return Config{
        MaxCharacters:      overflow.DefaultMaxCharacters,
        OverflowBackground: string(st.OverflowBackground),
        Unit:               grapheme.UnitByte.String(),
        Prompt:             "> ",
        Placeholder:        "type here",
    }
}

// Load reads a JSON config, or YAML when path ends in .yaml/.yml. Missing
// fields keep their defaults.
func Load(path string) (Config, error) {
    c := Default()
    data, err := os.ReadFile(path)
    if err != nil {
        return c, fmt.Errorf("read config: %w", err)
    }
    if isYAML(path) {
        if err := yaml.Unmarshal(data, &c); err != nil {
            return c, fmt.Errorf("parse config YAML: %w", err)
        }
    } else if err := json.Unmarshal(data, &c); err != nil {
        return c, fmt.Errorf("parse config JSON: %w", err)
    }
    return c, c.Validate()
}

// LoadOrDefault is Load, except a missing file yields Default().
func LoadOrDefault(path string) (Config, error) {
    c, err := Load(path)
    if errors.Is(err, os.ErrNotExist) {
        return Default(), nil
    }
    return c, err
}

func Save(path string, c Config) error {
    var (
        data []byte
        err  error
    )
    if isYAML(path) {
        data, err = yaml.Marshal(c)
    } else {
        data, err = json.MarshalIndent(c, "", "  ")
    }
    if err != nil {
        return err
    }
    return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays MAXLEN_* variables. NO_COLOR turns on the
// accessibility override, the terminal's "differentiate without color".
// The result is not validated; flags may still override it.
func ApplyEnv(c *Config) error {
    if v := strings.TrimSpace(os.Getenv("MAXLEN_MAX_CHARACTERS")); v != "" {
        n, err := strconv.Atoi(v)
        if err != nil {
            return fmt.Errorf("MAXLEN_MAX_CHARACTERS: %w", err)
        }
        c.MaxCharacters = n
    }
    if v := strings.TrimSpace(os.Getenv("MAXLEN_UNDERLINE")); v != "" {
        b, err := strconv.ParseBool(v)
        if err != nil {
            return fmt.Errorf("MAXLEN_UNDERLINE: %w", err)
        }
        c.UnderlineOverflow = b
    }
    if v := os.Getenv("MAXLEN_OVERFLOW_FG"); v != "" {
        c.OverflowForeground = v
    }
    if v := os.Getenv("MAXLEN_OVERFLOW_BG"); v != "" {
        c.OverflowBackground = v
    }
    if v := os.Getenv("MAXLEN_UNIT"); v != "" {
        c.Unit = v
    }
    if os.Getenv("NO_COLOR") != "" {
        c.AccessibilityOverride = true
    }
    return nil
}

func (c Config) Validate() error {
    if c.MaxCharacters < 0 {
        return fmt.Errorf("%w: maxCharacters must be >= 0, got %d", ErrInvalid, c.MaxCharacters)
    }
    if _, err := grapheme.ParseUnit(c.Unit); err != nil {
        return fmt.Errorf("%w: %v", ErrInvalid, err)
    }
    return nil
}

// StyleConfig converts the highlight options for overflow.Styler.
func (c Config) StyleConfig() overflow.StyleConfig {
    return overflow.StyleConfig{
        OverflowForeground:    overflow.Color(c.OverflowForeground),
        OverflowBackground:    overflow.Color(c.OverflowBackground),
        UnderlineOverflow:     c.UnderlineOverflow,
        AccessibilityOverride: c.AccessibilityOverride,
    }
}

// StorageUnit returns the parsed Unit; Validate has already rejected bad values.
func (c Config) StorageUnit() grapheme.Unit {
    u, _ := grapheme.ParseUnit(c.Unit)
    return u
}

func isYAML(path string) bool {
    switch strings.ToLower(filepath.Ext(path)) {
    case ".yaml", ".yml":
        return true
    }
    return false
}
