package main

import (
    "bytes"
    "encoding/json"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "maxlen/internal/config"
)

func noConfig(t *testing.T) string {
    t.Helper()
    return filepath.Join(t.TempDir(), "absent.json")
}

func TestCheckOverLimitExitsInvalid(t *testing.T) {
    var out bytes.Buffer
    code := cmdCheck([]string{"--config", noConfig(t), "--max", "5", "--no-color", "Hello", "world"}, nil, &out)
    if code != exitInvalid {
        t.Fatalf("exit = %d, want %d", code, exitInvalid)
    }
    for _, w := range []string{"Hello[ world]", "[Over +6]", "[Count 11/5]"} {
        if !strings.Contains(out.String(), w) {
            t.Fatalf("expected %q in %s", w, out.String())
        }
    }
}

func TestCheckJSONReport(t *testing.T) {
    var out bytes.Buffer
    sauna := "\U0001F9D6\U0001F3FC‍♀️"
    in := strings.NewReader(sauna + sauna + "abc\n")
    code := cmdCheck([]string{"--config", noConfig(t), "--max", "3", "--unit", "utf16", "--json"}, in, &out)
    if code != exitInvalid {
        t.Fatalf("exit = %d", code)
    }
    var r struct {
        Text           string `json:"text"`
        CharacterCount int    `json:"characterCount"`
        OverflowCount  int    `json:"overflowCount"`
        Valid          bool   `json:"valid"`
        Available      int    `json:"available"`
        Unit           string `json:"unit"`
        Length         int    `json:"length"`
        OverflowStart  int    `json:"overflowStart"`
    }
    if err := json.Unmarshal(out.Bytes(), &r); err != nil {
        t.Fatalf("decode: %v\n%s", err, out.String())
    }
    if r.CharacterCount != 5 || r.OverflowCount != 2 || r.Valid || r.Available != -2 {
        t.Fatalf("unexpected counts: %+v", r)
    }
    if r.Unit != "utf16" || r.Length != 17 || r.OverflowStart != 15 {
        t.Fatalf("unexpected offsets: %+v", r)
    }
}

func TestCheckValidExitsOK(t *testing.T) {
    var out bytes.Buffer
    if code := cmdCheck([]string{"--config", noConfig(t), "--max", "10", "--no-color", "short"}, nil, &out); code != exitOK {
        t.Fatalf("exit = %d", code)
    }
}

func TestCheckBadConfig(t *testing.T) {
    p := filepath.Join(t.TempDir(), "bad.json")
    if err := os.WriteFile(p, []byte(`{"maxCharacters": -4}`), 0644); err != nil {
        t.Fatal(err)
    }
    var out bytes.Buffer
    if code := cmdCheck([]string{"--config", p, "x"}, nil, &out); code != exitUsage {
        t.Fatalf("exit = %d, want %d", code, exitUsage)
    }
}

func TestMaxFlagOverridesInvalidEnv(t *testing.T) {
    t.Setenv("MAXLEN_MAX_CHARACTERS", "-1")
    var out bytes.Buffer
    if code := cmdCheck([]string{"--config", noConfig(t), "--max", "5", "--no-color", "x"}, nil, &out); code != exitOK {
        t.Fatalf("exit = %d, want %d: %s", code, exitOK, out.String())
    }
    out.Reset()
    if code := cmdCheck([]string{"--config", noConfig(t), "--no-color", "x"}, nil, &out); code != exitUsage {
        t.Fatalf("exit = %d, want %d", code, exitUsage)
    }
}

func TestTrimWritesFile(t *testing.T) {
    dir := t.TempDir()
    p := filepath.Join(dir, "title.txt")
    family := "\U0001F468‍\U0001F469‍\U0001F467"
    if err := os.WriteFile(p, []byte("ab"+family+"cd\n"), 0644); err != nil {
        t.Fatal(err)
    }
    var out bytes.Buffer
    code := cmdTrim([]string{"--config", noConfig(t), "--max", "3", "--file", p, "--write"}, nil, &out)
    if code != exitOK {
        t.Fatalf("exit = %d", code)
    }
    b, err := os.ReadFile(p)
    if err != nil {
        t.Fatal(err)
    }
    if string(b) != "ab"+family+"\n" {
        t.Fatalf("file = %q", b)
    }
}

func TestTrimPrints(t *testing.T) {
    var out bytes.Buffer
    code := cmdTrim([]string{"--config", noConfig(t), "--max", "5", "Hello", "world"}, nil, &out)
    if code != exitOK || out.String() != "Hello\n" {
        t.Fatalf("exit=%d out=%q", code, out.String())
    }
}

func TestInitDoesNotOverwrite(t *testing.T) {
    p := filepath.Join(t.TempDir(), "maxlen.config.yaml")
    var out bytes.Buffer
    if code := cmdInit([]string{"--config", p}, &out); code != exitOK {
        t.Fatalf("exit = %d", code)
    }
    c, err := config.Load(p)
    if err != nil || c != config.Default() {
        t.Fatalf("written config = %+v, %v", c, err)
    }
    out.Reset()
    cmdInit([]string{"--config", p}, &out)
    if !strings.Contains(out.String(), "already exists") {
        t.Fatalf("second init should not overwrite: %q", out.String())
    }
}

func TestReadTextPrecedence(t *testing.T) {
    got, err := readText("", []string{"a", "b"}, strings.NewReader("stdin"))
    if err != nil || got != "a b" {
        t.Fatalf("args should win over stdin: %q %v", got, err)
    }
    got, _ = readText("", nil, strings.NewReader("line\r\n"))
    if got != "line" {
        t.Fatalf("stdin newline not dropped: %q", got)
    }
}
