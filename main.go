// Copyright
// SPDX-License-Identifier: MIT
// maxlen: length-limited text field with grapheme-accurate counting and overflow highlighting
package main

import (
    "encoding/json"
    "errors"
    "flag"
    "fmt"
    "io"
    "log/slog"
    "os"
    "strings"

    "maxlen/internal/config"
    "maxlen/internal/grapheme"
    "maxlen/internal/logging"
    "maxlen/internal/overflow"
    appTUI "maxlen/internal/tui"
    "maxlen/internal/tui/util"
    "maxlen/internal/tui/views/summary"
)

var Version = "0.1.0"

const (
    exitOK      = 0
    exitInvalid = 1 // text over the limit, or editor cancelled
    exitUsage   = 2
)

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    args := os.Args[2:]
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(args) > 0 {
            helpTopic(args[0])
        } else {
            usage()
        }
    case "version", "--version":
        fmt.Println("maxlen", Version)
    case "init":
        os.Exit(cmdInit(args, os.Stdout))
    case "check":
        os.Exit(cmdCheck(args, os.Stdin, os.Stdout))
    case "trim":
        os.Exit(cmdTrim(args, os.Stdin, os.Stdout))
    case "edit":
        os.Exit(cmdEdit(args, os.Stdin, os.Stdout))
    default:
        usage()
        os.Exit(exitUsage)
    }
}

func usage() {
    fmt.Println(`maxlen ` + Version + `
Count text in user-perceived characters and highlight what runs past a limit.
USAGE
  maxlen <command> [options] [TEXT...]
COMMANDS
  init         Write maxlen.config.json with defaults (never overwrites)
  check        Print counts, validity and the overflow highlight; exit 1 when over the limit
  trim         Print the text cut to the limit
  edit         Interactive field with live overflow highlighting
  help         Show help (try: maxlen help check)
  version      Print version
NOTES
  • TEXT is taken from --file, then the arguments, then stdin.
  • Environment: MAXLEN_MAX_CHARACTERS, MAXLEN_UNDERLINE, MAXLEN_OVERFLOW_FG, MAXLEN_OVERFLOW_BG,
    MAXLEN_UNIT. NO_COLOR disables color and marks overflow without it.
  • Use -v or -vv for INFO/DEBUG logs on stderr; --log-file appends them to a file instead.
`)
}

func helpTopic(name string) {
    switch name {
    case "check":
        fmt.Print(`USAGE
  maxlen check [--config PATH] [--max N] [--unit byte|rune|utf16] [--file PATH] [--json]
               [--no-color] [-v | -vv] [--log-file PATH] [TEXT...]
DESCRIPTION
  Counts grapheme clusters, so an emoji sequence or an accented letter is one character.
  Characters past --max are highlighted, never removed. With --json a report is printed
  with the counts and the overflow offset in --unit.
EXIT STATUS
  0 within the limit, 1 over the limit, 2 usage or config error.
`, "\n")
    case "trim":
        fmt.Print(`USAGE
  maxlen trim [--config PATH] [--max N] [--file PATH] [--write] [TEXT...]
DESCRIPTION
  Prints the first --max characters. Clusters are never split. With --write and --file
  the file is rewritten in place.
`, "\n")
    case "edit":
        fmt.Print(`USAGE
  maxlen edit [--config PATH] [--max N] [--unit U] [--file PATH] [--trim] [--no-color]
              [-v | -vv] [--log-file PATH] [TEXT...]
DESCRIPTION
  Opens an interactive field seeded with TEXT. Typing past the limit is allowed and
  highlighted. Press ? for keys. Enter prints the value (cut to the limit with --trim);
  Ctrl-C cancels with exit status 1.
`, "\n")
    default:
        usage()
    }
}

/* ---------- shared flags ---------- */

type commonFlags struct {
    configPath string
    max        int
    unit       string
    file       string
    noColor    bool
    verbose    bool
    debug      bool
    logPath    string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
    fs.StringVar(&c.configPath, "config", config.DefaultPath, "Config file (JSON, or YAML by extension)")
    fs.IntVar(&c.max, "max", -1, "Maximum characters (overrides config)")
    fs.StringVar(&c.unit, "unit", "", "Offset unit for reports: byte|rune|utf16 (overrides config)")
    fs.StringVar(&c.file, "file", "", "Read text from file")
    fs.BoolVar(&c.noColor, "no-color", false, "Disable color; mark overflow without it")
    fs.BoolVar(&c.verbose, "v", false, "Verbose logs (INFO)")
    fs.BoolVar(&c.debug, "vv", false, "Debug logs (DEBUG)")
    fs.StringVar(&c.logPath, "log-file", "", "Append logs to file (created if missing)")
}

func (c *commonFlags) verbosity() int {
    switch {
    case c.debug:
        return 2
    case c.verbose:
        return 1
    }
    return 0
}

// loadConfig layers defaults, the config file, MAXLEN_* and flags.
func (c *commonFlags) loadConfig() (config.Config, error) {
    cfg, err := config.LoadOrDefault(c.configPath)
    if err != nil {
        return cfg, err
    }
    if err := config.ApplyEnv(&cfg); err != nil {
        return cfg, err
    }
    if c.max >= 0 {
        cfg.MaxCharacters = c.max
    }
    if c.unit != "" {
        cfg.Unit = c.unit
    }
    if c.noColor {
        cfg.AccessibilityOverride = true
    }
    return cfg, cfg.Validate()
}

func (c *commonFlags) logger(stderr io.Writer) (*slog.Logger, io.Closer, error) {
    return logging.New(logging.Options{Verbosity: c.verbosity(), File: c.logPath, Writer: stderr})
}

// readText takes --file, then the arguments joined by spaces, then stdin.
// A single trailing newline is dropped from file and stdin input.
func readText(file string, args []string, stdin io.Reader) (string, error) {
    if file != "" {
        b, err := os.ReadFile(file)
        if err != nil {
            return "", fmt.Errorf("read text: %w", err)
        }
        return chompNewline(string(b)), nil
    }
    if len(args) > 0 {
        return strings.Join(args, " "), nil
    }
    if stdin == nil {
        return "", nil
    }
    b, err := io.ReadAll(stdin)
    if err != nil {
        return "", fmt.Errorf("read stdin: %w", err)
    }
    return chompNewline(string(b)), nil
}

func chompNewline(s string) string {
    s = strings.TrimSuffix(s, "\n")
    return strings.TrimSuffix(s, "\r")
}

func fail(err error) int {
    fmt.Fprintln(os.Stderr, "maxlen:", err)
    return exitUsage
}

/* ---------- commands ---------- */

func cmdInit(args []string, stdout io.Writer) int {
    fs := flag.NewFlagSet("init", flag.ContinueOnError)
    path := fs.String("config", config.DefaultPath, "Config file to write")
    if err := fs.Parse(args); err != nil {
        return exitUsage
    }
    if _, err := os.Stat(*path); errors.Is(err, os.ErrNotExist) {
        if err := config.Save(*path, config.Default()); err != nil {
            return fail(err)
        }
        fmt.Fprintln(stdout, "Wrote", *path)
    } else {
        fmt.Fprintln(stdout, *path, "already exists; not overwriting")
    }
    return exitOK
}

// report is the --json output of check.
type report struct {
    overflow.TextState
    Available     int    `json:"available"`
    Unit          string `json:"unit"`
    Length        int    `json:"length"`
    OverflowStart int    `json:"overflowStart"` // equals length when valid
}

func newReport(st overflow.TextState, unit grapheme.Unit) report {
    return report{
        TextState:     st,
        Available:     st.Available(),
        Unit:          unit.String(),
        Length:        grapheme.Length(st.Text, unit),
        OverflowStart: grapheme.BoundaryOffset(st.Text, st.MaxCharacters, unit),
    }
}

func cmdCheck(args []string, stdin io.Reader, stdout io.Writer) int {
    fs := flag.NewFlagSet("check", flag.ContinueOnError)
    fs.Usage = func() { helpTopic("check") }
    var cf commonFlags
    cf.register(fs)
    asJSON := fs.Bool("json", false, "Print a JSON report")
    if err := fs.Parse(args); err != nil {
        return exitUsage
    }
    log, closer, err := cf.logger(os.Stderr)
    if err != nil {
        return fail(err)
    }
    defer closer.Close()

    cfg, err := cf.loadConfig()
    if err != nil {
        return fail(err)
    }
    text, err := readText(cf.file, fs.Args(), stdin)
    if err != nil {
        return fail(err)
    }
    log.Debug("config", "max", cfg.MaxCharacters, "unit", cfg.Unit, "path", cf.configPath)

    s := overflow.New(
        overflow.WithMaxCharacters(cfg.MaxCharacters),
        overflow.WithStyle(cfg.StyleConfig()),
        overflow.WithUnit(cfg.StorageUnit()),
        overflow.WithAccessibility(util.AccessibilitySource(cf.noColor)),
        overflow.WithLogger(log),
    )
    s.SetText(text)
    st := s.State()
    log.Info("checked", "count", st.CharacterCount, "max", st.MaxCharacters, "valid", st.Valid)

    if *asJSON {
        enc := json.NewEncoder(stdout)
        enc.SetIndent("", "  ")
        if err := enc.Encode(newReport(st, cfg.StorageUnit())); err != nil {
            return fail(err)
        }
    } else {
        fmt.Fprint(stdout, summary.Render(st, s.Styled(), util.NoColor(cf.noColor)))
    }
    if !st.Valid {
        return exitInvalid
    }
    return exitOK
}

func cmdTrim(args []string, stdin io.Reader, stdout io.Writer) int {
    fs := flag.NewFlagSet("trim", flag.ContinueOnError)
    fs.Usage = func() { helpTopic("trim") }
    var cf commonFlags
    cf.register(fs)
    write := fs.Bool("write", false, "Rewrite --file in place")
    if err := fs.Parse(args); err != nil {
        return exitUsage
    }
    log, closer, err := cf.logger(os.Stderr)
    if err != nil {
        return fail(err)
    }
    defer closer.Close()

    cfg, err := cf.loadConfig()
    if err != nil {
        return fail(err)
    }
    text, err := readText(cf.file, fs.Args(), stdin)
    if err != nil {
        return fail(err)
    }
    s := overflow.New(overflow.WithMaxCharacters(cfg.MaxCharacters), overflow.WithLogger(log))
    s.SetText(text)
    dropped := s.OverflowCharacterCount()
    s.TrimToMaxLength()
    log.Info("trimmed", "dropped", dropped, "max", cfg.MaxCharacters)

    if *write && cf.file != "" {
        if err := os.WriteFile(cf.file, []byte(s.Text()+"\n"), 0644); err != nil {
            return fail(err)
        }
        return exitOK
    }
    fmt.Fprintln(stdout, s.Text())
    return exitOK
}

func cmdEdit(args []string, stdin io.Reader, stdout io.Writer) int {
    fs := flag.NewFlagSet("edit", flag.ContinueOnError)
    fs.Usage = func() { helpTopic("edit") }
    var cf commonFlags
    cf.register(fs)
    trim := fs.Bool("trim", false, "Cut the accepted value to the limit")
    if err := fs.Parse(args); err != nil {
        return exitUsage
    }

    // The editor owns the terminal: log to --log-file or nowhere.
    log := logging.Discard()
    if cf.logPath != "" {
        l, closer, err := cf.logger(nil)
        if err != nil {
            return fail(err)
        }
        defer closer.Close()
        log = l
    }

    cfg, err := cf.loadConfig()
    if err != nil {
        return fail(err)
    }
    var initial string
    if cf.file != "" || len(fs.Args()) > 0 {
        if initial, err = readText(cf.file, fs.Args(), stdin); err != nil {
            return fail(err)
        }
    }

    res, err := appTUI.Run(cfg, initial, cf.noColor, log)
    if err != nil {
        return fail(err)
    }
    if res.Cancelled {
        fmt.Fprintln(os.Stderr, "cancelled")
        return exitInvalid
    }
    value := res.Value
    if *trim {
        value = res.State.Trimmed
    }
    log.Info("accepted", "count", res.State.CharacterCount, "valid", res.State.Valid, "trimmed", *trim)
    fmt.Fprintln(stdout, value)
    return exitOK
}
