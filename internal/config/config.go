package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/floatkit/floatnav/internal/app"
	"github.com/floatkit/floatnav/internal/nav"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Nav     Nav
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// Nav is the user-facing navigation surface. It maps onto nav.Options for
// every popup the demo opens.
type Nav struct {
	Orientation string
	Cols        int
	Loop        bool
	RTL         bool
	Virtual     bool
	AllowEscape bool
	Hover       bool
	OpenOnArrow bool
	FocusOnOpen string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile  = "FLOATNAV_CONFIG"
	envStateFile   = "FLOATNAV_STATE"
	envWidth       = "FLOATNAV_WIDTH"
	envHeight      = "FLOATNAV_HEIGHT"
	envShowFooter  = "FLOATNAV_FOOTER"
	envVerbose     = "FLOATNAV_VERBOSE"
	envTrace       = "FLOATNAV_TRACE"
	envLogFile     = "FLOATNAV_LOG_FILE"
	envOrientation = "FLOATNAV_ORIENTATION"
	envCols        = "FLOATNAV_COLS"
	envLoop        = "FLOATNAV_LOOP"
	envRTL         = "FLOATNAV_RTL"
	envVirtual     = "FLOATNAV_VIRTUAL"
	envAllowEscape = "FLOATNAV_ALLOW_ESCAPE"
	envHover       = "FLOATNAV_HOVER"
	envOpenOnArrow = "FLOATNAV_OPEN_ON_ARROW"
	envFocusOnOpen = "FLOATNAV_FOCUS_ON_OPEN"
)

// fileConfig mirrors the optional TOML config file. Pointer fields
// distinguish "absent" from zero values so flags and environment variables
// keep precedence.
type fileConfig struct {
	State  *string `toml:"state"`
	Width  *int    `toml:"width"`
	Height *int    `toml:"height"`
	Footer *bool   `toml:"footer"`

	Nav struct {
		Orientation *string `toml:"orientation"`
		Cols        *int    `toml:"cols"`
		Loop        *bool   `toml:"loop"`
		RTL         *bool   `toml:"rtl"`
		Virtual     *bool   `toml:"virtual"`
		AllowEscape *bool   `toml:"allow_escape"`
		Hover       *bool   `toml:"hover"`
		OpenOnArrow *bool   `toml:"open_on_arrow"`
		FocusOnOpen *string `toml:"focus_on_open"`
	} `toml:"nav"`

	Logging struct {
		File  *string `toml:"file"`
		Trace *bool   `toml:"trace"`
	} `toml:"logging"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flags over environment over config file over built-in defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("floatnav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", "", "path to a TOML config file")
	state := fs.String("state", "", "path to the demo state file")
	width := fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", false, "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", false, "print success messages for actions")

	orientation := fs.String("orientation", "vertical", "main navigation axis: vertical, horizontal or both")
	cols := fs.Int("cols", 1, "grid column count for list popups (1 means linear)")
	loop := fs.Bool("loop", false, "wrap navigation at list edges")
	rtl := fs.Bool("rtl", false, "mirror horizontal keys for right-to-left layouts")
	virtual := fs.Bool("virtual", false, "use virtual focus (active-descendant) instead of moving real focus")
	allowEscape := fs.Bool("allow-escape", false, "allow focus to escape past the edges (requires loop and virtual)")
	hover := fs.Bool("hover", true, "sync the active item on pointer hover")
	openOnArrow := fs.Bool("open-on-arrow", true, "open the popup from the reference on a main-axis arrow key")
	focusOnOpen := fs.String("focus-on-open", "auto", "focus an item when a popup opens: auto, always or never")

	trace := fs.Bool("trace", false, "enable verbose JSON trace logging")
	logFile := fs.String("log-file", "", "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	path := *configPath
	if !explicit["config"] {
		path = envOrDefault(env, envConfigFile, path)
	}
	file, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}

	resolveString := func(name, flagVal, envKey string, filePtr *string) string {
		if explicit[name] {
			return flagVal
		}
		if v, ok := env[envKey]; ok && strings.TrimSpace(v) != "" {
			return v
		}
		if filePtr != nil {
			return *filePtr
		}
		return flagVal
	}
	resolveInt := func(name string, flagVal int, envKey string, filePtr *int) int {
		if explicit[name] {
			return flagVal
		}
		if v := envInt(env, envKey); v != nil {
			return *v
		}
		if filePtr != nil {
			return *filePtr
		}
		return flagVal
	}
	resolveBool := func(name string, flagVal bool, envKey string, filePtr *bool) bool {
		if explicit[name] {
			return flagVal
		}
		if v := envBool(env, envKey); v != nil {
			return *v
		}
		if filePtr != nil {
			return *filePtr
		}
		return flagVal
	}

	cfg := Config{
		App: app.Config{
			StatePath:  resolveString("state", *state, envStateFile, file.State),
			Width:      resolveInt("width", *width, envWidth, file.Width),
			Height:     resolveInt("height", *height, envHeight, file.Height),
			ShowFooter: resolveBool("footer", *footer, envShowFooter, file.Footer),
			Verbose:    resolveBool("verbose", *verbose, envVerbose, nil),
		},
		Nav: Nav{
			Orientation: resolveString("orientation", *orientation, envOrientation, file.Nav.Orientation),
			Cols:        resolveInt("cols", *cols, envCols, file.Nav.Cols),
			Loop:        resolveBool("loop", *loop, envLoop, file.Nav.Loop),
			RTL:         resolveBool("rtl", *rtl, envRTL, file.Nav.RTL),
			Virtual:     resolveBool("virtual", *virtual, envVirtual, file.Nav.Virtual),
			AllowEscape: resolveBool("allow-escape", *allowEscape, envAllowEscape, file.Nav.AllowEscape),
			Hover:       resolveBool("hover", *hover, envHover, file.Nav.Hover),
			OpenOnArrow: resolveBool("open-on-arrow", *openOnArrow, envOpenOnArrow, file.Nav.OpenOnArrow),
			FocusOnOpen: resolveString("focus-on-open", *focusOnOpen, envFocusOnOpen, file.Nav.FocusOnOpen),
		},
		Logging: Logging{
			FilePath: resolveString("log-file", *logFile, envLogFile, file.Logging.File),
			Trace:    resolveBool("trace", *trace, envTrace, file.Logging.Trace),
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	cfg.Flags = map[string]string{
		"state":       cfg.App.StatePath,
		"width":       strconv.Itoa(cfg.App.Width),
		"height":      strconv.Itoa(cfg.App.Height),
		"footer":      strconv.FormatBool(cfg.App.ShowFooter),
		"verbose":     strconv.FormatBool(cfg.App.Verbose),
		"orientation": cfg.Nav.Orientation,
		"cols":        strconv.Itoa(cfg.Nav.Cols),
		"loop":        strconv.FormatBool(cfg.Nav.Loop),
		"virtual":     strconv.FormatBool(cfg.Nav.Virtual),
		"trace":       strconv.FormatBool(cfg.Logging.Trace),
		"logFile":     cfg.Logging.FilePath,
	}

	return cfg, nil
}

// Options converts the user-facing surface into engine options.
func (n Nav) Options() nav.Options {
	opts := nav.DefaultOptions()
	opts.Orientation = nav.Orientation(n.Orientation)
	opts.Cols = n.Cols
	opts.Loop = n.Loop
	opts.RTL = n.RTL
	opts.Virtual = n.Virtual
	opts.AllowEscape = n.AllowEscape
	opts.FocusItemOnHover = n.Hover
	opts.OpenOnArrowKeyDown = n.OpenOnArrow
	switch n.FocusOnOpen {
	case "always":
		opts.FocusItemOnOpen = nav.FocusOnOpenAlways
	case "never":
		opts.FocusItemOnOpen = nav.FocusOnOpenNever
	default:
		opts.FocusItemOnOpen = nav.FocusOnOpenAuto
	}
	return opts
}

func loadFile(path string) (fileConfig, error) {
	var file fileConfig
	if strings.TrimSpace(path) == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envInt(env map[string]string, key string) *int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &parsed
}

func envBool(env map[string]string, key string) *bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the configuration is internally consistent.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	switch cfg.Nav.Orientation {
	case "vertical", "horizontal", "both":
	default:
		return fmt.Errorf("orientation must be vertical, horizontal or both (got %q)", cfg.Nav.Orientation)
	}
	if cfg.Nav.Cols < 1 {
		return fmt.Errorf("cols must be >= 1 (got %d)", cfg.Nav.Cols)
	}
	switch cfg.Nav.FocusOnOpen {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("focus-on-open must be auto, always or never (got %q)", cfg.Nav.FocusOnOpen)
	}
	return nil
}
