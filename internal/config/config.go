package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/menu-launcher/internal/app"
	"github.com/atomicstack/menu-launcher/internal/menu"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuPath    = "MENU_LAUNCHER_MENU"
	envTitle       = "MENU_LAUNCHER_TITLE"
	envWidth       = "MENU_LAUNCHER_WIDTH"
	envHeight      = "MENU_LAUNCHER_HEIGHT"
	envShowFooter  = "MENU_LAUNCHER_FOOTER"
	envFilter      = "MENU_LAUNCHER_FILTER"
	envPause       = "MENU_LAUNCHER_PAUSE"
	envVerbose     = "MENU_LAUNCHER_VERBOSE"
	envTrace       = "MENU_LAUNCHER_TRACE"
	envLogFile     = "MENU_LAUNCHER_LOG_FILE"
	envNoAltScreen = "MENU_LAUNCHER_NO_ALT_SCREEN"
)

var errMenuPathEmpty = errors.New("menu path must not be empty")

// UsageError marks problems with the command line itself, as opposed to
// problems with the menu or the terminal.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Binder holds the flag values registered by Bind until Resolve turns them
// into a Config.
type Binder struct {
	fs          *pflag.FlagSet
	menuPath    *string
	title       *string
	width       *int
	height      *int
	footer      *bool
	filter      *bool
	pause       *bool
	verbose     *bool
	trace       *bool
	logFile     *string
	noAltScreen *bool
}

// Bind registers every flag on fs. Defaults come from environ so that flags
// always win over the environment.
func Bind(fs *pflag.FlagSet, environ []string) *Binder {
	env := parseEnv(environ)
	return &Binder{
		fs:          fs,
		menuPath:    fs.StringP("menu", "m", envOrDefault(env, envMenuPath, menu.DefaultFile), "path to the menu file (csv, yaml or toml)"),
		title:       fs.String("title", envOrDefault(env, envTitle, ""), "title shown for the top-level menu"),
		width:       fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:      fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:      fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key help (disabled by default)"),
		filter:      fs.Bool("filter", envOrBool(env, envFilter, false), "enable type-to-filter on every menu level"),
		pause:       fs.Bool("pause", envOrBool(env, envPause, false), "wait for enter after a command exits"),
		verbose:     fs.Bool("verbose", envOrBool(env, envVerbose, false), "show commands and success messages"),
		trace:       fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:     fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		noAltScreen: fs.Bool("no-alt-screen", envOrBool(env, envNoAltScreen, false), "draw the menu inline instead of on the alternate screen"),
	}
}

// Resolve builds the Config from parsed flags. positional holds the
// arguments left after flag parsing; a single one names the menu file.
func (b *Binder) Resolve(positional []string) (Config, error) {
	menuPath := *b.menuPath
	switch len(positional) {
	case 0:
	case 1:
		if b.fs.Changed("menu") && positional[0] != menuPath {
			return Config{}, &UsageError{Err: fmt.Errorf("menu given both as --menu %q and argument %q", menuPath, positional[0])}
		}
		menuPath = positional[0]
	default:
		return Config{}, &UsageError{Err: fmt.Errorf("expected at most one menu file, got %d arguments", len(positional))}
	}
	if *b.width < 0 {
		return Config{}, &UsageError{Err: fmt.Errorf("width must be >= 0 (got %d)", *b.width)}
	}
	if *b.height < 0 {
		return Config{}, &UsageError{Err: fmt.Errorf("height must be >= 0 (got %d)", *b.height)}
	}

	cfg := Config{
		App: app.Config{
			MenuPath:   menuPath,
			Title:      *b.title,
			Width:      *b.width,
			Height:     *b.height,
			ShowFooter: *b.footer,
			Verbose:    *b.verbose,
			Filter:     *b.filter,
			Pause:      *b.pause,
			AltScreen:  !*b.noAltScreen,
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Trace:    *b.trace,
		},
		Flags: map[string]string{
			"menu":        menuPath,
			"title":       *b.title,
			"width":       strconv.Itoa(*b.width),
			"height":      strconv.Itoa(*b.height),
			"footer":      strconv.FormatBool(*b.footer),
			"filter":      strconv.FormatBool(*b.filter),
			"pause":       strconv.FormatBool(*b.pause),
			"trace":       strconv.FormatBool(*b.trace),
			"verbose":     strconv.FormatBool(*b.verbose),
			"logFile":     *b.logFile,
			"noAltScreen": strconv.FormatBool(*b.noAltScreen),
		},
		Args: append([]string(nil), positional...),
	}
	return cfg, nil
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

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.MenuPath) == "" {
		return &UsageError{Err: errMenuPathEmpty}
	}
	return nil
}
