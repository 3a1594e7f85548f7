package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/menu-launcher/internal/app"
	"github.com/atomicstack/menu-launcher/internal/config"
	"github.com/atomicstack/menu-launcher/internal/logging"
	"github.com/atomicstack/menu-launcher/internal/logging/events"
	"github.com/atomicstack/menu-launcher/internal/menu"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code: 0 on a normal
// exit, 2 for command-line mistakes, 1 for everything else.
func run(args, environ []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(args, environ)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	reportError(stderr, err)
	return exitCode(err)
}

func newRootCmd(rawArgs, environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu-launcher [menu-file]",
		Short: "Browse a hierarchical menu and launch commands from it",
		Long: "menu-launcher reads a menu file (menu.csv by default) and shows it as a\n" +
			"navigable list. Enter opens a sub-menu or runs a command, esc goes back.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	binder := config.Bind(cmd.Flags(), environ)
	check := cmd.Flags().Bool("check", false, "validate the menu file, print its outline and exit")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.UsageError{Err: err}
	})
	cmd.RunE = func(c *cobra.Command, positional []string) error {
		cfg, err := binder.Resolve(positional)
		if err != nil {
			return err
		}
		cfg.Args = append([]string(nil), rawArgs...)
		if err := config.Validate(cfg); err != nil {
			return err
		}
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		traceStartup(cfg)

		if *check {
			return checkMenu(c.OutOrStdout(), cfg.App.MenuPath)
		}
		return app.Run(cfg.App)
	}
	return cmd
}

func checkMenu(w io.Writer, path string) error {
	tree, err := menu.Load(path)
	if err != nil {
		return err
	}
	events.Menu.Loaded(tree.Source, tree.Count())
	fmt.Fprintf(w, "%s: %d entries\n", tree.Source, tree.Count())
	_, err = io.WriteString(w, tree.Outline())
	return err
}

func reportError(w io.Writer, err error) {
	var cfgErr *menu.ConfigError
	var usageErr *config.UsageError
	switch {
	case errors.As(err, &cfgErr):
		logging.Error(err)
		color.New(color.FgRed, color.Bold).Fprintf(w, "Configuration error: %v\n", cfgErr)
	case errors.As(err, &usageErr):
		color.New(color.FgRed).Fprintf(w, "Error: %v\n", usageErr)
		fmt.Fprintln(w, "Run 'menu-launcher --help' for usage.")
	default:
		logging.Error(err)
		color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
		fmt.Fprintf(w, "Details were logged to %s.\n", logging.Path())
	}
}

func exitCode(err error) int {
	var usageErr *config.UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
