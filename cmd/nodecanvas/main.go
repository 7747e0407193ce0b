// Command nodecanvas opens a demo node-graph editor window.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phanxgames/nodecanvas"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	debug      bool
	width      int
	height     int
	nodes      int
	script     string
	shotDir    string
	showFPS    bool
}

func main() {
	setupLogging()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("nodecanvas failed")
		os.Exit(1)
	}
}

// setupLogging configures zerolog for human-readable console output.
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(logLevel(os.Getenv("LOG_LEVEL"), false))
}

// logLevel picks the global level from LOG_LEVEL. --debug forces Debug so the
// process diagnostics are not filtered out.
func logLevel(env string, debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	switch env {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "nodecanvas",
		Short:         "Interactive node-graph canvas demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "canvas config file (.toml or .yaml), reloaded on change")
	f.BoolVar(&opts.debug, "debug", false, "log state transitions and cycle timings")
	f.IntVar(&opts.width, "width", 1280, "window width")
	f.IntVar(&opts.height, "height", 720, "window height")
	f.IntVar(&opts.nodes, "nodes", 12, "number of demo nodes")
	f.StringVar(&opts.script, "script", "", "JSON test script to run, exiting when done")
	f.StringVar(&opts.shotDir, "screenshots", "screenshots", "directory for scripted screenshots")
	f.BoolVar(&opts.showFPS, "fps", false, "show an FPS overlay")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	if opts.debug {
		zerolog.SetGlobalLevel(logLevel(os.Getenv("LOG_LEVEL"), true))
	}

	cfg := nodecanvas.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := nodecanvas.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	editor := nodecanvas.NewEditor(cfg)
	editor.ScreenshotDir = opts.shotDir
	p := editor.Canvas().Process()
	p.SetLogger(log.Logger)
	p.SetDebugMode(opts.debug)
	p.OnDoubleClick = func(c nodecanvas.ClickContext) {
		log.Info().Stringer("target", c.Target).Str("node", c.NodeID).Msg("double click")
	}
	p.OnContextClick = func(c nodecanvas.ClickContext) {
		log.Info().Stringer("target", c.Target).Str("node", c.NodeID).
			Float64("x", c.GraphPosition.X).Float64("y", c.GraphPosition.Y).Msg("context click")
	}
	p.OnConnect = func(c nodecanvas.ConnectContext) {
		log.Info().Str("from", c.FromNodeID).Int("connector", c.Connector).Str("to", c.ToNodeID).Msg("connect")
	}

	for _, n := range demoNodes(opts.nodes) {
		editor.Canvas().AddNode(n)
	}

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := nodecanvas.LoadTestScript(data)
		if err != nil {
			return err
		}
		editor.Canvas().SetTestRunner(runner)
		editor.ExitWhenDone = true
	}

	if opts.configPath != "" {
		go func() {
			err := nodecanvas.WatchConfig(ctx, opts.configPath, editor.SetConfigAsync, func(err error) {
				log.Warn().Err(err).Str("path", opts.configPath).Msg("config reload")
			})
			if err != nil {
				log.Error().Err(err).Msg("config watch stopped")
			}
		}()
	}

	return nodecanvas.Run(editor, nodecanvas.RunConfig{
		Title:   "nodecanvas",
		Width:   opts.width,
		Height:  opts.height,
		ShowFPS: opts.showFPS,
	})
}

// demoNodes lays out n nodes on a loose grid.
func demoNodes(n int) []nodecanvas.Node {
	const (
		cols = 4
		dx   = 220
		dy   = 140
	)
	nodes := make([]nodecanvas.Node, 0, n)
	for i := range n {
		pos := nodecanvas.Vec2{X: float64(60 + (i%cols)*dx), Y: float64(60 + (i/cols)*dy)}
		nodes = append(nodes, nodecanvas.NewBasicNode("", "", fmt.Sprintf("Node %d", i+1), pos))
	}
	return nodes
}
