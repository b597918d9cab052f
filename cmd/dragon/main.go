// Command dragon shows an animated dragon curve. Up and Down change the
// number of folds, Left and Right change how fast the fold angle turns and
// Q quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dragon"
	"github.com/phanxgames/dragon/audio"
	"github.com/phanxgames/dragon/terminal"
)

const (
	logDir      = "logs"
	logFileName = "dragon.log"
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	backendFlag = flag.String("backend", "", "Rendering backend: ebiten, terminal (overrides config)")
	debugFlag   = flag.Bool("debug", false, "Log frame stats to "+filepath.Join(logDir, logFileName))
	scriptFlag  = flag.String("script", "", "JSON test script to run (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := dragon.LoadConfig(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *backendFlag != "" {
		cfg.Backend = *backendFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *scriptFlag != "" {
		cfg.Script = *scriptFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// The terminal backend owns stdout and stderr while it runs.
	logFile := setupLogging(cfg.Debug, cfg.Backend == dragon.BackendTerminal)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "dragon: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg dragon.Config) error {
	scene := dragon.NewScene()
	scene.ScreenshotDir = cfg.ScreenshotDir
	scene.LogOutput = log.Writer()

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := dragon.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
		log.Printf("running script %s", cfg.Script)
	}

	if cfg.Audio {
		player, err := audio.New()
		if err != nil {
			// Non-fatal, the curve runs without sound.
			log.Printf("audio disabled: %v", err)
		} else {
			defer player.Close()
			scene.OnFoldsChanged(player.FoldsChanged)
		}
	}
	scene.OnFoldsChanged(func(folds int) {
		log.Printf("folds: %d (%d vertices)", folds, dragon.VertexCount(folds))
	})

	log.Printf("starting %s backend", cfg.Backend)
	switch cfg.Backend {
	case dragon.BackendTerminal:
		return runTerminal(scene, cfg)
	default:
		return dragon.Run(scene, cfg.RunConfig())
	}
}

func runTerminal(scene *dragon.Scene, cfg dragon.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return terminal.Run(ctx, scene, screen, terminal.Options{
		TPS:     cfg.TPS,
		ShowHUD: cfg.HUD,
		Debug:   cfg.Debug,
	})
}

// setupLogging routes the standard logger. With debug set it appends to
// logs/dragon.log and returns the open file; otherwise output goes to
// stderr, or nowhere when discard is set.
func setupLogging(debug, discard bool) *os.File {
	log.SetPrefix("[dragon] ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if !debug {
		if discard {
			log.SetOutput(io.Discard)
		} else {
			log.SetOutput(os.Stderr)
		}
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "dragon: create log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dragon: open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}
