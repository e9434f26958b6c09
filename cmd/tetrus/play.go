package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetrus/internal/config"
	"github.com/vovakirdan/tetrus/internal/core"
	"github.com/vovakirdan/tetrus/internal/game"
	"github.com/vovakirdan/tetrus/internal/platform/tui"
	"github.com/vovakirdan/tetrus/internal/storage"
)

var (
	flagSprint int
	flagUltra  string
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round. Without flags this is a marathon: play until the
stack tops out. --sprint and --ultra select goal-based modes.

Controls:
  Left/Right, H/L  - Move piece
  Up, X, W         - Rotate clockwise
  Z, A             - Rotate counter-clockwise
  Down, J          - Soft drop
  Space            - Hard drop
  C                - Hold piece
  P                - Pause
  R                - Restart (after the round ends)
  Q/Ctrl+C         - Quit

Timing presets:
  classic - Standard gravity curve
  zen     - Slower gravity, forgiving lock delay
  blitz   - Fast gravity from the start

Examples:
  tetrus play
  tetrus play --sprint 40
  tetrus play --ultra 2m
  tetrus play --preset blitz
  tetrus play --config ./my-tetrus.yaml
  tetrus play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSprint, "sprint", 0, "Sprint mode: clear this many lines to win")
	playCmd.Flags().StringVar(&flagUltra, "ultra", "", "Ultra mode: time limit (e.g. 2m, 90s, or plain seconds)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Timing preset: classic, zen, blitz")
}

// selectMode resolves the mode flags. --sprint and --ultra are mutually
// exclusive; neither means marathon.
func selectMode() (game.Mode, error) {
	if flagSprint > 0 && flagUltra != "" {
		return game.Mode{}, fmt.Errorf("--sprint and --ultra are mutually exclusive")
	}

	if flagSprint > 0 {
		return game.Sprint(flagSprint), nil
	}

	if flagUltra != "" {
		limit, err := parseTimeLimit(flagUltra)
		if err != nil {
			return game.Mode{}, err
		}
		return game.Ultra(limit), nil
	}

	return game.Marathon(), nil
}

// parseTimeLimit accepts Go duration syntax ("2m", "90s") or a plain
// number of seconds ("120").
func parseTimeLimit(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("time limit must be positive, got %q", s)
		}
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time limit %q (try 2m, 90s, or 120)", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("time limit must be positive, got %q", s)
	}
	return d, nil
}

// validPreset reports whether name matches a known timing preset.
func validPreset(name string) bool {
	for _, p := range config.Presets() {
		if string(p) == name {
			return true
		}
	}
	return false
}

func runPlay(cmd *cobra.Command, args []string) {
	mode, err := selectMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagPreset != "" && !validPreset(flagPreset) {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q (available: classic, zen, blitz)\n", flagPreset)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		config.ApplyPreset(&gameCfg, config.Preset(flagPreset))
	}
	rules := game.RulesFrom(gameCfg)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	factory := func(seed int64) *game.Game {
		return game.New(mode, rules, rand.New(rand.NewSource(seed)))
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(factory, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
