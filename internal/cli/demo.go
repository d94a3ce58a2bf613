package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pmorrell/blockfall/internal/dependencies/random"
	"github.com/pmorrell/blockfall/internal/services/audio"
	"github.com/pmorrell/blockfall/internal/services/bot"
)

// printSink writes every audio cue to the writer as one line
type printSink struct {
	w io.Writer
}

func (s *printSink) Cue(c audio.Cue) {
	switch c.Kind {
	case audio.CuePlayTrack:
		fmt.Fprintf(s.w, "audio: play track %d (volume %.1f)\n", c.Track, c.Volume)
	case audio.CuePlaySfx:
		fmt.Fprintf(s.w, "audio: sfx %s\n", c.Sfx)
	case audio.CueSetSpeed:
		fmt.Fprintf(s.w, "audio: speed %.2f\n", c.Speed)
	default:
		fmt.Fprintf(s.w, "audio: %s\n", c.Kind)
	}
}

// discardSink drops every cue
type discardSink struct{}

func (discardSink) Cue(audio.Cue) {}

func newDemoCmd() *cobra.Command {
	var strategyName string
	var maxTicks int
	var showAudio bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Play one game locally with a bot",
		Long: `Run a full game locally without a server, driven by a bot strategy.

Strategies:
  random  Press keys at random
  flat    Steer pieces toward the shallowest column`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rnd := random.New()

			var strategy bot.Strategy
			switch strategyName {
			case "random":
				strategy = bot.NewRandomStrategy(rnd)
			case "flat":
				strategy = bot.NewFlatStrategy()
			default:
				return fmt.Errorf("unknown strategy %q", strategyName)
			}

			var sink audio.Sink = discardSink{}
			if showAudio {
				sink = &printSink{w: os.Stdout}
			}

			logLevel := slog.LevelWarn
			if cfg.Verbose {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

			runner := bot.NewRunner(rnd, strategy, sink, logger)

			result, err := runner.Run(cmd.Context(), maxTicks, bot.DefaultTickSeconds)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			if cfg.Output == "json" {
				NewOutput(cfg.Output).Print(result)
				return nil
			}

			fmt.Printf("Ticks: %d\n", result.Ticks)
			fmt.Printf("Score: %d\n", result.Score)
			fmt.Printf("Lines: %d\n", result.Lines)
			if result.GameOver {
				fmt.Println("Game over: yes")
			} else {
				fmt.Println("Game over: no (tick limit reached)")
			}
			if len(result.SpawnCounts) > 0 {
				parts := make([]string, 0, len(result.SpawnCounts))
				for kind, count := range result.SpawnCounts {
					parts = append(parts, fmt.Sprintf("%s=%d", kind, count))
				}
				sort.Strings(parts)
				fmt.Printf("Pieces: %s\n", strings.Join(parts, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategyName, "strategy", "flat", "Bot strategy: random, flat")
	cmd.Flags().IntVar(&maxTicks, "max-ticks", bot.DefaultMaxTicks, "Tick limit before giving up")
	cmd.Flags().BoolVar(&showAudio, "audio", false, "Print audio cues as they fire")

	return cmd
}
