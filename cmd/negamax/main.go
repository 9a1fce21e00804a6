// negamax runs the search core against a single position and prints the chosen move; the
// engine logs its principal variation. It speaks no protocol (UCI/XBoard conformance is explicitly out of
// scope); it is a thin driver over pkg/engine for manual inspection and scripting.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mvpineda/negamax/pkg/board/fen"
	"github.com/mvpineda/negamax/pkg/config"
	"github.com/mvpineda/negamax/pkg/engine"
	"github.com/mvpineda/negamax/pkg/eval"
	"github.com/pkg/profile"
	"github.com/seekerror/logw"
)

var (
	configPath = flag.String("config", "", "Path to a TOML config file (defaults used if absent)")
	position   = flag.String("fen", "", "Position to search (default to the standard starting position)")
	depth      = flag.Int("depth", 0, "Search depth override (0 uses the config default)")
	debug      = flag.Bool("debug", false, "Enable debug-mode invariant checking")
	cpuprof    = flag.Bool("profile", false, "Record a CPU profile of the run")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: negamax [options]

negamax searches a single position and prints the move it picks.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *cpuprof {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	config.Setup(*configPath)

	noise := eval.NewRandom(config.Settings.Eval.NoiseLimit, config.Settings.Eval.Seed)
	opts := []engine.Option{
		engine.WithMaxDepth(config.Settings.Search.MaxDepth),
		engine.WithIterativeDeepening(config.Settings.Search.IterativeDeepening),
		engine.WithSeed(config.Settings.Search.Seed),
		engine.WithEvaluator(eval.Default{Noise: noise}),
		engine.WithDebug(*debug),
	}
	if *depth > 0 {
		opts = append(opts, engine.WithMaxDepth(*depth))
	}

	e := engine.New(ctx, "negamax", "mvpineda", opts...)

	pos := *position
	if pos == "" {
		pos = fen.Initial
	}

	m, err := e.ChooseMove(ctx, pos)
	if err != nil {
		logw.Exitf(ctx, "choose_move failed: %v", err)
	}

	fmt.Println(m)
}
