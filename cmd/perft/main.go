// perft is a movegen debugging tools. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/mvpineda/negamax/pkg/board"
	"github.com/mvpineda/negamax/pkg/board/fen"
	"github.com/pkg/profile"
	"github.com/seekerror/logw"
	"golang.org/x/sync/errgroup"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move, one root mover per worker")
	cpuprof  = flag.Bool("profile", false, "Record a CPU profile of the run")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *cpuprof {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if *position == "" {
		*position = fen.Initial
	}

	pos, turn, _, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()

		var nodes int64
		if *divide && i == *depth {
			nodes, err = divideRoot(pos, turn, i)
			if err != nil {
				logw.Exitf(ctx, "divide failed: %v", err)
			}
		} else {
			nodes = search(pos, turn, i, false)
		}

		duration := time.Since(start)
		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

// divideRoot counts perft(depth-1) for each root move concurrently, one worker per move, and
// prints each count once every worker has reported in so output order stays deterministic.
func divideRoot(pos *board.Position, turn board.Color, depth int) (int64, error) {
	moves := pos.PseudoLegalMoves(turn)

	type result struct {
		move  board.Move
		nodes int64
	}
	results := make([]result, 0, len(moves))

	var g errgroup.Group
	counts := make([]int64, len(moves))
	for i, m := range moves {
		i, m := i, m
		next, ok := pos.Move(m)
		if !ok {
			continue
		}
		g.Go(func() error {
			counts[i] = search(next, turn.Opponent(), depth-1, false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for i, m := range moves {
		if counts[i] == 0 {
			continue
		}
		results = append(results, result{move: m, nodes: counts[i]})
		total += counts[i]
	}
	sort.Slice(results, func(i, j int) bool { return results[i].move.String() < results[j].move.String() })
	for _, r := range results {
		println(fmt.Sprintf("%v: %v", r.move, r.nodes))
	}
	return total, nil
}

func search(pos *board.Position, turn board.Color, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range pos.PseudoLegalMoves(turn) {
		if next, ok := pos.Move(m); ok {
			count := search(next, turn.Opponent(), depth-1, false)
			if d {
				println(fmt.Sprintf("%v: %v", m, count))
			}
			nodes += count
		}
	}
	return nodes
}
