// Package config holds the engine's startup configuration: defaults, overridable by a TOML
// file and then by command-line flags, in that order.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

type searchConfiguration struct {
	// MaxDepth is the deepest ply searched in a single choose_move call.
	MaxDepth int

	// IterativeDeepening, if true, searches depth 2..MaxDepth, reusing each pass's principal
	// variation to order moves in the next.
	IterativeDeepening bool

	// Seed initializes the PRNG used for move-order tie-breaking shuffles.
	Seed int64
}

type evalConfiguration struct {
	// NoiseLimit is the width, in millipawns, of the uniform noise added to the static
	// evaluation. Zero disables it.
	NoiseLimit int

	// Seed initializes the PRNG used for evaluation noise.
	Seed int64
}

func init() {
	Settings.Search.MaxDepth = 4
	Settings.Search.IterativeDeepening = true
	Settings.Search.Seed = 1

	Settings.Eval.NoiseLimit = 10
	Settings.Eval.Seed = 1
}

// Setup reads path, if present, and overlays its values onto the defaults. A missing or
// malformed file is not fatal: the defaults set in init remain in effect.
func Setup(path string) {
	if initialized {
		return
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Printf("config file %q not loaded, using defaults: %v", path, err)
		}
	}
	initialized = true
}
