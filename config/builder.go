package config

import (
	"github.com/jpalmerr/crunchboard"
)

// BuildOptions converts parsed configuration into SDK options.
//
// Only keys that differ from the SDK's own defaults need to produce an
// option, but emitting them unconditionally keeps the mapping obvious;
// zero-valued Workers is skipped so the SDK's per-CPU default applies.
func BuildOptions(cfg *Config) []crunchboard.Option {
	opts := []crunchboard.Option{
		crunchboard.WithListenAddr(cfg.ListenAddr),
		crunchboard.WithPrimeBound(cfg.PrimeBound),
		crunchboard.WithMatrixSize(cfg.MatrixSize),
		crunchboard.WithHistorySize(cfg.HistorySize),
	}

	if cfg.Workers > 0 {
		opts = append(opts, crunchboard.WithWorkers(cfg.Workers))
	}

	return opts
}
