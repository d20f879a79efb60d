// Package modkit provides module wiring and core deps
package modkit

import (
	"storydeck/internal/modkit/repokit"
	"storydeck/internal/platform/clock"
	"storydeck/internal/platform/config"
	"storydeck/internal/platform/logger"
	"storydeck/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Clock clock.Clock
	PG    repokit.TxRunner
	CH    store.Clickhouse
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
