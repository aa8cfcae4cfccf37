// Package sqlite provides the public entry point for the SQLite-backed
// local store. It exposes the factory function while keeping the engine and
// repository wiring internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/moodeng-app/moodeng/internal/sqlite"
	"github.com/moodeng-app/moodeng/internal/store"
	"github.com/moodeng-app/moodeng/pkg/types"
)

// Open opens (creating if necessary) the database under cfg.DataDir and
// returns the assembled LocalStore. A nil logger disables history-failure
// reporting.
//
// Example:
//
//	s, err := sqlite.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".moodeng-db",
//	}, logger)
//	defer s.Close()
func Open(cfg types.Config, log *zap.Logger) (types.LocalStore, error) {
	engine := sqlite.NewStore()
	if err := engine.Open(cfg); err != nil {
		return nil, err
	}
	return store.New(engine, log), nil
}
