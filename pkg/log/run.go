package log

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RunLogger returns the global logger stamped with a fresh run identifier,
// so every event of one invocation can be correlated in aggregated logs.
func RunLogger() zerolog.Logger {
	return global.With().Str(FieldRunID, uuid.New().String()).Logger()
}
