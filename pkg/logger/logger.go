// Package logger constructs the structured logger used throughout docbase.
package logger

import "go.uber.org/zap"

// New builds a production zap logger scoped to the given service name and
// returns its sugared form, matching the structured Infow/Errorw logging
// style used across the engine, storage, and index packages.
func New(service string) *zap.SugaredLogger {
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	return base.Sugar().With("service", service)
}
