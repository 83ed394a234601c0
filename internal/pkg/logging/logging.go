package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a JSON production logger for env "production" and a
// human-readable development logger for anything else.
func New(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger.With(zap.String("service", "b2b-catalog")), nil
}
