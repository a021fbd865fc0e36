package logging

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. Release builds log JSON at info
// level, everything else gets the human-readable development encoder.
func NewLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("GIN_MODE") == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
