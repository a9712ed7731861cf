package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Logger struct {
	*zap.SugaredLogger
}

// GlobalLogger is the fallback logger for code paths that were not
// handed a logger explicitly (e.g. the default diagnostic sink).
var GlobalLogger = NewLogger("columncast")

type RunID string

// NewRunID mints an identifier for one conversion run so diagnostics
// from concurrent runs can be told apart.
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

func (logger Logger) WithRunID(id RunID) Logger {
	return Logger{
		logger.With("run-id", string(id)),
	}
}

func (logger Logger) WithColumn(name string) Logger {
	return Logger{
		logger.With("column", name),
	}
}

func NewLogger(service string) Logger {
	baseLogger, err := zap.NewDevelopment(
		zap.AddStacktrace(zap.ErrorLevel),
	)
	if err != nil {
		panic(err)
	}
	logger := baseLogger.Sugar().Named(service)
	return Logger{
		logger,
	}
}
