package service

import (
	"time"

	"go.uber.org/zap"
)

// Observer receives one event per core operation: name, outcome, duration.
// Services never write to the console directly.
type Observer interface {
	Observe(op string, err error, elapsed time.Duration)
}

type zapObserver struct {
	log *zap.Logger
}

func NewZapObserver(log *zap.Logger) Observer {
	return &zapObserver{log: log}
}

func (o *zapObserver) Observe(op string, err error, elapsed time.Duration) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		fields = append(fields, zap.String("outcome", "error"), zap.Error(err))
		o.log.Warn("operation", fields...)
		return
	}
	fields = append(fields, zap.String("outcome", "ok"))
	o.log.Info("operation", fields...)
}

// observe is nil-safe so services can run without an observer in tests.
func observe(obs Observer, op string, start time.Time, err error) {
	if obs == nil {
		return
	}
	obs.Observe(op, err, time.Since(start))
}
