package contact

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Sink receives validated submissions.
type Sink interface {
	Emit(ctx context.Context, sub Submission) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, sub Submission) error

// Emit calls fn.
func (fn SinkFunc) Emit(ctx context.Context, sub Submission) error {
	return fn(ctx, sub)
}

// LogSink writes each submission to a zap logger.
type LogSink struct {
	Logger *zap.Logger
}

// NewLogSink returns a sink logging through logger. A nil logger discards.
func NewLogSink(logger *zap.Logger) LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return LogSink{Logger: logger.Named("contact")}
}

// Emit logs sub at info level.
func (s LogSink) Emit(_ context.Context, sub Submission) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("contact submission received",
		zap.String("submission_id", sub.ID),
		zap.Time("received_at", sub.ReceivedAt),
		zap.String("first_name", sub.Input.FirstName),
		zap.String("last_name", sub.Input.LastName),
		zap.String("email", sub.Input.Email),
		zap.String("subject", sub.Input.Subject),
		zap.Int("message_length", len([]rune(sub.Input.Message))),
	)
	return nil
}

// MultiSink emits to every sink in order. All sinks are attempted; their errors are joined.
type MultiSink []Sink

// Emit fans sub out to each sink.
func (m MultiSink) Emit(ctx context.Context, sub Submission) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Emit(ctx, sub); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
