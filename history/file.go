package history

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// FileSink writes one JSON line per record.
type FileSink struct {
	logger *logrus.Logger
	closer io.Closer
}

func NewFileSink(out io.Writer) *FileSink {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	return &FileSink{logger: logger}
}

// OpenFileSink appends to the file at path, creating it when missing.
func OpenFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open history file %s: %w", path, err)
	}
	sink := NewFileSink(f)
	sink.closer = f
	return sink, nil
}

func (s *FileSink) Publish(_ context.Context, record Record) error {
	s.logger.WithFields(logrus.Fields{
		"session": record.Session.String(),
		"index":   record.ActionIndex,
		"seat":    record.Seat,
		"type":    record.ActionType,
	}).WithFields(logrus.Fields(record.ActionPayload)).Info(record.ActionType)
	return nil
}

func (s *FileSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
