package notify

import (
	"log/slog"
	"strings"

	"github.com/riordanpawley/vrhud/internal/domain"
)

// Service is the handle other components use to post notifications.
// A Service starts uninitialized and drops messages with a warning until
// Init attaches a queue. A nil *Service and a zero Service behave like an
// uninitialized one.
type Service struct {
	queue  *Queue
	logger *slog.Logger
}

// NewService creates an uninitialized service
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// log falls back to the default logger for nil and zero-value services
func (s *Service) log() *slog.Logger {
	if s == nil || s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

// Init attaches the queue that receives notifications
func (s *Service) Init(q *Queue) {
	s.queue = q
}

// Ready reports whether the service has a queue
func (s *Service) Ready() bool {
	return s != nil && s.queue != nil
}

// SendNotification posts an info notification
func (s *Service) SendNotification(message string) {
	s.Notify(LevelInfo, message)
}

// Notify posts a notification with the given level
func (s *Service) Notify(level Level, message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	if !s.Ready() {
		s.log().Warn("notification dropped", "error", domain.ErrNotInitialized, "level", level.String())
		return
	}

	id, _ := s.queue.EnqueueLevel(level, message)
	s.log().Debug("notification queued", "id", id, "level", level.String(), "count", s.queue.Len())
}
