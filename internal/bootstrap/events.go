package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shareshelf/shareshelf/internal/config"
	"github.com/shareshelf/shareshelf/internal/event"
	"github.com/shareshelf/shareshelf/internal/logger"
)

// InitializeEventSystem creates and configures the event bus and resilient
// publisher. It applies default values for retry configuration if not
// specified in config and creates the dead-letter directory.
// Returns the event bus, resilient publisher, and any error encountered.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     maxRetries,
		RetryDelay:     retryDelay,
		DeadLetterPath: deadLetterPath,
	})

	logger.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}
