package analyzer

import (
	"fmt"
	"unicode/utf8"
)

const (
	maxMessageLen        = 5000
	maxCompareMessageLen = 2000
	minCompareMessages   = 2
	maxCompareMessages   = 10
)

// ValidationError reports the first constraint a request violates. Handlers
// map it to a 400 response; everything else is treated as a server failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidInput(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func validateMessage(message string) error {
	if message == "" {
		return invalidInput("message is required")
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return invalidInput("message must be at most %d characters", maxMessageLen)
	}
	return nil
}

func validateMessages(messages []string) error {
	if messages == nil {
		return invalidInput("messages is required")
	}
	if len(messages) < minCompareMessages || len(messages) > maxCompareMessages {
		return invalidInput("messages must contain between %d and %d entries", minCompareMessages, maxCompareMessages)
	}
	for i, m := range messages {
		if m == "" {
			return invalidInput("message %d must be a non-empty string", i+1)
		}
		if utf8.RuneCountInString(m) > maxCompareMessageLen {
			return invalidInput("message %d must be at most %d characters", i+1, maxCompareMessageLen)
		}
	}
	return nil
}
