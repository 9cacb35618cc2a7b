package util

import "errors"

var (
	ErrTopicRequired    = errors.New("topic is required")
	ErrSubjectsRequired = errors.New("at least one subject is required")
	ErrExamDateInvalid  = errors.New("exam date is invalid or not in the future")
	ErrMessagesRequired = errors.New("messages must not be empty")
	ErrUnknownXPEvent   = errors.New("unknown xp event kind")
	ErrEntryNotFound    = errors.New("library entry not found")
	ErrModelUnavailable = errors.New("generative model unavailable")
	ErrBadModelOutput   = errors.New("generative model returned unparseable output")
)
