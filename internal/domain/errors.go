package domain

import "errors"

var (
	ErrEmptyCorpus  = errors.New("corpus has no documents")
	ErrLoadFailure  = errors.New("corpus load failed")
	ErrNotLoaded    = errors.New("corpus not loaded")
	ErrBusy         = errors.New("a message is already being processed")
	ErrChatNotFound = errors.New("chat not found")
	ErrEmptyMessage = errors.New("message is empty")
)
