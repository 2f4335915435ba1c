package shared

import "errors"

var (
	ErrNoLogger             = errors.New("no logger provided")
	ErrNoConfig             = errors.New("no config provided")
	ErrServerAlreadyRunning = errors.New("server already running")
	ErrServerNotStarted     = errors.New("server not started")
	ErrUnknownPreset        = errors.New("unknown system preset")
	ErrUnknownUnit          = errors.New("unknown quantity unit")
)
