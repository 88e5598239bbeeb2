package errors

import "fmt"

var (
	ErrChannelNotOpen      = fmt.Errorf("live channel is not open")
	ErrChannelClosed       = fmt.Errorf("live channel was torn down")
	ErrContentTooLong      = fmt.Errorf("message content exceeds the allowed length")
	ErrNoConversation      = fmt.Errorf("no conversation available for this user")
	ErrSessionNotStarted   = fmt.Errorf("session has not been started")
	ErrMissingRefreshToken = fmt.Errorf("no refresh token stored")
)
