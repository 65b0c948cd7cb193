package service

// ValidationError marks a failure caught before any store call. MsgID
// is an i18n message identifier; the HTTP layer localizes it for the
// session's language.
type ValidationError struct {
	MsgID string
}

func (e *ValidationError) Error() string {
	return e.MsgID
}

func validation(msgID string) error {
	return &ValidationError{MsgID: msgID}
}
