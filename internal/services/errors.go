package services

// ValidationError marks a rejected input. Handlers map it to a 400 with the
// message as the error body; nothing is sent downstream.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
