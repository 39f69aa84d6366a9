package types

// SubmissionStatus tracks an optimistic in-memory record against the gateway:
// pending until the forward settles, then confirmed or failed.
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionConfirmed SubmissionStatus = "confirmed"
	SubmissionFailed    SubmissionStatus = "failed"
)
