package model

// SubmissionState represents the state of the submission form
type SubmissionState string

const (
	// StateIdle means nothing has been submitted yet or input was rejected
	StateIdle SubmissionState = "Idle"

	// StateSubmitting means a shorten request is in flight
	StateSubmitting SubmissionState = "Submitting"

	// StateSuccess means the last request returned a short URL
	StateSuccess SubmissionState = "Success"

	// StateFailed means the last request failed
	StateFailed SubmissionState = "Failed"
)

// String returns the string representation of SubmissionState
func (s SubmissionState) String() string {
	return string(s)
}

// ErrorKind classifies the error currently shown by the form
type ErrorKind int

const (
	ErrorKindNone ErrorKind = iota
	// ErrorKindValidation is an input problem detected before any network call
	ErrorKindValidation
	// ErrorKindTransport covers network failures, timeouts and malformed responses
	ErrorKindTransport
	// ErrorKindService is a well-formed error response from the backend
	ErrorKindService
)

// String returns a short name of the kind, used in logs
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNone:
		return "none"
	case ErrorKindValidation:
		return "validation"
	case ErrorKindTransport:
		return "transport"
	case ErrorKindService:
		return "service"
	default:
		return "unknown"
	}
}
