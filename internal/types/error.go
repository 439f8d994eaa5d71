package types

// ErrorKind tags a failure with its taxonomy class. Handlers translate kinds
// to HTTP status codes; nothing below the handler layer knows about HTTP.
type ErrorKind string

const (
	ErrorKindNotFound        ErrorKind = "not_found"
	ErrorKindForbidden       ErrorKind = "forbidden"
	ErrorKindUnauthenticated ErrorKind = "unauthenticated"
	ErrorKindConflict        ErrorKind = "conflict"
	ErrorKindInactiveAccount ErrorKind = "inactive_account"
	ErrorKindUpstreamAuth    ErrorKind = "upstream_auth"
	ErrorKindInternal        ErrorKind = "internal"
)

type AppError struct {
	Kind    ErrorKind `json:"-"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Fixed failure taxonomy. Messages are part of the public API contract and
// must not drift.
var (
	ErrBookingNotFound = &AppError{
		Kind:    ErrorKindNotFound,
		Message: "Booking not found",
	}
	ErrLocationNotFound = &AppError{
		Kind:    ErrorKindNotFound,
		Message: "Location not found",
	}
	ErrBookingModifyForbidden = &AppError{
		Kind:    ErrorKindForbidden,
		Message: "Cannot modify a booking you do not own",
	}
	ErrInvalidCredentials = &AppError{
		Kind:    ErrorKindUnauthenticated,
		Message: "Could not validate credentials",
	}
	ErrEmailAlreadyUsed = &AppError{
		Kind:    ErrorKindConflict,
		Message: "This email is already registered and cannot be used with a 3rd party identity provider",
	}
	ErrInactiveUser = &AppError{
		Kind:    ErrorKindInactiveAccount,
		Message: "Inactive user",
	}
	ErrInvalidAWSCredentials = &AppError{
		Kind:    ErrorKindUpstreamAuth,
		Message: "Could not validate AWS credentials",
	}
	ErrInvalidGoogleCredentials = &AppError{
		Kind:    ErrorKindUpstreamAuth,
		Message: "Could not validate Google credentials",
	}
)

// Internal wraps an unexpected failure behind a caller-safe message.
func Internal(message string) *AppError {
	return &AppError{Kind: ErrorKindInternal, Message: message}
}
