package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from API consumers.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope code for unhandled failures.
	InternalServerErrorCode = 500

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
