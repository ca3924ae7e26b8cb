package apperror

// AppError is a custom error type that carries an HTTP status code and a
// stable machine-readable code alongside the user-facing message.
type AppError struct {
	Status  int    // HTTP status code (e.g., 400, 404)
	Code    string // Stable error code (e.g., "end_before_start")
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status, code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
