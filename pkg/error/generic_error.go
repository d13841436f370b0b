package error

// GenericError is implemented by every application error that knows how to
// present itself over HTTP. The recovery middleware converts panicked
// GenericError values into the standard response envelope.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
