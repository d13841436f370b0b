package utils

// ResponseData is the standard JSON envelope for every REST response.
// Status is mirrored into the HTTP status code by the handler or the
// recovery middleware.
type ResponseData struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}

// PanicIfNeeded panics when err is a real error so the recovery middleware
// can translate it into the response envelope. Handlers call this instead of
// threading error returns through every layer.
func PanicIfNeeded(err any) {
	if err != nil {
		panic(err)
	}
}
