package pkg

// AppError is the error shape surfaced at the HTTP boundary.
//
// Code is a stable machine-readable identifier; Message is safe to show to
// callers. Err keeps the underlying cause for logs and is never serialized.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON body returned for failed requests.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
