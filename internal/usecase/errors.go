package usecase

// TechnicalError wraps infrastructure failures (database, broker). Handlers
// map it to a 500; the drip sweep skips the affected subscriber.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func storeFailure(msg string, err error) error {
	return &TechnicalError{Code: "DATABASE_ERROR", Message: msg, Err: err}
}
