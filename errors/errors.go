package errors

import "fmt"

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrMalformedRange      = fmt.Errorf("malformed range header")
	ErrRangeNotSatisfiable = fmt.Errorf("requested range not satisfiable")
	ErrInvalidConfig       = fmt.Errorf("invalid configuration")
)
