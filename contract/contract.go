//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"net/http"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
}

// Worker runs until ctx is done. Restarting it after a failure is the
// supervisor's job.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// so workers don't have to name themselves for logging.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// FileSystem is the path translation shared by the range handler and the
// generic file server. Both must resolve request paths the same way.
type FileSystem interface {
	Open(name string) (http.File, error)
}

// File is an opened entry of a FileSystem.
type File interface {
	http.File
}
