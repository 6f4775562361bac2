package storage

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/samber/lo"
)

// Disk serves files below a root directory. Path cleaning and traversal
// protection come from http.Dir, so every consumer of a Disk resolves
// request paths exactly like http.FileServer does.
type Disk struct {
	root http.Dir
	log  *slog.Logger
}

func NewDisk(log *slog.Logger, root string) Disk {
	return Disk{root: http.Dir(root), log: log}
}

func (d Disk) Open(name string) (http.File, error) {
	f, err := d.root.Open(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		d.log.Warn("Unable to open entry", "name", name, "error", err)
	}
	return f, err
}

func (d Disk) Root() string {
	return string(d.root)
}

// ResolveRoot returns directory when it exists as a directory,
// the current directory otherwise.
func ResolveRoot(directory string) string {
	info, err := os.Stat(directory)
	return lo.Ternary(err == nil && info.IsDir(), directory, ".")
}
