package frontend

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const indexFile = "index.html"

// assetFS narrows an http.FileSystem to what a plain static server should
// expose: dot-files are hidden and directories without an index page do not
// exist, so http.FileServer never renders a listing.
type assetFS struct {
	fs http.FileSystem
}

func (a assetFS) Open(name string) (http.File, error) {
	if hasDotSegment(name) {
		return nil, fs.ErrNotExist
	}

	f, err := a.fs.Open(name)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !st.IsDir() {
		return f, nil
	}

	idx, err := a.fs.Open(path.Join(name, indexFile))
	if err != nil {
		_ = f.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	_ = idx.Close()
	return f, nil
}

func hasDotSegment(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") && seg != "." && seg != ".." {
			return true
		}
	}
	return false
}

// StaticHandler serves assets from root with http.FileServer semantics.
func StaticHandler(root fs.FS) http.Handler {
	return http.FileServer(assetFS{fs: http.FS(root)})
}
