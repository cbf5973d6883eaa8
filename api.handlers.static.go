package main

import (
	"net/http"
	"path"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ReservedPrefixes lists the first path segments owned by the api. Assets
// stored under these names are never served, api routes always win.
var ReservedPrefixes = []string{"api", "books"}

// assetsFileSystem restricts http.Dir to regular files. A folder is only
// reachable when it holds an index.html, so listings are never produced.
type assetsFileSystem struct {
	fs http.FileSystem
}

func (afs assetsFileSystem) Open(name string) (http.File, error) {
	f, err := afs.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if info.IsDir() {
		index, err := afs.fs.Open(path.Join(name, "index.html"))
		if err != nil {
			f.Close()
			return nil, err
		}
		index.Close()
	}

	return f, nil
}

// NewAssetsHandler returns the file server for the given root folder.
// Path cleaning and traversal protection are left to http.FileServer.
// A missing root folder only means every lookup ends with 404.
func NewAssetsHandler(root string) http.Handler {
	return http.FileServer(assetsFileSystem{http.Dir(root)})
}

// IsReservedPath reports whether the path belongs to one of the api prefixes.
func IsReservedPath(p string) bool {
	segment := strings.SplitN(strings.TrimPrefix(path.Clean("/"+p), "/"), "/", 2)[0]
	for _, prefix := range ReservedPrefixes {
		if segment == prefix {
			return true
		}
	}
	return false
}

// StaticFiles serves the prebuilt frontend for every request which
// did not match an api route.
func (api *APIHandler) StaticFiles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if IsReservedPath(r.URL.Path) {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	api.assets.ServeHTTP(w, r)
}
