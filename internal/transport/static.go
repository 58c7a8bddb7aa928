package transport

import (
	"net/http"
	"path"
)

// serveLanding serves the landing page in place. http.FileServer redirects
// ".../index.html" to the directory instead.
func serveLanding(root http.FileSystem) http.HandlerFunc {
	name := "/" + path.Base(LandingPage)
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := root.Open(name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	}
}
