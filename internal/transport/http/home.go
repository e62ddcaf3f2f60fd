package http

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/index.html
var templateFiles embed.FS

var homeTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

// HomeHandler serves the chat page at the root path and a JSON 404 for
// everything else that fell through the mux.
func HomeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			NotFoundHandler().ServeHTTP(w, r)
			return
		}
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = homeTemplate.Execute(w, nil)
	})
}
