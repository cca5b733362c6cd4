// Package web embeds the server-rendered views.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var views embed.FS

// NewEngine returns the html engine over the embedded views.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		panic(err) // path is fixed at compile time
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("deref", func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	})
	return engine
}
