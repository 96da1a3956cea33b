package templates

import (
	"embed"
	"html/template"
)

// SignupPage is the name handlers render the form page by
const SignupPage = "signup.html"

//go:embed *.html
var files embed.FS

// Load parses the embedded page templates
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}

// MustLoad is Load for wiring code that cannot continue without templates
func MustLoad() *template.Template {
	return template.Must(Load())
}
