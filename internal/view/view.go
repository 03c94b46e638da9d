// Package view renders the server-side HTML pages. Markup is deliberately
// minimal; the pages exist to carry the forms and content, not styling.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/roomanalam/My-blog/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Page carries the fields every template needs.
type Page struct {
	Title    string
	UserName string // empty when anonymous
	IsAdmin  bool
	Flash    string
}

// IndexPost is a post listing entry with its comment count.
type IndexPost struct {
	domain.Post
	CommentCount int
}

// IndexData feeds the post listing page.
type IndexData struct {
	Page
	Posts []IndexPost
}

// AuthFormData feeds the register and login pages. Email and Name echo the
// submitted values back when the form is re-rendered with an error.
type AuthFormData struct {
	Page
	Email string
	Name  string
}

// PostData feeds the post detail page.
type PostData struct {
	Page
	Post     *domain.Post
	Comments []domain.Comment
}

// EditorData feeds the post creation and edit forms.
type EditorData struct {
	Page
	Post   *domain.Post
	IsEdit bool
}

// Render executes the named page template with the given data.
func Render(w io.Writer, name string, data any) error {
	return pages.ExecuteTemplate(w, name, data)
}
