package handler

import (
	"log/slog"
	"net/http"

	"github.com/roomanalam/My-blog/internal/view"
)

// HandleAbout renders the about page.
func HandleAbout(w http.ResponseWriter, r *http.Request) {
	renderStatic(w, r, "about.html", "About")
}

// HandleContact renders the contact page.
func HandleContact(w http.ResponseWriter, r *http.Request) {
	renderStatic(w, r, "contact.html", "Contact")
}

func renderStatic(w http.ResponseWriter, r *http.Request, template, title string) {
	page := view.Page{Title: title}
	if user := UserFromContext(r.Context()); user != nil {
		page.UserName = user.Name
	}
	if err := view.Render(w, template, page); err != nil {
		slog.Error("render static page", "error", err, "template", template)
	}
}
