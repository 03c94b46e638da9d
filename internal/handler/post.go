package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/roomanalam/My-blog/internal/domain"
	"github.com/roomanalam/My-blog/internal/service"
	"github.com/roomanalam/My-blog/internal/view"
)

// PostHandler handles the post listing, detail, and management routes.
type PostHandler struct {
	posts    *service.PostService
	comments *service.CommentService
	adminID  int64
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService, comments *service.CommentService, adminID int64) *PostHandler {
	return &PostHandler{posts: posts, comments: comments, adminID: adminID}
}

// HandleIndex renders the post listing.
// GET /
func (h *PostHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		slog.Error("list posts", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	entries := make([]view.IndexPost, 0, len(posts))
	for _, post := range posts {
		count, err := h.comments.CountByPost(r.Context(), post.ID)
		if err != nil {
			slog.Error("count comments", "error", err, "post_id", post.ID)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		entries = append(entries, view.IndexPost{Post: post, CommentCount: count})
	}

	data := view.IndexData{
		Page:  h.page(w, r, "The Blog"),
		Posts: entries,
	}
	if err := view.Render(w, "index.html", data); err != nil {
		slog.Error("render index page", "error", err)
	}
}

// HandleShow renders a post with its comments.
// GET /post/{id}
func (h *PostHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	post, ok := h.lookupPost(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(r.Context(), post.ID)
	if err != nil {
		slog.Error("list comments", "error", err, "post_id", post.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := view.PostData{
		Page:     h.page(w, r, post.Title),
		Post:     post,
		Comments: comments,
	}
	if err := view.Render(w, "post.html", data); err != nil {
		slog.Error("render post page", "error", err)
	}
}

// HandleComment processes a comment submission on a post. Anonymous
// visitors are redirected to the login page with a prompt; no row is
// created for them.
// POST /post/{id}
func (h *PostHandler) HandleComment(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user := UserFromContext(r.Context())
	if user == nil {
		setFlash(w, "You need to login or register to comment.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err = h.comments.Create(r.Context(), postID, user.ID, r.PostFormValue("text"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, domain.ErrInvalidInput):
			setFlash(w, "Comment text is required.")
			http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
		default:
			slog.Error("create comment", "error", err, "post_id", postID)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
}

// HandleNewForm renders the post creation form.
// GET /new-post
func (h *PostHandler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	h.renderEditor(w, r, nil, false, "")
}

// HandleCreate processes post creation.
// POST /new-post
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user := UserFromContext(r.Context())
	draft := postFromForm(r)

	post, err := h.posts.Create(r.Context(), user.ID, draft.Title, draft.Subtitle, draft.Body, draft.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateTitle):
			h.renderEditor(w, r, draft, false, "A post with that title already exists.")
		case errors.Is(err, domain.ErrInvalidInput):
			h.renderEditor(w, r, draft, false, err.Error())
		default:
			slog.Error("create post", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	slog.Info("post created", "post_id", post.ID, "title", post.Title)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEditForm renders the edit form pre-filled from the persisted row.
// GET /edit-post/{id}
func (h *PostHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	post, ok := h.lookupPost(w, r, r.PathValue("id"))
	if !ok {
		return
	}
	h.renderEditor(w, r, post, true, "")
}

// HandleEdit applies changes to a post's mutable fields.
// POST /edit-post/{id}
func (h *PostHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	draft := postFromForm(r)
	draft.ID = id

	_, err = h.posts.Update(r.Context(), id, draft.Title, draft.Subtitle, draft.Body, draft.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, domain.ErrDuplicateTitle):
			h.renderEditor(w, r, draft, true, "A post with that title already exists.")
		case errors.Is(err, domain.ErrInvalidInput):
			h.renderEditor(w, r, draft, true, err.Error())
		default:
			slog.Error("update post", "error", err, "post_id", id)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", id), http.StatusSeeOther)
}

// HandleDelete removes a post and, via cascade, its comments.
// GET /delete/{id}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.posts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("delete post", "error", err, "post_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("post deleted", "post_id", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDeleteComment removes a single comment from a post.
// GET|POST /delete-comment/{post_id}/{comment_id}
func (h *PostHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.PathValue("post_id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	commentID, err := strconv.ParseInt(r.PathValue("comment_id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.comments.Delete(r.Context(), postID, commentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("delete comment", "error", err, "comment_id", commentID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
}

// lookupPost parses the id path value and fetches the post, writing the
// appropriate error response on failure.
func (h *PostHandler) lookupPost(w http.ResponseWriter, r *http.Request, rawID string) (*domain.Post, bool) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil, false
	}

	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		slog.Error("get post", "error", err, "post_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return post, true
}

func (h *PostHandler) page(w http.ResponseWriter, r *http.Request, title string) view.Page {
	page := view.Page{Title: title, Flash: popFlash(w, r)}
	if user := UserFromContext(r.Context()); user != nil {
		page.UserName = user.Name
		page.IsAdmin = user.ID == h.adminID
	}
	return page
}

func (h *PostHandler) renderEditor(w http.ResponseWriter, r *http.Request, post *domain.Post, isEdit bool, flash string) {
	page := h.page(w, r, "New Post")
	if isEdit {
		page.Title = "Edit Post"
	}
	if flash != "" {
		page.Flash = flash
	}

	data := view.EditorData{Page: page, Post: post, IsEdit: isEdit}
	if err := view.Render(w, "make_post.html", data); err != nil {
		slog.Error("render post editor", "error", err)
	}
}

func postFromForm(r *http.Request) *domain.Post {
	return &domain.Post{
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		Body:     r.PostFormValue("body"),
		ImageURL: r.PostFormValue("img_url"),
	}
}
