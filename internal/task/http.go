package task

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// Handler exposes the store over HTTP twice: a JSON API under /api/tasks for
// tooling, and form endpoints that drive the rendered page. Form posts answer
// with a 303 back to "/" so the browser re-renders the whole list.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Store() *Store {
	return h.store
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	return id, err == nil
}

// GET /api/tasks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// POST /api/tasks
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	t, ok := h.store.Add(body.Title)
	if !ok {
		// The page swallows blank adds; API callers get told.
		writeErr(w, http.StatusBadRequest, "title is required")
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// GET /api/tasks/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	t, found := h.store.Get(id)
	if !found {
		writeErr(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// PUT /api/tasks/{id} carries save-edit semantics: a non-blank title
// replaces the old one and revives a completed task.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	var body struct {
		Title string `json:"title"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(body.Title) == "" {
		writeErr(w, http.StatusBadRequest, "title is required")
		return
	}
	if _, found := h.store.Get(id); !found {
		writeErr(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}

	t, _ := h.store.SaveEdit(id, body.Title)
	writeJSON(w, http.StatusOK, t)
}

// DELETE /api/tasks/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	if !h.store.Delete(id) {
		writeErr(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/tasks/{id}/complete
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	t, found := h.store.Complete(id)
	if !found {
		writeErr(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func redirectToList(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// POST /tasks/add
func (h *Handler) FormAdd(w http.ResponseWriter, r *http.Request) {
	h.store.Add(r.FormValue("title"))
	redirectToList(w, r)
}

// POST /tasks/{id}/delete
func (h *Handler) FormDelete(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		h.store.Delete(id)
	}
	redirectToList(w, r)
}

// POST /tasks/{id}/edit
func (h *Handler) FormStartEdit(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		h.store.StartEdit(id)
	}
	redirectToList(w, r)
}

// POST /tasks/{id}/cancel
func (h *Handler) FormCancelEdit(w http.ResponseWriter, r *http.Request) {
	h.store.CancelEdit()
	redirectToList(w, r)
}

// POST /tasks/{id}/save
func (h *Handler) FormSaveEdit(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		h.store.SaveEdit(id, r.FormValue("title"))
	}
	redirectToList(w, r)
}

// POST /tasks/{id}/complete
func (h *Handler) FormComplete(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		h.store.Complete(id)
	}
	redirectToList(w, r)
}
