// Package serverapp assembles the full HTTP surface: the rendered list page,
// the form endpoints behind it, the JSON API, static assets, and middleware.
package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"ticklist/internal/config"
	"ticklist/internal/export"
	"ticklist/internal/httpmw"
	"ticklist/internal/seed"
	"ticklist/internal/server"
	"ticklist/internal/task"
	"ticklist/internal/ui"
	staticfiles "ticklist/static"
)

type Options struct {
	Config        *config.Config
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger
}

// App owns the store and the assembled handler. The store is exposed so the
// startup seed (and tests) can reach it.
type App struct {
	Handler http.Handler
	Store   *task.Store
	Config  *config.Config
	Logger  *log.Logger
}

func New(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = opts.Config.Static.Dir
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	store := task.NewStore()
	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "ticklist",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	// The list page: a fresh full render from a store snapshot per request.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		data := ui.PageData{
			Tasks:     store.List(),
			EditingID: store.EditingID(),
			Remaining: store.Remaining(),
		}
		templ.Handler(ui.ListPage(data)).ServeHTTP(w, r)
	})

	th := task.NewHandler(store)

	// Form endpoints the page posts to; each 303s back to "/".
	server.Handle(mux, rr, "POST /tasks/add", "Add a task from the page form", "", th.FormAdd)
	server.Handle(mux, rr, "POST /tasks/{id}/delete", "Delete a task", "", th.FormDelete)
	server.Handle(mux, rr, "POST /tasks/{id}/edit", "Enter edit mode", "", th.FormStartEdit)
	server.Handle(mux, rr, "POST /tasks/{id}/cancel", "Leave edit mode without saving", "", th.FormCancelEdit)
	server.Handle(mux, rr, "POST /tasks/{id}/save", "Save an edited title", "", th.FormSaveEdit)
	server.Handle(mux, rr, "POST /tasks/{id}/complete", "Mark a task completed", "", th.FormComplete)

	// JSON API mirroring the store.
	server.Handle(mux, rr, "GET /api/tasks", "List tasks", "", th.List)
	server.Handle(mux, rr, "POST /api/tasks", "Create task", `{"title":"pay bills"}`, th.Create)
	server.Handle(mux, rr, "GET /api/tasks/{id}", "Get one task", "", th.Get)
	server.Handle(mux, rr, "PUT /api/tasks/{id}", "Replace title (revives completed tasks)", `{"title":"pay bills today"}`, th.Update)
	server.Handle(mux, rr, "DELETE /api/tasks/{id}", "Delete task", "", th.Delete)
	server.Handle(mux, rr, "POST /api/tasks/{id}/complete", "Complete task", "", th.Complete)

	exporter := export.NewExporter(store)
	server.Handle(mux, rr, "GET /api/tasks/export", "Export tasks as json, csv, or pdf", "", exporter.ServeHTTP)

	server.Handle(mux, rr, "GET /api/stats", "Task counts", "", func(w http.ResponseWriter, r *http.Request) {
		total := store.Len()
		remaining := store.Remaining()
		writeJSON(w, http.StatusOK, map[string]any{
			"total":     total,
			"remaining": remaining,
			"completed": total - remaining,
		})
	})

	server.RegisterAdminUI(mux, rr, opts.Config.Server.Addr)

	handler := httpmw.Chain(
		mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithAccessLog(opts.Logger),
	)

	return &App{
		Handler: handler,
		Store:   store,
		Config:  opts.Config,
		Logger:  opts.Logger,
	}, nil
}

// StartSeed kicks off the one-time bootstrap fetch in the background. The
// server keeps serving (an empty list) while it runs; failure is logged and
// the list simply starts empty.
func (a *App) StartSeed(ctx context.Context) {
	if !a.Config.SeedEnabled() {
		a.Logger.Printf("seed disabled, starting empty")
		return
	}
	f := seed.NewFetcher(a.Config.Seed.URL, a.Config.SeedTimeout(), a.Logger)
	go f.Load(ctx, a.Store)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
