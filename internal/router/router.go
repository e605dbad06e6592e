package router

import (
	"net/http"

	"deli-admin/internal/handler"
	"deli-admin/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Menu     *handler.MenuHandler
	Import   *handler.ImportHandler
	Page     *handler.PageHandler
	Settings *handler.SettingsHandler
	Auth     *handler.AuthHandler
}

// Options configures the parts of the router that depend on deployment.
type Options struct {
	// AllowedOrigins lists the browser origins allowed by CORS.
	AllowedOrigins []string

	// MediaDir, when set, is served read-only under /media/ for the local
	// storage driver.
	MediaDir string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, authenticator middleware.Authenticator, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/menu-items", h.Menu.List)
	mux.HandleFunc("POST /api/menu-items", h.Menu.Create)
	mux.HandleFunc("GET /api/menu-items/stats", h.Menu.Stats)
	mux.HandleFunc("POST /api/menu-items/images", h.Menu.UploadImage)
	mux.HandleFunc("GET /api/menu-items/{id}", h.Menu.GetByID)
	mux.HandleFunc("PUT /api/menu-items/{id}", h.Menu.Update)
	mux.HandleFunc("DELETE /api/menu-items/{id}", h.Menu.Delete)
	mux.HandleFunc("PUT /api/menu-items/{id}/image", h.Menu.SetImage)
	mux.HandleFunc("GET /api/sections", h.Menu.Sections)

	mux.HandleFunc("POST /api/imports", h.Import.Import)
	mux.HandleFunc("GET /api/imports/status", h.Import.Status)

	mux.HandleFunc("GET /api/pages", h.Page.Get)
	mux.HandleFunc("PUT /api/pages/{gallery}", h.Page.Publish)
	mux.HandleFunc("POST /api/pages/{gallery}/images", h.Page.AddImage)
	mux.HandleFunc("DELETE /api/pages/{gallery}/images/{index}", h.Page.RemoveImage)

	mux.HandleFunc("GET /api/settings/announcement", h.Settings.GetAnnouncement)
	mux.HandleFunc("PUT /api/settings/announcement", h.Settings.SetAnnouncement)

	if opts.MediaDir != "" {
		mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(opts.MediaDir))))
	}

	// Apply middleware in order: Recovery -> Logging -> CORS -> SessionAuth
	var handler http.Handler = mux
	handler = middleware.SessionAuth(authenticator, logger)(handler)
	handler = middleware.CORS(opts.AllowedOrigins)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
