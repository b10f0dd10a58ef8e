package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"serenityplace/internal/middleware"
)

// Deps bundles everything the route tree needs.
type Deps struct {
	Auth    *AuthHandler
	Blog    *BlogHandler
	Gallery *GalleryHandler
	Contact *ContactHandler
	Authn   *middleware.Authenticator
	Logger  *zap.Logger
}

// NewRouter builds the full /api route tree. Gate levels are declared
// here, once per route group; handlers assume the gate already ran.
func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		api.Post("/auth/login", d.Auth.Login)

		api.Group(func(pr chi.Router) {
			pr.Use(d.Authn.RequireStaff)
			pr.Get("/auth/me", d.Auth.Me)
			pr.Put("/auth/profile", d.Auth.UpdateProfile)
			pr.Put("/auth/change-password", d.Auth.ChangePassword)
			pr.Get("/auth/users", d.Auth.ListUsers)
		})
		api.Group(func(ar chi.Router) {
			ar.Use(d.Authn.RequireAdmin)
			ar.Post("/auth/register", d.Auth.Register)
			ar.Put("/auth/users/{id}", d.Auth.UpdateUser)
			ar.Delete("/auth/users/{id}", d.Auth.DeleteUser)
		})

		api.Get("/blog", d.Blog.ListPublished)
		api.Get("/blog/{id}", d.Blog.Get)
		api.Group(func(pr chi.Router) {
			pr.Use(d.Authn.RequireStaff)
			pr.Get("/blog/admin", d.Blog.ListForManager)
			pr.Post("/blog", d.Blog.Create)
			pr.Put("/blog/{id}", d.Blog.Update)
			pr.Delete("/blog/{id}", d.Blog.Delete)
		})

		api.Get("/gallery", d.Gallery.List)
		api.Get("/gallery/featured", d.Gallery.ListFeatured)
		api.Get("/gallery/categories", d.Gallery.Categories)
		api.Get("/gallery/{id}", d.Gallery.Get)
		api.Group(func(pr chi.Router) {
			pr.Use(d.Authn.RequireStaff)
			pr.Post("/gallery", d.Gallery.Create)
			pr.Put("/gallery/{id}", d.Gallery.Update)
			pr.Delete("/gallery/{id}", d.Gallery.Delete)
		})

		api.Post("/contact", d.Contact.Submit)
		api.Group(func(pr chi.Router) {
			pr.Use(d.Authn.RequireStaff)
			pr.Get("/contact", d.Contact.List)
			pr.Get("/contact/stats/summary", d.Contact.Stats)
			pr.Get("/contact/{id}", d.Contact.Get)
			pr.Put("/contact/{id}/status", d.Contact.UpdateStatus)
		})
	})

	return r
}
