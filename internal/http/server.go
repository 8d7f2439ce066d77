package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/services"
	"portfolio-backend-go/internal/store"
)

type Server struct {
	Config     config.Config
	Content    *services.ContentService
	Media      *services.MediaService
	Tokens     services.TokenService
	Auth       *services.AdminAuth
	MetricsHub *services.MetricsHub
}

func NewServer(st *store.Store, cfg config.Config, hub *services.MetricsHub) (*Server, error) {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	auth, err := services.NewAdminAuth(tokens, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	return &Server{
		Config:     cfg,
		Content:    services.NewContentService(st),
		Media:      services.NewMediaService(st, cfg.MediaStoragePath),
		Tokens:     tokens,
		Auth:       auth,
		MetricsHub: hub,
	}, nil
}

// Router builds the API. Content reads are public so the portfolio page can
// render without credentials; every mutation requires the admin token.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	adminOnly := []func(http.Handler) http.Handler{
		WithAuth(s.Tokens),
		RequireRole("ADMIN"),
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.Login)
		api.Post("/auth/refresh", s.Refresh)

		api.Route("/content", func(content chi.Router) {
			content.Get("/", s.GetAllContent)

			content.Get("/hero", s.GetHero)
			content.With(adminOnly...).Put("/hero", s.UpdateHero)

			content.Route("/skills", func(rt chi.Router) {
				registerCRUD(rt, s.Content.Skills, "Skill", adminOnly...)
			})
			content.Route("/career", func(rt chi.Router) {
				registerCRUD(rt, s.Content.Career, "Career entry", adminOnly...)
			})
			content.Route("/projects", func(rt chi.Router) {
				registerCRUD(rt, s.Content.Projects, "Project", adminOnly...)
			})
			content.Route("/social-media", func(rt chi.Router) {
				registerCRUD(rt, s.Content.Social, "Social media account", adminOnly...)
			})

			content.Get("/contact", s.GetContact)
			content.With(adminOnly...).Put("/contact", s.UpdateContact)

			content.Get("/theme", s.GetTheme)
			content.With(adminOnly...).Put("/theme", s.UpdateTheme)

			content.Get("/admin-settings", s.GetAdminSettings)
			content.With(adminOnly...).Put("/admin-settings", s.UpdateAdminSettings)
		})

		api.Route("/users", func(users chi.Router) {
			users.Get("/", s.ListUsers)
			users.Get("/cities", s.GetCities)
			users.Post("/", s.CreateUser)
			users.Put("/", s.UpdateUser)
			users.Delete("/", s.DeleteUser)
		})

		api.Route("/admin", func(admin chi.Router) {
			for _, guard := range adminOnly {
				admin.Use(guard)
			}
			admin.Get("/metrics/history", s.MetricsHistory)
		})

		api.Route("/media", func(media chi.Router) {
			media.Get("/assets/{assetId}/content", s.MediaContent)
			media.Group(func(g chi.Router) {
				for _, guard := range adminOnly {
					g.Use(guard)
				}
				g.Post("/uploads/image", s.UploadImage)
				g.Delete("/assets/{assetId}", s.DeleteMedia)
			})
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
