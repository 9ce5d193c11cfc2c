package http

import (
	"log"

	"github.com/gin-gonic/gin"

	"videoapi/internal/core"
	"videoapi/internal/http/middleware"
	"videoapi/internal/rate"
)

type Options struct {
	RateLimiter *rate.Limiter // applied to PUT, PATCH and DELETE only
	CORSOrigins []string      // empty disables CORS headers
}

// NewRouter sets up all routes and middleware.
func NewRouter(svc *core.Service, opts Options) *gin.Engine {
	r := gin.New()
	// Treat all upstreams as untrusted (removes the warning).
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("SetTrustedProxies: %v", err)
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recover())
	if len(opts.CORSOrigins) > 0 {
		r.Use(middleware.CORS(opts.CORSOrigins))
	}

	h := NewHandlers(svc)

	r.GET("/health", h.Health)
	RegisterStatic(r)

	r.GET("/videos", h.ListVideos)

	limit := middleware.RateLimit(opts.RateLimiter)
	v := r.Group("/video")
	v.GET("/:id", h.GetVideo)
	v.PUT("/:id", limit, h.CreateVideo)
	v.PATCH("/:id", limit, h.UpdateVideo)
	v.DELETE("/:id", limit, h.DeleteVideo)

	return r
}
