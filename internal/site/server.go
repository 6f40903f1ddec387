// Package site is the HTTP surface: the full page, the HTMX fragments that
// carry reveal and contact state, and the operational endpoints.
package site

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/18gaurav2021/portfolio/internal/contact"
	"github.com/18gaurav2021/portfolio/internal/observability"
	"github.com/18gaurav2021/portfolio/internal/sections"
	"github.com/18gaurav2021/portfolio/internal/session"
	"github.com/18gaurav2021/portfolio/internal/visits"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	shutdownTimeout  = 5 * time.Second
	retentionEvery   = time.Hour
	defaultRetention = 24 * time.Hour
)

type Options struct {
	Logger zerolog.Logger
	Clock  clockwork.Clock

	// Visits enables page-view and reveal tracking. Nil disables it.
	Visits          *visits.Store
	VisitsRetention time.Duration
	// AdminStats exposes GET /admin/api/stats.
	AdminStats bool

	CORSOrigins    []string
	// TrustedProxies are the addresses whose forwarding headers are
	// believed. Nil means loopback only.
	TrustedProxies []string

	SessionOptions []session.Option
	ContactOptions []contact.Option
}

type Server struct {
	log      zerolog.Logger
	clock    clockwork.Clock
	set      *sections.Set
	sessions *session.Store
	visits   *visits.Store
	opts     Options

	router *gin.Engine
}

func New(opts Options) (*Server, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.VisitsRetention <= 0 {
		opts.VisitsRetention = defaultRetention
	}
	if opts.TrustedProxies == nil {
		opts.TrustedProxies = []string{"127.0.0.1", "::1"}
	}
	observability.RegisterMetrics()

	s := &Server{
		log:    opts.Logger,
		clock:  opts.Clock,
		set:    sections.New(),
		visits: opts.Visits,
		opts:   opts,
	}

	sessOpts := []session.Option{
		session.WithClock(opts.Clock),
		session.WithLogger(opts.Logger),
		session.WithRevealHook(s.recordReveal),
		session.WithContactOptions(opts.ContactOptions...),
	}
	s.sessions = session.NewStore(s.set, append(sessOpts, opts.SessionOptions...)...)

	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("site: parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("site: static assets: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(opts.Logger))
	r.Use(observability.RequestMetricsMiddleware())
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type", "HX-Request", "HX-Trigger", "HX-Target", "HX-Current-URL"},
			MaxAge:       12 * time.Hour,
		}))
	}
	r.Use(s.visitorTrackingMiddleware())
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("site: trusted proxies: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	s.router = r
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	r := s.router

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", s.handleIndex)

	page := r.Group("/", s.sessionMiddleware())
	page.POST("/reveal/:section", s.handleReveal)
	page.GET("/nav/menu", s.handleNavMenu)
	page.POST("/contact/field", s.handleContactField)
	page.POST("/contact", s.handleContactSubmit)
	page.GET("/contact/status", s.handleContactStatus)

	if s.opts.AdminStats {
		r.GET("/admin/api/stats", s.handleAdminStats)
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Sessions is the live visitor store.
func (s *Server) Sessions() *session.Store {
	return s.sessions
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
// The session sweeper and, when tracking is on, the retention purge run
// for the server's lifetime.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.sessions.Run(ctx, session.DefaultSweepInterval)
	}()
	if s.visits != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.visits.RunRetention(ctx, retentionEvery, s.opts.VisitsRetention)
		}()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Info().Str("addr", addr).Msg("listening")

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("site: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	s.log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("site: shutdown: %w", err)
	}
	return nil
}
