package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/shareshelf/shareshelf/internal/borrow"
	"github.com/shareshelf/shareshelf/internal/database"
	"github.com/shareshelf/shareshelf/internal/handler"
	"github.com/shareshelf/shareshelf/internal/item"
	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/messaging"
	"github.com/shareshelf/shareshelf/internal/metrics"
	"github.com/shareshelf/shareshelf/internal/rewards"
	"github.com/shareshelf/shareshelf/internal/user"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	userService      user.Service
	itemService      item.Service
	borrowService    borrow.Service
	rewardsService   rewards.Service
	messagingService messaging.Service
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, dbPool database.Pool, verifier TokenVerifier, userService user.Service, itemService item.Service, borrowService borrow.Service, rewardsService rewards.Service, messagingService messaging.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(verifier, userService, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Auth routes (no token required)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handler.HandleRegister(userService))
			r.Post("/login", handler.HandleLogin(userService))
		})

		r.Get("/user/me", handler.HandleMe(userService))

		// Item routes
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handler.HandleSubmitItem(itemService))
			r.Get("/", handler.HandleListItems(itemService))
			r.Get("/pending", handler.HandleListPendingItems(itemService))

			r.Route("/{itemID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetItem(itemService))
				r.Put("/", handler.HandleUpdateItem(itemService))
				r.Delete("/", handler.HandleDeleteItem(itemService))
				r.Post("/inspect", handler.HandleInspectItem(itemService))
				r.Post("/approve", handler.HandleApproveItem(itemService))
				r.Post("/reject", handler.HandleRejectItem(itemService))
				r.Put("/status", handler.HandleSetItemStatus(itemService))
			})
		})

		// Borrow routes
		r.Route("/borrow-requests", func(r chi.Router) {
			r.Post("/", handler.HandleCreateBorrowRequest(borrowService))
			r.Get("/", handler.HandleListBorrowRequests(borrowService))

			r.Route("/{requestID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetBorrowRequest(borrowService))
				r.Post("/approve", handler.HandleApproveBorrowRequest(borrowService))
				r.Post("/deny", handler.HandleDenyBorrowRequest(borrowService))
				r.Post("/return", handler.HandleReturnBorrowRequest(borrowService))
			})
		})

		// Rewards routes
		r.Route("/points", func(r chi.Router) {
			r.Get("/", handler.HandleGetPoints(rewardsService))
			r.Get("/transactions", handler.HandleListPointTransactions(rewardsService))
		})

		// Messaging routes
		r.Route("/messages", func(r chi.Router) {
			r.Post("/", handler.HandleSendMessage(messagingService))
			r.Get("/", handler.HandleListInbox(messagingService))
			r.Get("/sent", handler.HandleListSent(messagingService))
			r.Post("/{messageID}/read", handler.HandleMarkMessageRead(messagingService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		userService:      userService,
		itemService:      itemService,
		borrowService:    borrowService,
		rewardsService:   rewardsService,
		messagingService: messagingService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
