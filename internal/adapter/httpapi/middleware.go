package httpapi

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

const (
	maxTrackedClients = 4096
	clientIdleExpiry  = 3 * time.Minute
)

// securityHeaders sets browser hardening headers on every response.
// HSTS is only meaningful behind TLS, so it is limited to production.
func (s *Server) securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hdr := w.Header()
		hdr.Set("X-Content-Type-Options", "nosniff")
		hdr.Set("X-Frame-Options", "DENY")
		hdr.Set("X-XSS-Protection", "1; mode=block")
		hdr.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if s.cfg.IsProduction() {
			hdr.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		next.ServeHTTP(w, r)
	})
}

// cors answers cross-origin requests for the origins in CORS_ORIGINS.
// A wildcard entry echoes the request origin back verbatim instead of
// sending "*"; browsers reject "*" on credentialed requests.
func (s *Server) cors(next http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool)
	for _, o := range strings.Split(s.cfg.CORSOrigins, ",") {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			allowAll = true
		default:
			allowed[o] = true
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hdr := w.Header()
		if origin := r.Header.Get("Origin"); origin != "" && (allowAll || allowed[origin]) {
			hdr.Set("Access-Control-Allow-Origin", origin)
			hdr.Set("Access-Control-Allow-Credentials", "true")
			hdr.Add("Vary", "Origin")
		}

		// Preflights never reach the mux; its method-qualified patterns
		// would answer OPTIONS with 405.
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			hdr.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
			hdr.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			hdr.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sizeLimit rejects oversized requests early via Content-Length and bounds
// chunked bodies with MaxBytesReader.
func (s *Server) sizeLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxBodyBytes {
			s.writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) rateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.allow(clientIP(r)) {
			s.writeError(w, http.StatusTooManyRequests, "リクエストが多すぎます。しばらくしてから再試行してください。")
			return
		}
		next(w, r)
	}
}

// instrument records request metrics and an access log entry per route.
func (s *Server) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		s.deps.Metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		s.deps.Metrics.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		s.logger.Info("request handled",
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"duration_ms", elapsed.Milliseconds(),
			"client", clientIP(r))
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// routeName strips the method from a ServeMux pattern so metric labels and
// log fields stay low-cardinality.
func routeName(pattern string) string {
	if i := strings.IndexByte(pattern, ' '); i >= 0 {
		pattern = pattern[i+1:]
	}
	if pattern == "/{$}" {
		return "/"
	}
	return pattern
}

// clientIP extracts the peer address without the port. Forwarding headers
// are not consulted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// visitor pairs a token bucket with its last activity for eviction.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter applies an independent token-bucket limit per client IP.
type clientLimiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*visitor
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		visitors: make(map[string]*visitor),
	}
}

func (cl *clientLimiter) allow(ip string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	v, ok := cl.visitors[ip]
	if !ok {
		if len(cl.visitors) >= maxTrackedClients {
			cl.evictIdleLocked()
		}
		v = &visitor{limiter: rate.NewLimiter(cl.rps, cl.burst)}
		cl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

// evictIdleLocked drops visitors idle longer than clientIdleExpiry. When
// every tracked client is recent the whole map is reset; the memory bound
// takes priority over limiter continuity.
func (cl *clientLimiter) evictIdleLocked() {
	cutoff := time.Now().Add(-clientIdleExpiry)
	for ip, v := range cl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(cl.visitors, ip)
		}
	}
	if len(cl.visitors) >= maxTrackedClients {
		cl.visitors = make(map[string]*visitor)
	}
}
