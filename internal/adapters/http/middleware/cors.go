package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	AllowCredentials bool
	MaxAge           time.Duration
}

// corsMethods lists every method a browser may ask for in a preflight.
var corsMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// corsAllowedHeaders are always allowed. Preflights add whatever headers
// they request on top, since a literal "*" is not honored on credentialed
// requests.
var corsAllowedHeaders = []string{
	"Origin",
	"Accept",
	"Accept-Language",
	"Content-Type",
	"Content-Length",
	"Authorization",
	"X-Requested-With",
	HeaderRequestID,
	HeaderCorrelationID,
	"Traceparent",
	"Tracestate",
}

// corsExposedHeaders are readable from browser scripts.
var corsExposedHeaders = []string{
	"Location",
	HeaderRequestID,
	HeaderCorrelationID,
	"X-Trace-ID",
}

// CORS returns middleware that allows any cross-origin request.
//
// The request origin is echoed back instead of "*" because browsers reject
// a wildcard origin on credentialed requests. For the same reason the
// headers named in Access-Control-Request-Headers are reflected into
// Access-Control-Allow-Headers.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	handler := cors.New(corsConfig(cfg, corsAllowedHeaders))

	return func(c *gin.Context) {
		requested := requestedHeaders(c.Request)
		if c.Request.Method != http.MethodOptions || len(requested) == 0 {
			handler(c)
			return
		}

		headers := make([]string, 0, len(corsAllowedHeaders)+len(requested))
		headers = append(headers, corsAllowedHeaders...)
		headers = append(headers, requested...)

		cors.New(corsConfig(cfg, headers))(c)
	}
}

func corsConfig(cfg CORSConfig, allowHeaders []string) cors.Config {
	return cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     corsMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    corsExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
}

// requestedHeaders splits the preflight's Access-Control-Request-Headers.
func requestedHeaders(r *http.Request) []string {
	var out []string

	for _, value := range r.Header.Values("Access-Control-Request-Headers") {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}

	return out
}
