package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-link-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-link-service/internal/app"
)

// LinkHandler handles URL shortener endpoints.
type LinkHandler struct {
	service        *app.LinkService
	baseURL        string
	trustForwarded bool
}

// LinkHandlerOption configures a LinkHandler.
type LinkHandlerOption func(*LinkHandler)

// WithForwardedHeaders derives the QR origin from X-Forwarded-Proto and
// X-Forwarded-Host. Enable it only behind a proxy that sets both.
func WithForwardedHeaders(trust bool) LinkHandlerOption {
	return func(h *LinkHandler) {
		h.trustForwarded = trust
	}
}

// NewLinkHandler creates a link handler. baseURL is the public origin put
// into QR codes; when empty it is derived from each request's scheme and
// Host.
func NewLinkHandler(service *app.LinkService, baseURL string, opts ...LinkHandlerOption) *LinkHandler {
	h := &LinkHandler{
		service: service,
		baseURL: baseURL,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Shorten handles POST /shorten.
// The URL is stored as given, without validation.
func (h *LinkHandler) Shorten(c *gin.Context) {
	var req dto.ShortenRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	link := h.service.Shorten(c.Request.Context(), *req.URL)

	c.JSON(http.StatusOK, dto.NewShortenResponse(link))
}

// Redirect handles GET /path/:short with a 302 to the stored URL.
// The Location header carries the URL verbatim.
func (h *LinkHandler) Redirect(c *gin.Context) {
	url, err := h.service.Resolve(c.Request.Context(), c.Param("short"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", url)
	c.Status(http.StatusFound)
}

// Delete handles DELETE /shorten/:short.
func (h *LinkHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("short")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// QRCode handles GET /shorten/:short/qr.
// Responds with a PNG encoding the redirect URL of the short link.
func (h *LinkHandler) QRCode(c *gin.Context) {
	var query dto.QRCodeQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	png, err := h.service.QRCode(c.Request.Context(), c.Param("short"), h.origin(c), query.Size)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// origin returns the configured base URL or one built from the request.
// Forwarded headers are ignored unless the handler trusts them.
func (h *LinkHandler) origin(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	host := c.Request.Host

	if h.trustForwarded {
		if proto := firstForwarded(c.GetHeader("X-Forwarded-Proto")); proto == "http" || proto == "https" {
			scheme = proto
		}

		if fwdHost := firstForwarded(c.GetHeader("X-Forwarded-Host")); fwdHost != "" {
			host = fwdHost
		}
	}

	return scheme + "://" + host
}

// firstForwarded returns the first entry of a comma-separated forwarded header.
func firstForwarded(value string) string {
	first, _, _ := strings.Cut(value, ",")
	return strings.ToLower(strings.TrimSpace(first))
}

// RegisterLinkRoutes registers shortener routes on the given router group.
func (h *LinkHandler) RegisterLinkRoutes(rg *gin.RouterGroup) {
	rg.POST("/shorten", h.Shorten)
	rg.DELETE("/shorten/:short", h.Delete)
	rg.GET("/shorten/:short/qr", h.QRCode)
	rg.GET(strings.TrimSuffix(app.RedirectPathPrefix, "/")+"/:short", h.Redirect)
}
