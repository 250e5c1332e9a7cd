package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Greet handles GET /greet/:name with a plain-text greeting.
func Greet(c *gin.Context) {
	c.String(http.StatusOK, "Hello %s!", c.Param("name"))
}
