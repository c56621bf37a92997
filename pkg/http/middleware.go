package http

import (
	"net/http"
	"strings"
	"time"

	"airsense.xyz/aqi-prediction-service/pkg/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const ctxKeyClaims = "auth_claims"

// RequireAuth guards the authenticated route group. The browser client
// handles the redirect; the API just answers 401.
func (rs *RestfulServer) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	claims, err := rs.Auth.ValidateToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.Set(ctxKeyClaims, claims)
	c.Next()
}

func currentClaims(c *gin.Context) *auth.Claims {
	value, ok := c.Get(ctxKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}

func SetupCORS(allowedOrigins string) gin.HandlerFunc {
	origins := strings.Split(allowedOrigins, ",")

	if len(origins) == 1 && (origins[0] == "*" || origins[0] == "") {
		return cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		})
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
