package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BasicAuth verifies HTTP basic credentials against an injected credential
// map. Save routes get the admin accounts only; read routes get the merged
// admin and reader accounts.
func BasicAuth(accounts map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !credentialsMatch(accounts, user, pass) {
			c.Header("WWW-Authenticate", `Basic realm="roster"`)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Set("username", user)
		c.Next()
	}
}

// MergeAccounts combines credential maps; later maps win on collisions
func MergeAccounts(maps ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, m := range maps {
		for user, pass := range m {
			merged[user] = pass
		}
	}
	return merged
}

func credentialsMatch(accounts map[string]string, user, pass string) bool {
	expected, ok := accounts[user]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(pass)) == 1
}
