package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// ActionGuard rejects a request while an identical action is still running
// for the same order. The wizard UI disables the triggering button, but the
// server does not rely on that: a duplicate recommendation call for the same
// session and step gets 409.
func ActionGuard() gin.HandlerFunc {
	var mu sync.Mutex
	inFlight := make(map[string]bool)

	return func(c *gin.Context) {
		key := c.Param("id") + ":" + c.FullPath()

		mu.Lock()
		if inFlight[key] {
			mu.Unlock()
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "action already in progress",
			})
			return
		}
		inFlight[key] = true
		mu.Unlock()

		defer func() {
			mu.Lock()
			delete(inFlight, key)
			mu.Unlock()
		}()

		c.Next()
	}
}
