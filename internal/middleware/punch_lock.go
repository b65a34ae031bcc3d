package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-ponto/internal/shared/civil"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// PunchLock takes a short Redis lock per (user, civil day) before a punch
// registration. Two browser tabs submitting at once collide here instead
// of both reaching the sequencer; the database uniqueness constraint on
// (user, date, type) remains the correctness backstop either way.
func PunchLock(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetUint("user_id")
		if userID == 0 {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("punch:lock:%d:%s", userID, civil.ISODate(civil.Today()))

		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 10*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A punch for today is already being processed",
			})
			return
		}

		// Handler deletes the lock once the write finished
		c.Set("punch_lock_key", lockKey)

		c.Next()
	}
}
