package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"autocare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TokenStore checks whether a principal still holds a live session token
// hash. Both the user and admin repositories satisfy it.
type TokenStore interface {
	HasTokenHash(principalID, hash string) (bool, error)
}

const authCacheTTL = time.Hour

// RequireAuth is the session gate for one principal namespace ("user" or
// "admin"). A token passes only when its signature and expiry check out, it
// was minted for this namespace, and its hash is still in the principal's
// stored token set — the stored set is what makes server-side revocation of
// an unexpired token possible. The resolved principal ID lands in the gin
// context under "<namespace>ID".
func RequireAuth(namespace string, store TokenStore) gin.HandlerFunc {
	ctxKey := namespace + "ID"

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		// Signature, expiry, and namespace all come from the token itself.
		principalID, ns, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || principalID == "" || ns != namespace {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		hash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + namespace + ":" + principalID + ":" + hash

		// Membership in the live token set, cached to spare a store round
		// trip per request. Cache trouble degrades to the store lookup.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			ctx := context.Background()
			cached, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cached == "1" {
				_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
				c.Set(ctxKey, principalID)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				utils.GetLogger().Warn("Auth cache lookup failed, falling back to store", zap.Error(err))
			}
		}

		live, err := store.HasTokenHash(principalID, hash)
		if err != nil {
			utils.GetLogger().Error("Auth gate store lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if !live {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(context.Background(), cacheKey, "1", authCacheTTL).Err()
		}

		c.Set(ctxKey, principalID)
		c.Next()
	}
}
