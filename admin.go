// admin.go - privacy-conscious visit counting and the admin stats API
package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// visitRecorder is the slice of MetricsStore the tracking middleware needs.
type visitRecorder interface {
	RecordVisit(ctx context.Context, ip, userAgent, path string) error
}

const recordTimeout = 5 * time.Second

// Paths that are never counted as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/certificates/",
	"/PP.jpg",
	"/admin/",
	"/favicon",
	"/healthz",
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

func tracked(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	// Respect Do Not Track
	return r.Header.Get("DNT") != "1"
}

// visitorTrackingMiddleware counts page views in the background.
func visitorTrackingMiddleware(rec visitRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracked(c.Request) {
			c.Next()
			return
		}

		ip, ua, path := c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.Path
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			if err := rec.RecordVisit(ctx, ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

// adminAuthMiddleware requires "Authorization: Bearer <token>".
func adminAuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// setupAdminRoutes mounts the stats API under /admin.
func setupAdminRoutes(r *gin.Engine, metrics *MetricsStore, token string) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(adminAuthMiddleware(token))

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := metrics.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Statistics export for backups or analysis
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := metrics.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error exporting admin stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		log.Printf("Admin stats exported by %s", metrics.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := metrics.Cleanup(c.Request.Context())
		if err != nil {
			log.Printf("Error cleaning up visitor data: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}
