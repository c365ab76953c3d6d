package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gtplusnet/ante-official-sub012/attendance/web/handlers/conflict"
	"github.com/gtplusnet/ante-official-sub012/core"
	"github.com/gtplusnet/ante-official-sub012/infrastructure/devops"
	"github.com/gtplusnet/ante-official-sub012/web/middlewares"
)

func main() {
	r := gin.Default()

	dsn := os.Getenv("DSN")
	if dsn == "" {
		// Fall back to the SSM database inventory when no DSN is injected.
		entries, err := devops.LoadDBConfig(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		if len(entries) == 0 {
			log.Fatal("no database configured")
		}
		entry := entries[0]
		dsn = fmt.Sprintf("%s:%s@tcp(%s:3306)/?parseTime=true", entry.Username, entry.Password, entry.Host)
	}

	dm, err := core.New(dsn, 10)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	base64Secret := os.Getenv("ANTE_SIGNING_SECRET")
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r.GET("/api/attendance/manifest/dev", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":     "1.0.0-dev",
			"description": "Attendance Conflict API Manifest for Development",
		})
	})

	protected := r.Group("/api/attendance/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		protected.GET("/hello", func(c *gin.Context) {
			claims, _ := c.Get("claims")
			c.JSON(200, gin.H{
				"message": "Hello device!",
				"claims":  claims,
			})
		})
		conflict.Register(protected, dm)
	}

	r.Run(":8090")
}
