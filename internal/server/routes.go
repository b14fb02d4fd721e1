// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"github.com/VishardMehta/TextDrop/internal/botlog"
	"github.com/VishardMehta/TextDrop/internal/controller/content"
	"github.com/VishardMehta/TextDrop/internal/middleware"
	"github.com/VishardMehta/TextDrop/internal/share"
	"github.com/VishardMehta/TextDrop/internal/store"

	// Init swagger doc
	_ "github.com/VishardMehta/TextDrop/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	var storageClient store.StorageClient
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		client, err := store.NewCloudStorageClient(bucket)
		if err != nil {
			log.Fatalf("Failed to create cloud storage client: %s", err)
		}
		storageClient = client
	}

	service := share.NewService(store.NewContentStore(s.db), storageClient)
	controller := content.NewContentController(service, os.Getenv("PUBLIC_BASE_URL"))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "User-Agent"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		v1.POST("/share", middleware.SizeLimit(share.MaxContentBytes), controller.ShareContent)
		v1.GET("/text/:key", controller.GetContent)
		v1.POST("/bot-log", botlog.Handler)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.db.Health())
}
