package router

import (
	"github.com/gin-gonic/gin"
	chatrest "github.com/srinipusuluri/sfdc-adminX/internal/chat/rest"
)

func New(chatHandler *chatrest.ChatHandler) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())

	api := engine.Group("/api")

	// chat
	api.POST("/chat/command", chatHandler.Command)
	api.GET("/chat/history", chatHandler.GetHistory) // query ?session_id=

	// reference data
	api.GET("/fields", chatHandler.GetFields)

	// health
	api.GET("/health", chatHandler.GetHealth)

	return engine
}
