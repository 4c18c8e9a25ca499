package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mcherald/mcherald/api/docs" // nolint: revive
	"github.com/mcherald/mcherald/internal/rest/api"
)

func NewRouter(a *api.API) *gin.Engine {
	router := gin.Default()
	router.GET("/status", a.Status)
	router.GET("/api/status", a.CheckStatus)
	router.GET("/api/observations", a.ListObservations)
	router.GET("/api/announcements", a.ListAnnouncements)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
