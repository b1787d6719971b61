package ioc

import (
	"github.com/gin-gonic/gin"
	"go-snowflake/internal/web/snowflake"
	"go-snowflake/internal/web/system"
)

func InitWebServer(snowflakeHdl *snowflake.Handler, systemHdl *system.Handler) *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery())
	snowflakeHdl.PublicRoutes(server)
	snowflakeHdl.PrivateRoutes(server)
	systemHdl.PublicRoutes(server)
	return server
}
