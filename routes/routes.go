package routes

import (
	"github.com/azzami13/Mapasset/config"
	"github.com/azzami13/Mapasset/controllers"
	"github.com/azzami13/Mapasset/middlewares"
	"github.com/azzami13/Mapasset/repository"
	"github.com/azzami13/Mapasset/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	assetRepo := repository.NewAssetRepository(db)
	userRepo := repository.NewUserRepository(db)

	assetSvc := service.NewAssetService(assetRepo)
	authSvc := service.NewAuthService(userRepo, config.JWTExpiration)

	assetCtl := controllers.NewAssetController(assetSvc)
	authCtl := controllers.NewAuthController(authSvc)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authCtl.Login)
			auth.GET("/me",
				middlewares.AuthMiddleware(),
				middlewares.Authorize("auth.me"),
				authCtl.Me)
		}

		assets := api.Group("/assets", middlewares.AuthMiddleware())
		{
			assets.GET("", middlewares.Authorize("assets.list"), assetCtl.List)
			assets.GET("/geojson", middlewares.Authorize("assets.geojson"), assetCtl.GeoJSON)
			assets.GET("/:id", middlewares.Authorize("assets.detail"), assetCtl.Detail)
			assets.PATCH("/:id", middlewares.Authorize("assets.update"), assetCtl.Update)
			assets.DELETE("/:id", middlewares.Authorize("assets.delete"), assetCtl.Delete)
			assets.POST("/point", middlewares.Authorize("assets.create_point"), assetCtl.CreatePoint)
			assets.POST("/polygon", middlewares.Authorize("assets.create_polygon"), assetCtl.CreatePolygon)
		}
	}
}
