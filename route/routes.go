package route

import (
	"cafeapi/auth"
	"cafeapi/controller"
	"cafeapi/utils"
	"cafeapi/web"

	"github.com/gin-gonic/gin"
)

func CafeRoutes(router *gin.Engine, cafes *controller.CafeController, apiKey auth.APIKey) {
	router.SetHTMLTemplate(web.Templates())

	router.GET("/", cafes.Home)
	router.GET("/random", cafes.GetRandomCafe)
	router.GET("/all", cafes.GetAllCafes)
	router.GET("/search", cafes.SearchCafes)
	router.POST("/add", cafes.AddCafe)
	router.POST("/update-price/:cafe_id", cafes.UpdatePrice)

	guarded := router.Group("/")
	guarded.Use(utils.RequireAPIKey(apiKey))
	{
		guarded.POST("/report-closed/:cafe_id", cafes.ReportClosed)
		guarded.POST("/add/excel", cafes.ImportCafes)
	}
}
