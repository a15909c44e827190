package routes

import (
	"merenda_escolar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFoods        = "/foods"
	PathMenus        = "/menus"
	PathInstitutions = "/institutions"
	PathGuides       = "/guides"
	PathDashboard    = "/dashboard"
	PathReports      = "/reports"
)

func addMerendaRoutes(
	rg *gin.RouterGroup,
	foodHandler *handlers.FoodHandler,
	calculationHandler *handlers.CalculationHandler,
	menuHandler *handlers.MenuHandler,
	institutionHandler *handlers.InstitutionHandler,
	guideHandler *handlers.GuideHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	foods := rg.Group(PathFoods)
	{
		foods.POST("", foodHandler.CreateFood)
		foods.GET("", foodHandler.ListFoods)
	}

	rg.POST("/percapita", calculationHandler.CalculatePerCapita)
	rg.GET("/units/convert", calculationHandler.ConvertUnit)

	menus := rg.Group(PathMenus)
	{
		menus.POST("", menuHandler.CreateMenu)
		menus.GET("", menuHandler.ListMenus)
		menus.GET("/:id", menuHandler.GetMenu)
	}

	institutions := rg.Group(PathInstitutions)
	{
		institutions.POST("", institutionHandler.CreateInstitution)
		institutions.GET("", institutionHandler.ListInstitutions)
		institutions.GET("/:id", institutionHandler.GetInstitution)
	}

	guides := rg.Group(PathGuides)
	{
		guides.POST("", guideHandler.CreateGuide)
		guides.GET("", guideHandler.ListGuides)
		guides.GET("/:id", guideHandler.GetGuide)
		guides.PATCH("/:id/finalize", guideHandler.FinalizeGuide)
		guides.PATCH("/:id/distribute", guideHandler.DistributeGuide)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/calendar", dashboardHandler.MonthCalendar)
		dashboard.GET("/guides", dashboardHandler.MonthGuides)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/distribution/weekly", dashboardHandler.WeeklyDistribution)
	}
}
