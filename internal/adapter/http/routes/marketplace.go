package routes

import (
	"renomatch/internal/adapter/http/handlers"
	"renomatch/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests    = "/requests"
	PathVisits      = "/site-visits"
	PathBids        = "/bids"
	PathDashboard   = "/dashboard"
	PathContractors = "/contractors"
)

func addMarketplaceRoutes(rg *gin.RouterGroup,
	requestHandler *handlers.QuoteRequestHandler,
	visitHandler *handlers.SiteVisitHandler,
	bidHandler *handlers.BidHandler,
	selectionHandler *handlers.SelectionHandler,
	dashboardHandler *handlers.DashboardHandler,
	contractorHandler *handlers.ContractorHandler,
) {
	// Registration is open; everything else requires a token.
	rg.POST(PathContractors, contractorHandler.RegisterContractor)

	auth := middleware.Auth("")

	requests := rg.Group(PathRequests, auth)
	{
		requests.POST("", middleware.RequireRole(middleware.RoleCustomer), requestHandler.CreateRequest)
		requests.GET("/mine", middleware.RequireRole(middleware.RoleCustomer), requestHandler.ListMyRequests)
		requests.GET("/:request_id", requestHandler.GetRequest)
		requests.PATCH("/:request_id/review", middleware.RequireRole(middleware.RoleStaff), requestHandler.ReviewRequest)
		requests.PATCH("/:request_id/open-bidding", middleware.RequireRole(middleware.RoleStaff), requestHandler.OpenBidding)
		requests.PATCH("/:request_id/close-bidding", middleware.RequireRole(middleware.RoleStaff), requestHandler.CloseBidding)
		requests.PATCH("/:request_id/cancel", middleware.RequireRole(middleware.RoleCustomer, middleware.RoleStaff), requestHandler.CancelRequest)

		requests.POST("/:request_id/site-visits", middleware.RequireRole(middleware.RoleContractor), visitHandler.ApplyForVisit)
		requests.GET("/:request_id/site-visits", middleware.RequireRole(middleware.RoleStaff), visitHandler.ListVisitsByRequest)

		requests.POST("/:request_id/bids", middleware.RequireRole(middleware.RoleContractor), bidHandler.SubmitBid)
		requests.GET("/:request_id/bids", middleware.RequireRole(middleware.RoleCustomer, middleware.RoleStaff), bidHandler.ListBidsByRequest)

		requests.POST("/:request_id/selection", middleware.RequireRole(middleware.RoleCustomer), selectionHandler.SelectContractor)
	}

	visits := rg.Group(PathVisits, auth)
	{
		visits.PATCH("/:application_id/cancel", middleware.RequireRole(middleware.RoleContractor, middleware.RoleStaff), visitHandler.CancelVisit)
		visits.PATCH("/:application_id/complete", middleware.RequireRole(middleware.RoleStaff), visitHandler.CompleteVisit)
	}

	bids := rg.Group(PathBids, auth)
	{
		bids.DELETE("/:bid_id", middleware.RequireRole(middleware.RoleContractor), bidHandler.WithdrawBid)
	}

	dashboard := rg.Group(PathDashboard, auth, middleware.RequireRole(middleware.RoleContractor))
	{
		dashboard.GET("/projects", dashboardHandler.ListProjects)
		dashboard.GET("/projects/:request_id", dashboardHandler.GetProject)
	}

	contractors := rg.Group(PathContractors, auth)
	{
		contractors.GET("/:contractor_id", contractorHandler.GetContractor)
		contractors.PATCH("/:contractor_id/active", middleware.RequireRole(middleware.RoleStaff), contractorHandler.ActivateContractor)
	}
}
