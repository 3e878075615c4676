package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/handlers"
)

const (
	PathOffers         = "/offers"
	PathEMDs           = "/emds"
	PathLOAs           = "/loas"
	PathPurchaseOrders = "/purchase-orders"
)

func addProcurementRoutes(rg *gin.RouterGroup, offerHandler *handlers.OfferHandler, emdHandler *handlers.EMDHandler, loaHandler *handlers.LOAHandler, poHandler *handlers.PurchaseOrderHandler) {
	offers := rg.Group(PathOffers)
	{
		offers.POST("", offerHandler.CreateOffer)
		offers.GET("", offerHandler.ListOffers)
		offers.GET("/:id", offerHandler.GetOffer)
		offers.GET("/:id/transitions", offerHandler.ListOfferTransitions)
		offers.PATCH("/:id/status", offerHandler.UpdateOfferStatus)
	}

	emds := rg.Group(PathEMDs)
	{
		// Fixed paths before the :id routes so gin does not shadow them.
		emds.GET("/expiring", emdHandler.ListExpiringEMDs)
		emds.POST("/extract", emdHandler.ExtractFDR)

		emds.POST("", emdHandler.CreateEMD)
		emds.GET("", emdHandler.ListEMDs)
		emds.GET("/:id", emdHandler.GetEMD)
		emds.GET("/:id/transitions", emdHandler.ListEMDTransitions)
		emds.PATCH("/:id/status", emdHandler.UpdateEMDStatus)
	}

	loas := rg.Group(PathLOAs)
	{
		loas.POST("", loaHandler.CreateLOA)
		loas.GET("", loaHandler.ListLOAs)
		loas.GET("/:id", loaHandler.GetLOA)
		loas.GET("/:id/transitions", loaHandler.ListLOATransitions)
		loas.PATCH("/:id/status", loaHandler.UpdateLOAStatus)
	}

	orders := rg.Group(PathPurchaseOrders)
	{
		orders.POST("", poHandler.CreatePurchaseOrder)
		orders.GET("", poHandler.ListPurchaseOrders)
		orders.GET("/:id", poHandler.GetPurchaseOrder)
		orders.GET("/:id/transitions", poHandler.ListPurchaseOrderTransitions)
		orders.PATCH("/:id/status", poHandler.UpdatePurchaseOrderStatus)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, offerHandler *handlers.OfferHandler, emdHandler *handlers.EMDHandler, loaHandler *handlers.LOAHandler, poHandler *handlers.PurchaseOrderHandler) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/offers", offerHandler.OfferStatistics)
		dashboard.GET("/emds", emdHandler.EMDStatistics)
		dashboard.GET("/loas", loaHandler.LOAStatistics)
		dashboard.GET("/purchase-orders", poHandler.PurchaseOrderStatistics)
	}
}
