package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/handlers"
)

const (
	PathVendors = "/vendors"
	PathItems   = "/items"
)

func addMasterDataRoutes(rg *gin.RouterGroup, vendorHandler *handlers.VendorHandler, itemHandler *handlers.ItemHandler) {
	vendors := rg.Group(PathVendors)
	{
		vendors.POST("", vendorHandler.CreateVendor)
		vendors.GET("", vendorHandler.ListVendors)
		vendors.GET("/:id", vendorHandler.GetVendor)
		vendors.PUT("/:id", vendorHandler.UpdateVendor)
	}

	items := rg.Group(PathItems)
	{
		items.POST("", itemHandler.CreateItem)
		items.GET("", itemHandler.ListItems)
		items.GET("/:id", itemHandler.GetItem)
		items.PUT("/:id", itemHandler.UpdateItem)
	}
}
