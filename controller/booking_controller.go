package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restro/database"
	"restro/service"
)

// serviceError renders a failed service call with the status code that
// matches the error's kind.
func serviceError(c *gin.Context, err error) {
	c.JSON(service.HTTPStatus(err), gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func GetMenuList(c *gin.Context) {
	listing, err := service.NewMenu(database.DB).Listing()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func PostNewBooking(c *gin.Context) {
	var input service.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid booking payload",
		})
		return
	}

	order, err := service.NewBooking(database.DB).CreateOrder(input)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data":    gin.H{"order_number": order.OrderNumber},
	})
}

func GetAllOrders(c *gin.Context) {
	orders, err := service.NewBooking(database.DB).ListOrders()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func PutOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid order ID format",
		})
		return
	}

	if err := service.NewBooking(database.DB).CompleteOrder(uint(orderID)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order has completed successfully",
	})
}
