package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restro/database"
	"restro/service"
)

func DeleteMenuItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid menu item ID format",
		})
		return
	}

	if err := service.NewMenu(database.DB).DeleteItem(uint(itemID)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item deleted successfully; orders containing it were removed",
	})
}

func DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid category ID format",
		})
		return
	}

	if err := service.NewMenu(database.DB).DeleteCategory(uint(categoryID)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted successfully",
	})
}
