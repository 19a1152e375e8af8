package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restro/database"
	"restro/service"
)

func GetChefList(c *gin.Context) {
	chefs, err := service.NewChefs(database.DB).List()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chefs)
}

func PostChef(c *gin.Context) {
	type Request struct {
		Name string `json:"name" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid details shared",
		})
		return
	}

	chef, err := service.NewChefs(database.DB).Create(req.Name)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Chef created successfully",
		"data":    gin.H{"chef_id": chef.ID},
	})
}

func DeleteChef(c *gin.Context) {
	chefID, err := strconv.ParseUint(c.Param("chefId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid chef ID format",
		})
		return
	}

	if err := service.NewChefs(database.DB).Delete(uint(chefID)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Chef has been deleted successfully",
	})
}
