package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restro/database"
	"restro/service"
)

func GetAllTables(c *gin.Context) {
	roster, err := service.NewRoster(database.DB).GetOrCreateToday()
	if err != nil {
		serviceError(c, err)
		return
	}

	tables := make([]gin.H, 0, len(roster.Slots))
	for _, slot := range roster.Slots {
		tables = append(tables, gin.H{
			"table_data_id": slot.ID,
			"table_name":    slot.TableName,
			"table_no":      slot.TableNo,
			"total_chairs":  slot.TotalChairs,
			"is_available":  slot.IsAvailable,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"table_id":   roster.ID,
		"table_data": tables,
	})
}

func PostCreateTable(c *gin.Context) {
	type Request struct {
		TableName   string `json:"table_name"`
		TableNo     int    `json:"table_no" binding:"required"`
		TotalChairs int    `json:"total_chairs" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "All fields are required",
		})
		return
	}

	slot, err := service.NewRoster(database.DB).AddSlot(req.TableName, req.TableNo, req.TotalChairs)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Table created successfully",
		"data":    gin.H{"table_data_id": slot.ID},
	})
}

func PutTableDetails(c *gin.Context) {
	slotID, err := strconv.ParseUint(c.Param("slotId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid table ID format",
		})
		return
	}

	type Request struct {
		TableName   string `json:"table_name"`
		TableNo     int    `json:"table_no" binding:"required"`
		TotalChairs int    `json:"total_chairs" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "All fields are required",
		})
		return
	}

	if err := service.NewRoster(database.DB).UpdateSlot(uint(slotID), req.TableName, req.TableNo, req.TotalChairs); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Table updated successfully",
	})
}

func DeleteTable(c *gin.Context) {
	slotID, err := strconv.ParseUint(c.Param("slotId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid table ID format",
		})
		return
	}

	if err := service.NewRoster(database.DB).RemoveSlot(uint(slotID)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Table deleted successfully",
	})
}
