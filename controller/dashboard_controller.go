package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"restro/database"
	"restro/service"
)

func GetDashboardAnalytics(c *gin.Context) {
	analytics, err := service.NewDashboard(database.DB).Collect()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// ExportDashboardReport renders the dashboard snapshot as an Excel
// workbook: one sheet of headline totals and chef loads, one sheet of
// today's tables.
func ExportDashboardReport(c *gin.Context) {
	analytics, err := service.NewDashboard(database.DB).Collect()
	if err != nil {
		serviceError(c, err)
		return
	}

	xl := excelize.NewFile()
	defer xl.Close()

	const summary = "Summary"
	xl.SetSheetName("Sheet1", summary)
	xl.SetCellValue(summary, "A1", "Metric")
	xl.SetCellValue(summary, "B1", "Value")
	xl.SetCellValue(summary, "A2", "Total chefs")
	xl.SetCellValue(summary, "B2", analytics.TotalChef)
	xl.SetCellValue(summary, "A3", "Total orders")
	xl.SetCellValue(summary, "B3", analytics.TotalOrder)
	xl.SetCellValue(summary, "A4", "Total clients")
	xl.SetCellValue(summary, "B4", analytics.TotalClient)
	xl.SetCellValue(summary, "A5", "Total revenue")
	xl.SetCellValue(summary, "B5", analytics.TotalRevenue)

	xl.SetCellValue(summary, "A7", "Chef")
	xl.SetCellValue(summary, "B7", "Orders")
	row := 8
	for _, chef := range analytics.ChefList {
		xl.SetCellValue(summary, fmt.Sprintf("A%d", row), chef.ChefName)
		xl.SetCellValue(summary, fmt.Sprintf("B%d", row), chef.TotalOrders)
		row++
	}

	const tables = "Tables"
	if _, err := xl.NewSheet(tables); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to build report",
		})
		return
	}
	xl.SetCellValue(tables, "A1", "Table No")
	xl.SetCellValue(tables, "B1", "Name")
	xl.SetCellValue(tables, "C1", "Chairs")
	xl.SetCellValue(tables, "D1", "Available")
	for i, table := range analytics.TableData {
		xl.SetCellValue(tables, fmt.Sprintf("A%d", i+2), table.TableNo)
		xl.SetCellValue(tables, fmt.Sprintf("B%d", i+2), table.TableName)
		xl.SetCellValue(tables, fmt.Sprintf("C%d", i+2), table.TotalChairs)
		xl.SetCellValue(tables, fmt.Sprintf("D%d", i+2), table.IsAvailable)
	}

	fileName := fmt.Sprintf("dashboard-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xl.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to write report",
		})
	}
}
