package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"moneymap/middleware"
	"moneymap/models"
	"moneymap/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exports the caller's expenses in file formats.
type ExportHandler struct {
	store store.ExpenseStore
}

// NewExportHandler creates an export handler.
func NewExportHandler(st store.ExpenseStore) *ExportHandler {
	return &ExportHandler{store: st}
}

func (h *ExportHandler) ownExpenses(c *gin.Context) ([]models.Expense, bool) {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		Unauthorized(c, "unauthorized")
		return nil, false
	}
	expenses, err := h.store.ListByOwner(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading expenses failed"))
		return nil, false
	}
	return expenses, true
}

// ExportCSV exports expenses as CSV
// @Summary Export expenses as CSV
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV file"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, ok := h.ownExpenses(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM so Excel detects UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write([]string{"ID", "Amount", "Category", "Note", "Date", "Created At"}); err != nil {
		InternalError(c, "generating CSV failed")
		return
	}
	for _, e := range expenses {
		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Amount.String(),
			e.Category,
			e.Note,
			e.Date.String(),
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "generating CSV failed")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "generating CSV failed")
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON exports expenses as JSON
// @Summary Export expenses as JSON
// @Tags export
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "expenses with totals"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	expenses, ok := h.ownExpenses(c)
	if !ok {
		return
	}

	var total models.Money
	for _, e := range expenses {
		total += e.Amount
	}

	Success(c, gin.H{
		"total_count":  len(expenses),
		"total_amount": total,
		"expenses":     expenses,
	})
}

// ExportExcel exports expenses as an Excel workbook
// @Summary Export expenses as Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "xlsx file"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	expenses, ok := h.ownExpenses(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Expenses"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "Amount", "Category", "Note", "Date", "Created At"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, head)
	}
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)
	f.SetColWidth(sheet, "A", "F", 18)

	for row, e := range expenses {
		values := []interface{}{
			e.ID,
			e.Amount.Float64(),
			e.Category,
			e.Note,
			e.Date.String(),
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "generating Excel file failed")
		return
	}

	filename := fmt.Sprintf("expenses_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
