package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler produces downloadable spreadsheets of the entries table.
type ExportHandler struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewExportHandler(db *gorm.DB, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{DB: db, Log: log}
}

var exportHeaders = []string{"Type", "Company", "Unit", "Date", "Reference", "Items", "Total"}

func (h *ExportHandler) fetchEntries() ([]models.Entry, error) {
	var entries []models.Entry
	err := h.DB.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// reference picks whichever per-type number the entry carries.
func reference(e *models.Entry) string {
	switch {
	case e.QuotationNo != "":
		return e.QuotationNo
	case e.InvoiceNo != "":
		return e.InvoiceNo
	case e.SNo != "":
		return e.SNo
	default:
		return ""
	}
}

func describeItems(items []models.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s %s x%s @%s", it.Item, it.Denomination, it.Quantity, it.Rate))
	}
	return strings.Join(parts, "; ")
}

func exportRow(e *models.Entry) []string {
	return []string{
		e.Type,
		e.CompanyName,
		e.Unit,
		e.Date,
		reference(e),
		describeItems(e.Description),
		e.Total,
	}
}

// CSV streams all entries as a CSV download.
func (h *ExportHandler) CSV(c *gin.Context) {
	entries, err := h.fetchEntries()
	if err != nil {
		h.Log.Error().Err(err).Msg("export csv: fetch failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Export failed.")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"entries_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel opens the file correctly
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range entries {
		writer.Write(exportRow(&entries[i]))
	}
}

// XLSX streams all entries as an Excel workbook.
func (h *ExportHandler) XLSX(c *gin.Context) {
	entries, err := h.fetchEntries()
	if err != nil {
		h.Log.Error().Err(err).Msg("export xlsx: fetch failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Export failed.")
		return
	}

	f := excelize.NewFile()
	sheetName := "Entries"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Export failed.")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range entries {
		row := idx + 2
		for col, v := range exportRow(&entries[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "C", 20)
	f.SetColWidth(sheetName, "D", "E", 14)
	f.SetColWidth(sheetName, "F", "F", 40)
	f.SetColWidth(sheetName, "G", "G", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"entries_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Export failed.")
	}
}
