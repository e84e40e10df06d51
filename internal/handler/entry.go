package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// EntryHandler serves the financial entries collection.
type EntryHandler struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewEntryHandler(db *gorm.DB, log zerolog.Logger) *EntryHandler {
	return &EntryHandler{DB: db, Log: log}
}

type entryReq struct {
	Type           string             `json:"type"`
	CompanyName    string             `json:"company_name"`
	QuotationNo    string             `json:"quotation_no"`
	InvoiceNo      string             `json:"invoice_no"`
	ReferenceNo    string             `json:"reference_no"`
	BuyingCompany  string             `json:"buying_company"`
	SellingCompany string             `json:"selling_company"`
	Mop            string             `json:"mop"`
	SNo            string             `json:"s_no"`
	Amount         string             `json:"amount"`
	Unit           string             `json:"unit"`
	Date           string             `json:"date"`
	Description    *[]models.LineItem `json:"description"`
	// a client-sent total is ignored; the server always recomputes it
	Total string `json:"total"`
}

// computeTotal sums quantity×rate over the line items. Missing or
// unparsable numbers count as zero. The result is a 2-decimal string.
func computeTotal(items []models.LineItem) string {
	var total float64
	for _, it := range items {
		qty, err := strconv.ParseFloat(it.Quantity, 64)
		if err != nil {
			qty = 0
		}
		rate, err := strconv.ParseFloat(it.Rate, 64)
		if err != nil {
			rate = 0
		}
		total += qty * rate
	}
	return strconv.FormatFloat(total, 'f', 2, 64)
}

// Per-type reference fields. Anything outside the type's set is cleared
// before persisting, which is what makes one polymorphic list safe.
var entryTypeFields = map[string][]string{
	models.EntryQuotation: {"quotation_no"},
	models.EntryInvoice:   {"invoice_no", "reference_no"},
	models.EntryPurchase:  {"buying_company", "selling_company", "mop", "amount"},
	models.EntryGoodsExp:  {"s_no"},
	models.EntryCashExp:   {"s_no"},
}

func applyEntryFields(e *models.Entry, req *entryReq) {
	e.CompanyName = req.CompanyName
	e.Unit = req.Unit
	e.Date = req.Date

	allowed := make(map[string]bool)
	for _, f := range entryTypeFields[e.Type] {
		allowed[f] = true
	}

	set := func(field string, dst *string, v string) {
		if allowed[field] {
			*dst = v
		} else {
			*dst = ""
		}
	}
	set("quotation_no", &e.QuotationNo, req.QuotationNo)
	set("invoice_no", &e.InvoiceNo, req.InvoiceNo)
	set("reference_no", &e.ReferenceNo, req.ReferenceNo)
	set("buying_company", &e.BuyingCompany, req.BuyingCompany)
	set("selling_company", &e.SellingCompany, req.SellingCompany)
	set("mop", &e.Mop, req.Mop)
	set("s_no", &e.SNo, req.SNo)
	set("amount", &e.Amount, req.Amount)
}

// List returns entries newest-created-first. Optional query filters keep
// the dashboard's search semantics: unit is an exact match, no is a
// substring of the quotation or invoice number, from/to form an
// inclusive date range.
func (h *EntryHandler) List(c *gin.Context) {
	q := h.DB.Model(&models.Entry{}).Order("created_at DESC")

	if unit := strings.TrimSpace(c.Query("unit")); unit != "" {
		q = q.Where("unit = ?", unit)
	}
	if no := strings.TrimSpace(c.Query("no")); no != "" {
		pat := "%" + no + "%"
		q = q.Where("quotation_no LIKE ? OR invoice_no LIKE ?", pat, pat)
	}

	entries := make([]models.Entry, 0)
	if err := q.Find(&entries).Error; err != nil {
		h.Log.Error().Err(err).Msg("list entries failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error while fetching entries.")
		return
	}

	entries, err := filterEntryDates(entries, c.Query("from"), c.Query("to"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid date filter.")
		return
	}

	util.JSON(c, http.StatusOK, entries)
}

// filterEntryDates narrows entries to the inclusive [from, to] range.
// Entry dates are display strings; rows whose date does not parse fall
// outside any range, same as the previous in-browser filter.
func filterEntryDates(entries []models.Entry, from, to string) ([]models.Entry, error) {
	if from == "" && to == "" {
		return entries, nil
	}

	out := entries[:0]
	for _, e := range entries {
		d, err := util.ParseEntryDate(e.Date)
		if err != nil {
			continue
		}
		if from != "" {
			f, err := util.ParseEntryDate(from)
			if err != nil {
				return nil, err
			}
			if d.Before(f) {
				continue
			}
		}
		if to != "" {
			t, err := util.ParseEntryDate(to)
			if err != nil {
				return nil, err
			}
			if d.After(t) {
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// Create validates the required fields, recomputes the total server-side
// and persists the entry. The referenced unit must exist.
func (h *EntryHandler) Create(c *gin.Context) {
	username, _, _ := currentUser(c)

	var req entryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Missing required fields or invalid description.")
		return
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Unit = strings.TrimSpace(req.Unit)
	if util.ValidateEntryType(req.Type) != nil || req.CompanyName == "" || req.Unit == "" || req.Description == nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Missing required fields or invalid description.")
		return
	}

	var unitCount int64
	if err := h.DB.Model(&models.Unit{}).
		Where("LOWER(name) = LOWER(?)", req.Unit).
		Count(&unitCount).Error; err != nil {
		h.Log.Error().Err(err).Msg("create entry: unit lookup failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to add entry.")
		return
	}
	if unitCount == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Unknown unit.")
		return
	}

	entry := models.Entry{
		Type:        req.Type,
		Description: *req.Description,
		Total:       computeTotal(*req.Description),
	}
	applyEntryFields(&entry, &req)

	if err := h.DB.Create(&entry).Error; err != nil {
		h.Log.Error().Err(err).Msg("create entry failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to add entry.")
		return
	}

	recordAction(h.DB, fmt.Sprintf("Created %s entry #%d for %s", entry.Type, entry.ID, entry.CompanyName), username)
	util.JSON(c, http.StatusCreated, entry)
}

// Update replaces an entry's fields and recomputes the total from the
// submitted description (zero when absent). The type stays fixed at what
// it was created with. Last write wins on concurrent updates.
func (h *EntryHandler) Update(c *gin.Context) {
	username, _, _ := currentUser(c)
	id := c.Param("id")

	var entry models.Entry
	if err := h.DB.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Entry not found.")
		} else {
			h.Log.Error().Err(err).Msg("update entry: lookup failed")
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to update entry.")
		}
		return
	}

	var req entryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid entry payload.")
		return
	}

	if req.Description != nil {
		entry.Description = *req.Description
	} else {
		entry.Description = nil
	}
	entry.Total = computeTotal(entry.Description)
	applyEntryFields(&entry, &req)

	if err := h.DB.Save(&entry).Error; err != nil {
		h.Log.Error().Err(err).Msg("update entry failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to update entry.")
		return
	}

	recordAction(h.DB, fmt.Sprintf("Updated %s entry #%d", entry.Type, entry.ID), username)
	util.JSON(c, http.StatusOK, entry)
}

// Delete removes an entry.
func (h *EntryHandler) Delete(c *gin.Context) {
	username, _, _ := currentUser(c)
	id := c.Param("id")

	var entry models.Entry
	if err := h.DB.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Entry not found.")
		} else {
			h.Log.Error().Err(err).Msg("delete entry: lookup failed")
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to delete entry.")
		}
		return
	}

	if err := h.DB.Delete(&entry).Error; err != nil {
		h.Log.Error().Err(err).Msg("delete entry failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to delete entry.")
		return
	}

	recordAction(h.DB, fmt.Sprintf("Deleted %s entry #%d", entry.Type, entry.ID), username)
	util.JSON(c, http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}
