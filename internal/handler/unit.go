package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// UnitHandler serves the organizational unit directory.
type UnitHandler struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewUnitHandler(db *gorm.DB, log zerolog.Logger) *UnitHandler {
	return &UnitHandler{DB: db, Log: log}
}

type unitReq struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

func (r *unitReq) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.Contact = strings.TrimSpace(r.Contact)
}

func (r *unitReq) complete() bool {
	return r.Name != "" && r.Address != "" && r.Contact != ""
}

// List returns all units in alphabetical order.
func (h *UnitHandler) List(c *gin.Context) {
	units := make([]models.Unit, 0)
	if err := h.DB.Order("name COLLATE NOCASE ASC").Find(&units).Error; err != nil {
		h.Log.Error().Err(err).Msg("list units failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch units.")
		return
	}
	util.JSON(c, http.StatusOK, units)
}

// GetByName looks a unit up by name, case-insensitively.
func (h *UnitHandler) GetByName(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Unit name is required in the URL.")
		return
	}

	var unit models.Unit
	if err := h.DB.Where("LOWER(name) = LOWER(?)", name).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Unit not found.")
		} else {
			h.Log.Error().Err(err).Msg("get unit by name failed")
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to get unit.")
		}
		return
	}

	util.JSON(c, http.StatusOK, unit)
}

// Create adds a unit. Name uniqueness is case-insensitive; the contact
// format is checked by the store on save.
func (h *UnitHandler) Create(c *gin.Context) {
	username, _, _ := currentUser(c)

	var req unitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "All fields (name, address, contact) are required.")
		return
	}
	req.trim()
	if !req.complete() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "All fields (name, address, contact) are required.")
		return
	}

	var count int64
	if err := h.DB.Model(&models.Unit{}).
		Where("LOWER(name) = LOWER(?)", req.Name).
		Count(&count).Error; err != nil {
		h.Log.Error().Err(err).Msg("create unit: lookup failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to add unit.")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, util.CodeConflict, "Unit with this name already exists.")
		return
	}

	unit := models.Unit{Name: req.Name, Address: req.Address, Contact: req.Contact}
	if err := h.DB.Create(&unit).Error; err != nil {
		if errors.Is(err, models.ErrInvalidContact) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid contact number format.")
			return
		}
		h.Log.Error().Err(err).Msg("create unit failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to add unit.")
		return
	}

	recordAction(h.DB, fmt.Sprintf("Created unit %q", unit.Name), username)
	util.JSON(c, http.StatusCreated, unit)
}

// Update replaces a unit's fields.
func (h *UnitHandler) Update(c *gin.Context) {
	username, _, _ := currentUser(c)
	id := c.Param("id")

	var req unitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "All fields (name, address, contact) are required.")
		return
	}
	req.trim()
	if !req.complete() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "All fields (name, address, contact) are required.")
		return
	}

	var unit models.Unit
	if err := h.DB.First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Unit not found.")
		} else {
			h.Log.Error().Err(err).Msg("update unit: lookup failed")
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to update unit.")
		}
		return
	}

	unit.Name = req.Name
	unit.Address = req.Address
	unit.Contact = req.Contact
	if err := h.DB.Save(&unit).Error; err != nil {
		if errors.Is(err, models.ErrInvalidContact) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid contact number format.")
			return
		}
		h.Log.Error().Err(err).Msg("update unit failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to update unit.")
		return
	}

	recordAction(h.DB, fmt.Sprintf("Updated unit %q", unit.Name), username)
	util.JSON(c, http.StatusOK, unit)
}

// Delete removes a unit. Entries that referenced it by name are left
// untouched; the reference is advisory.
func (h *UnitHandler) Delete(c *gin.Context) {
	username, _, _ := currentUser(c)
	id := c.Param("id")

	var unit models.Unit
	if err := h.DB.First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Unit not found.")
		} else {
			h.Log.Error().Err(err).Msg("delete unit: lookup failed")
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to delete unit.")
		}
		return
	}

	if err := h.DB.Delete(&unit).Error; err != nil {
		h.Log.Error().Err(err).Msg("delete unit failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to delete unit.")
		return
	}

	recordAction(h.DB, fmt.Sprintf("Deleted unit %q", unit.Name), username)
	util.JSON(c, http.StatusOK, gin.H{"message": "Unit deleted successfully."})
}
