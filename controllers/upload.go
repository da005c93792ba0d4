// controllers/upload.go
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bizops-backend/models"
	"bizops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// documentFields lists the uploadable document-URL columns per entity.
// Unknown fields are rejected instead of creating columns on the fly.
var documentFields = map[string]map[string]bool{
	"customer": {
		"company_profile_url":          true,
		"kyc_url":                      true,
		"master_service_agreement_url": true,
	},
	"po": {
		"po_pdf_url": true,
	},
	"invoice": {
		"invoice_pdf_url":      true,
		"proof_of_payment_url": true,
	},
	"agreement": {
		"signed_copy_url": true,
	},
}

func uploadModel(entity string) interface{} {
	switch entity {
	case "customer":
		return &models.Customer{}
	case "po":
		return &models.PurchaseOrder{}
	case "invoice":
		return &models.Invoice{}
	case "agreement":
		return &models.Agreement{}
	}
	return nil
}

// UploadController stores entity documents on disk and serves them back.
type UploadController struct {
	DB  *gorm.DB
	Dir string
}

func NewUploadController(db *gorm.DB) *UploadController {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return &UploadController{DB: db, Dir: dir}
}

// UploadDocument stores a file for an entity and points the named
// document field at its serving URL.
func (ctl *UploadController) UploadDocument(c *gin.Context) {
	entity := strings.ToLower(c.Param("entity"))
	fields, ok := documentFields[entity]
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unsupported entity")
		return
	}

	field := c.Param("field")
	if !fields[field] {
		utils.RespondWithError(c, http.StatusBadRequest, "Unsupported field for "+entity)
		return
	}

	entityID, err := uuid.Parse(c.Param("entity_id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid entity id")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing file")
		return
	}

	if err := os.MkdirAll(ctl.Dir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to prepare upload directory")
		return
	}

	ts := time.Now().UTC().Format("20060102150405")
	name := fmt.Sprintf("%s_%s_%s_%s_%s", entity, entityID, field, ts, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(ctl.Dir, name)); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	url := "/uploads/" + name

	result := ctl.DB.Model(uploadModel(entity)).
		Where("id = ?", entityID).
		Updates(map[string]interface{}{field: url, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ServeUpload returns a stored file by name or 404.
func (ctl *UploadController) ServeUpload(c *gin.Context) {
	// Base strips any path components, so requests cannot escape Dir.
	name := filepath.Base(c.Param("filename"))
	path := filepath.Join(ctl.Dir, name)
	if _, err := os.Stat(path); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "File not found")
		return
	}
	c.File(path)
}
