package handlers

import (
	"bytes"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/wellness-service/internal/api/dto"
	"github.com/spec-kit/wellness-service/internal/service"
	util "github.com/spec-kit/wellness-service/pkg/util"
)

// ImportHandler exposes the bulk assessment import.
type ImportHandler struct {
	importer *service.ImportService
}

// NewImportHandler constructs handler.
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{importer: importService}
}

// ImportAssessments handles POST /assessments/import. The CSV arrives
// either as a multipart "file" field or as the raw request body.
func (h *ImportHandler) ImportAssessments(c *fiber.Ctx) error {
	reader, err := csvReader(c)
	if err != nil {
		return err
	}

	result, err := h.importer.ImportCSV(c.Context(), reader)
	if err != nil {
		return err
	}

	return c.JSON(dto.ImportResponse{
		Message: "Dataset Imported Successfully",
		BatchID: result.BatchID,
		Rows:    result.Rows,
	})
}

func csvReader(c *fiber.Ctx) (io.Reader, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, util.NewValidationError("unreadable file upload", nil)
		}
		return file, nil
	}

	body := c.Body()
	if len(body) == 0 {
		return nil, util.NewValidationError("CSV body required", nil)
	}
	return bytes.NewReader(body), nil
}
