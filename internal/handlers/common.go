package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/dto"
	apperrors "github.com/Rakshita16-hub/Cronberry-Asset-management/internal/errors"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/excel"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/services"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeWorkbook streams a workbook as an attachment and closes it.
func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		apperrors.InternalError(c, "Failed to generate workbook")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// parseImportRows pulls the uploaded workbook out of the "file" form field
// and returns its data rows. A nil return with false means the response has
// already been written.
func parseImportRows(c *gin.Context) ([][]string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.BadRequest(c, "An .xlsx file is required in the 'file' field")
		return nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		apperrors.BadRequest(c, "Failed to read the uploaded file")
		return nil, false
	}
	defer file.Close()

	rows, err := excel.ParseUpload(file)
	if err != nil {
		apperrors.BadRequest(c, "The uploaded file is not a valid .xlsx workbook")
		return nil, false
	}
	return rows, true
}

// respondImport maps an import result onto the shared response shape:
// 200 when every row landed, 207 on a partial import, 400 when nothing did.
func respondImport(c *gin.Context, entity string, result *services.ImportResult) {
	failed := len(result.Errors)
	resp := dto.ImportResponse{
		Success:  failed == 0,
		Summary:  dto.ImportSummary{TotalRows: result.Imported + failed, Imported: result.Imported, Failed: failed},
		Imported: result.Imported,
		Errors:   make([]dto.ImportRowError, 0, failed),
	}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, dto.ImportRowError{Row: e.Row, Message: e.Message})
	}

	switch {
	case failed == 0:
		resp.Message = fmt.Sprintf("Imported %d %s", result.Imported, entity)
		c.JSON(http.StatusOK, resp)
	case result.Imported > 0:
		resp.Message = fmt.Sprintf("Imported %d %s with %d rejected rows", result.Imported, entity, failed)
		c.JSON(http.StatusMultiStatus, resp)
	default:
		resp.Message = fmt.Sprintf("No %s imported; all %d rows were rejected", entity, failed)
		c.JSON(http.StatusBadRequest, resp)
	}
}
