package report

import (
	"net/http"
	"strconv"
	"time"

	"go-ponto/internal/export"
	reporterrors "go-ponto/internal/report/errors"
	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/civil"
	"go-ponto/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// parseRange reads start_date, end_date and employee_id query params.
// Dates accept both ISO and DD-MM-YYYY; missing dates default to the
// first day of the current civil month through today.
func parseRange(c *gin.Context) (RangeFilter, error) {
	today := civil.Today()
	filter := RangeFilter{
		Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()),
		End:   today,
	}

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := civil.ParseFilterDate(raw)
		if err != nil {
			return RangeFilter{}, reporterrors.ErrInvalidDate
		}
		filter.Start = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := civil.ParseFilterDate(raw)
		if err != nil {
			return RangeFilter{}, reporterrors.ErrInvalidDate
		}
		filter.End = parsed
	}

	if raw := c.Query("employee_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return RangeFilter{}, reporterrors.ErrEmployeeNotFound
		}
		id := uint(parsed)
		filter.EmployeeID = &id
	}

	return filter, nil
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	filter, err := parseRange(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.Summary(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Detailed(c *gin.Context) {
	filter, err := parseRange(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.Detailed(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Print(c *gin.Context) {
	filter, err := parseRange(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.Print(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// ExportHistory streams the full punch history in csv, xlsx or pdf.
func (h *Handler) ExportHistory(c *gin.Context) {
	format := c.DefaultQuery("format", export.FormatCSV)
	switch format {
	case export.FormatCSV, export.FormatXLSX, export.FormatPDF:
	default:
		writeServiceError(c, reporterrors.ErrInvalidFormat)
		return
	}

	var employeeID *uint
	if raw := c.Query("employee_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeServiceError(c, reporterrors.ErrEmployeeNotFound)
			return
		}
		id := uint(parsed)
		employeeID = &id
	}

	dataset, filename, err := h.service.ExportHistory(c.Request.Context(), employeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.writeDataset(c, format, dataset, filename)
}

// ExportReport streams either the frequency summary or, when an
// employee is given, that employee's detailed report.
func (h *Handler) ExportReport(c *gin.Context) {
	format := c.DefaultQuery("format", export.FormatCSV)

	filter, err := parseRange(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if filter.EmployeeID == nil {
		switch format {
		case export.FormatCSV, export.FormatXLSX, export.FormatPDF:
		default:
			writeServiceError(c, reporterrors.ErrInvalidFormat)
			return
		}

		dataset, filename, err := h.service.ExportSummary(c.Request.Context(), filter)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		h.writeDataset(c, format, dataset, filename)
		return
	}

	// The grouped detailed layout has no CSV rendering.
	switch format {
	case export.FormatXLSX, export.FormatPDF:
	default:
		writeServiceError(c, reporterrors.ErrInvalidFormat)
		return
	}

	det, err := h.service.ExportDetailed(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var body []byte
	if format == export.FormatXLSX {
		body, err = export.XLSX(export.Dataset{
			Columns: det.FlatColumns,
			Rows:    det.FlatRows,
		})
	} else {
		body, err = export.PDFDetailed(det.Title, det.Period, det.Groups)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Attachment(c, export.ContentType(format), det.Filename+export.Extension(format), body)
}

func (h *Handler) writeDataset(c *gin.Context, format string, d export.Dataset, filename string) {
	var (
		body []byte
		err  error
	)
	switch format {
	case export.FormatCSV:
		body, err = export.CSV(d)
	case export.FormatXLSX:
		body, err = export.XLSX(d)
	case export.FormatPDF:
		body, err = export.PDFTable(d)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Attachment(c, export.ContentType(format), filename+export.Extension(format), body)
}
