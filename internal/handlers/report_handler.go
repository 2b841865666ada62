package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"planboard/internal/services"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// @Summary  Dashboard summary
// @Tags     Reports
// @Produce  json
// @Router   /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.service.GetSummary(c.Request.Context())
	if err != nil {
		log.Printf("[report][summary][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary  Per-project report
// @Tags     Reports
// @Produce  json
// @Router   /reports/projects/{id} [get]
func (h *ReportHandler) ProjectReport(c *gin.Context) {
	id := c.Param("id")
	report, err := h.service.GetProjectReport(c.Request.Context(), id)
	if err != nil {
		log.Printf("[report][project][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build project report"})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary  Resource utilization
// @Tags     Reports
// @Produce  json
// @Router   /reports/utilization [get]
func (h *ReportHandler) Utilization(c *gin.Context) {
	rows, err := h.service.GetUtilization(c.Request.Context())
	if err != nil {
		log.Printf("[report][utilization][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute utilization"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary  Over-allocated resources with their conflicting tasks
// @Tags     Reports
// @Produce  json
// @Router   /reports/overallocation [get]
func (h *ReportHandler) OverAllocation(c *gin.Context) {
	rows, err := h.service.GetOverAllocation(c.Request.Context())
	if err != nil {
		log.Printf("[report][overallocation][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to detect over-allocation"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary  Per-member workload
// @Tags     Reports
// @Produce  json
// @Router   /reports/workload [get]
func (h *ReportHandler) Workload(c *gin.Context) {
	rows, err := h.service.GetWorkloads(c.Request.Context())
	if err != nil {
		log.Printf("[report][workload][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute workload"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary  Download a project report PDF
// @Tags     Reports
// @Produce  application/pdf
// @Router   /reports/projects/{id}/pdf [get]
func (h *ReportHandler) ProjectPDF(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[report][pdf] project=%s by member=%s role=%d", id, memberID, roleID)

	path, err := h.service.GenerateProjectPDF(c.Request.Context(), id)
	if err != nil {
		log.Printf("[report][pdf][err] project=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	if path == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.File(path)
}

// @Summary  Download the workload report PDF
// @Tags     Reports
// @Produce  application/pdf
// @Router   /reports/workload/pdf [get]
func (h *ReportHandler) WorkloadPDF(c *gin.Context) {
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[report][workload-pdf] by member=%s role=%d", memberID, roleID)

	path, err := h.service.GenerateWorkloadPDF(c.Request.Context())
	if err != nil {
		log.Printf("[report][workload-pdf][err] %v", err)
		respondServiceError(c, err)
		return
	}
	c.File(path)
}

// POST /reports/overallocation/notify
// Emails the managers whose projects have over-allocated resources.
func (h *ReportHandler) NotifyOverAllocation(c *gin.Context) {
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[report][notify] by member=%s role=%d", memberID, roleID)

	sent, err := h.service.NotifyOverAllocation(c.Request.Context())
	if err != nil {
		log.Printf("[report][notify][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send notifications"})
		return
	}
	log.Printf("[report][notify][ok] sent=%d", sent)
	c.JSON(http.StatusOK, gin.H{"notified": sent})
}
