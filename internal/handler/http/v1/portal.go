package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/disaster_portal/internal/catalog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// @Summary Landing page content
// @Tags Portal
// @Produce json
// @Success 200 {object} catalog.LandingPage
// @Router /portal/landing [get]
func (h *Handler) getLanding(c *gin.Context) {
	c.JSON(http.StatusOK, h.portalService.Landing())
}

// @Summary Live map
// @Description Active disasters, weather and shelters. toggle applies the map filter toggle to the given filters.
// @Tags Portal
// @Produce json
// @Param filter query []string false "Active filters" collectionFormat(multi)
// @Param toggle query string false "Filter to toggle" Enums(all, flood, landslide, fire, cyclone)
// @Success 200 {object} catalog.MapPage
// @Failure 400 {object} map[string]string "Unknown filter"
// @Router /portal/map [get]
func (h *Handler) getLiveMap(c *gin.Context) {
	filters, ok := h.mapFilters(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.portalService.LiveMap(filters))
}

// @Summary Live map markers as GeoJSON
// @Tags Portal
// @Produce json
// @Param filter query []string false "Active filters" collectionFormat(multi)
// @Param toggle query string false "Filter to toggle"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Unknown filter"
// @Router /portal/map/geojson [get]
func (h *Handler) getMapGeoJSON(c *gin.Context) {
	filters, ok := h.mapFilters(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, h.portalService.MapGeoJSON(filters))
}

func (h *Handler) mapFilters(c *gin.Context) ([]string, bool) {
	filters := catalog.NormalizeFilters(c.QueryArray("filter"))
	if toggle, ok := c.GetQuery("toggle"); ok {
		if !catalog.IsMapFilter(toggle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown map filter %q", toggle)})
			return nil, false
		}
		filters = catalog.ToggleFilter(filters, toggle)
	}
	return filters, true
}

// @Summary AI predictions
// @Tags Portal
// @Produce json
// @Success 200 {object} catalog.PredictionsPage
// @Router /portal/predictions [get]
func (h *Handler) getPredictions(c *gin.Context) {
	c.JSON(http.StatusOK, h.portalService.Predictions())
}

// @Summary Resources
// @Tags Portal
// @Produce json
// @Success 200 {object} catalog.ResourcesPage
// @Router /portal/resources [get]
func (h *Handler) getResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.portalService.Resources())
}

// @Summary Emergency contacts
// @Tags Portal
// @Produce json
// @Success 200 {array} models.EmergencyContact
// @Router /portal/emergency [get]
func (h *Handler) getEmergencyContacts(c *gin.Context) {
	c.JSON(http.StatusOK, h.portalService.EmergencyContacts())
}

// @Summary Admin dashboard
// @Description Dashboard stats, activity and recent reports. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} catalog.DashboardPage
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")

	page, err := h.portalService.Dashboard(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get dashboard from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Export submitted reports
// @Description Download submitted reports as an XLSX workbook. Requires API key.
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of reports" default(1000)
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/reports/export [get]
func (h *Handler) exportReports(c *gin.Context) {
	log := h.logger.WithField("method", "exportReports")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	data, err := h.portalService.ExportReports(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to export reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	filename := fmt.Sprintf("incident_reports_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
