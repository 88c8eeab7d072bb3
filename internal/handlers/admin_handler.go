package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sonna_backend/internal/services"
	"sonna_backend/internal/services/dto"
)

// AdminHandler serves the admin dashboard: analytics, content CRUD,
// application review and system settings.
type AdminHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewAdminHandler(base *BaseHandler, contentService services.ContentService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

// RegisterRoutes registers the admin-only routes.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		admin.GET("/get-dashboard-analytics", h.Dashboard)

		admin.GET("/get-all-news", h.GetAllNews)
		admin.GET("/get-all-products", h.GetAllProducts)
		admin.GET("/get-all-camps", h.GetAllCamps)
		admin.GET("/get-all-podcasts", h.GetAllPodcasts)
		admin.GET("/get-all-experts", h.GetAllExperts)
		admin.GET("/get-all-users", h.GetAllUsers)

		admin.GET("/get-applications", h.GetApplications)
		admin.GET("/get-partners", h.GetPartners)

		admin.GET("/get-settings", h.GetSettings)
		admin.POST("/update-config", h.UpdateConfig)

		admin.POST("/content/:type", h.AddContent)
		admin.DELETE("/content/:type/:id", h.DeleteContent)
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.contentService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) GetAllNews(c *gin.Context) {
	items, err := h.contentService.ListNews(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) GetAllProducts(c *gin.Context) {
	items, err := h.contentService.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) GetAllCamps(c *gin.Context) {
	items, err := h.contentService.ListCamps(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) GetAllPodcasts(c *gin.Context) {
	items, err := h.contentService.ListPodcasts(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) GetAllExperts(c *gin.Context) {
	items, err := h.contentService.ListExperts(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := h.contentService.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) GetApplications(c *gin.Context) {
	projects, err := h.contentService.Applications(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetPartners returns an empty list. Partners have no backing table yet;
// the endpoint exists so the dashboard can render the section.
func (h *AdminHandler) GetPartners(c *gin.Context) {
	c.JSON(http.StatusOK, []struct{}{})
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.contentService.Settings(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var req dto.UpdateSettingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	setting, err := h.contentService.UpdateSetting(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *AdminHandler) AddContent(c *gin.Context) {
	var req dto.ContentCreateRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	// Image is optional for every content type.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	if err := h.contentService.AddContent(c.Request.Context(), c.Param("type"), &req, image); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content created successfully"})
}

func (h *AdminHandler) DeleteContent(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contentService.DeleteContent(c.Request.Context(), c.Param("type"), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}
