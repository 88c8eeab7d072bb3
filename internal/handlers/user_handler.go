package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sonna_backend/internal/middleware"
	"sonna_backend/internal/services"
	"sonna_backend/internal/services/dto"
	"sonna_backend/pkg/apperrors"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes registers the authenticated user routes.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.POST("/update-profile", h.UpdateProfile)
		user.POST("/upload-project", h.UploadProject)
		user.GET("/my-projects", h.MyProjects)
	}
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UploadProject(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UploadProjectRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	// The file part is optional; a project can be submitted without one.
	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	project, uploadErr := h.userService.UploadProject(c.Request.Context(), userID, &req, file)
	if uploadErr != nil {
		h.HandleServiceError(c, uploadErr)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *UserHandler) MyProjects(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	projects, err := h.userService.MyProjects(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}
