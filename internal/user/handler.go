package user

import (
	"net/http"

	"flightservice/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterRoutes mounts the public endpoints on public and logout on protected.
func (h *Handler) RegisterRoutes(public, protected gin.IRoutes) {
	public.POST("/user/register", h.RegisterHandler)
	public.POST("/user/obtain-token", h.ObtainTokenHandler)
	protected.POST("/user/logout", h.LogoutHandler)
}

// RegisterHandler godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body Credentials true "Username and password"
// @Success      201 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /user/register [post]
func (h *Handler) RegisterHandler(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		apperror.Send(c, ErrMissingCredentials)
		return
	}

	token, err := h.service.Register(c.Request.Context(), creds)
	if err != nil {
		apperror.Send(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"token":   token,
	})
}

// ObtainTokenHandler godoc
// @Summary      Exchange credentials for an API token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body Credentials true "Username and password"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /user/obtain-token [post]
func (h *Handler) ObtainTokenHandler(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		apperror.Send(c, ErrInvalidCredentials)
		return
	}

	token, err := h.service.ObtainToken(c.Request.Context(), creds)
	if err != nil {
		apperror.Send(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// LogoutHandler godoc
// @Summary      Revoke the presented token
// @Tags         users
// @Security     TokenAuth
// @Success      204
// @Failure      401 {object} map[string]string
// @Router       /user/logout [post]
func (h *Handler) LogoutHandler(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		apperror.Send(c, ErrUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context(), sess.ID); err != nil {
		apperror.Send(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
