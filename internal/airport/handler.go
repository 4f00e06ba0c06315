package airport

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

func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/airport/list", h.ListHandler)
}

// ListHandler godoc
// @Summary      List airports
// @Tags         airports
// @Produce      json
// @Security     TokenAuth
// @Success      200 {array}  Airport
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /airport/list [get]
func (h *Handler) ListHandler(c *gin.Context) {
	airports, err := h.service.List(c.Request.Context())
	if err != nil {
		apperror.Send(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}
