package flight

import (
	"net/http"
	"strings"

	"flightservice/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service *Service
}

func NewFlightHandler(s *Service) *FlightHandler {
	return &FlightHandler{
		service: s,
	}
}

// RegisterRoutes expects a router group that already enforces authentication.
func (h *FlightHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/flight/consult/:origin/:destination/:departure_date/:return_date", h.ConsultHandler)
}

// ConsultHandler godoc
// @Summary      Search round-trip flight combinations
// @Description  Fetches both legs, prices every outbound x return pair and sorts by total price
// @Tags         flights
// @Produce      json
// @Security     TokenAuth
// @Param        origin          path string true "Origin IATA code"
// @Param        destination     path string true "Destination IATA code"
// @Param        departure_date  path string true "Departure date (YYYY-MM-DD)"
// @Param        return_date     path string true "Return date (YYYY-MM-DD)"
// @Success      200 {array}  FlightCombination
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Failure      504 {object} map[string]string
// @Router       /flight/consult/{origin}/{destination}/{departure_date}/{return_date} [get]
func (h *FlightHandler) ConsultHandler(c *gin.Context) {
	req := SearchRequest{
		Origin:        normalizeCode(c.Param("origin")),
		Destination:   normalizeCode(c.Param("destination")),
		DepartureDate: strings.TrimSpace(c.Param("departure_date")),
		ReturnDate:    strings.TrimSpace(c.Param("return_date")),
	}

	combos, err := h.service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		apperror.Send(c, err)
		return
	}

	c.JSON(http.StatusOK, combos)
}

func normalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
