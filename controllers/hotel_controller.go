package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"getjoy-backend/models"
	"getjoy-backend/services"
	"getjoy-backend/utils"
)

type HotelController struct {
	hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{hotels: hotels}
}

// GetWithRooms (GET /api/hotels/:id) returns the hotel with its rooms
// joined in.
func (h *HotelController) GetWithRooms(c *gin.Context) {
	view, err := h.hotels.GetWithRooms(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// ListForDestination (GET /api/destinations/:id/hotels) returns every hotel
// of a destination, each with its rooms.
func (h *HotelController) ListForDestination(c *gin.Context) {
	id, err := models.ParseNumericID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid destination id")
		return
	}

	views, err := h.hotels.ListForDestination(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}
