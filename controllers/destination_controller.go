package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"getjoy-backend/models"
	"getjoy-backend/services"
	"getjoy-backend/utils"
)

type DestinationController struct {
	destinations *services.DestinationService
	users        *services.UserService
}

func NewDestinationController(destinations *services.DestinationService, users *services.UserService) *DestinationController {
	return &DestinationController{destinations: destinations, users: users}
}

// List (GET /api/destinations) returns every destination with like status
// resolved for the session user, or isLiked=false everywhere when nobody is
// signed in.
func (d *DestinationController) List(c *gin.Context) {
	var userID *models.NumericID
	if u := d.users.CurrentUser(); u != nil {
		id := u.ID
		userID = &id
	}

	views, err := d.destinations.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// GetByID (GET /api/destinations/:id)
func (d *DestinationController) GetByID(c *gin.Context) {
	id, err := models.ParseNumericID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid destination id")
		return
	}

	view, err := d.destinations.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}
