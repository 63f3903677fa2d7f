package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"getjoy-backend/models"
	"getjoy-backend/services"
	"getjoy-backend/utils"
)

type BookingController struct {
	bookings *services.BookingService
	users    *services.UserService
}

func NewBookingController(bookings *services.BookingService, users *services.UserService) *BookingController {
	return &BookingController{bookings: bookings, users: users}
}

func (b *BookingController) sessionUser(c *gin.Context) (*models.User, bool) {
	u := b.users.CurrentUser()
	if u == nil {
		utils.JSONError(c, http.StatusUnauthorized, "sign in to manage bookings")
		return nil, false
	}
	return u, true
}

// List (GET /api/bookings) returns the session user's bookings with hotel
// display metadata attached.
func (b *BookingController) List(c *gin.Context) {
	user, ok := b.sessionUser(c)
	if !ok {
		return
	}

	views, err := b.bookings.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// Create (POST /api/bookings)
func (b *BookingController) Create(c *gin.Context) {
	user, ok := b.sessionUser(c)
	if !ok {
		return
	}

	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := b.bookings.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// Get (GET /api/bookings/:id)
func (b *BookingController) Get(c *gin.Context) {
	if _, ok := b.sessionUser(c); !ok {
		return
	}

	booking, err := b.bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// Cancel (POST /api/bookings/:id/cancel)
func (b *BookingController) Cancel(c *gin.Context) {
	if _, ok := b.sessionUser(c); !ok {
		return
	}

	booking, err := b.bookings.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// Delete (DELETE /api/bookings/:id). No UI flow calls this; it mirrors the
// store endpoint.
func (b *BookingController) Delete(c *gin.Context) {
	if _, ok := b.sessionUser(c); !ok {
		return
	}

	if err := b.bookings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil)
}
