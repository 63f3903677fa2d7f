package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"getjoy-backend/client"
	"getjoy-backend/services"
	"getjoy-backend/utils"
)

// respondError maps service errors onto the HTTP surface. Store failures
// never leak upstream details to the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateEmail):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		var re *client.RemoteError
		if errors.As(err, &re) {
			log.Printf("❌ store error: %v", re)
			utils.JSONError(c, http.StatusBadGateway, "store request failed")
			return
		}
		log.Printf("❌ internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
