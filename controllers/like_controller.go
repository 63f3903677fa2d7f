package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"getjoy-backend/models"
	"getjoy-backend/services"
	"getjoy-backend/utils"
)

type LikeController struct {
	likes        *services.LikeService
	destinations *services.DestinationService
	users        *services.UserService
}

func NewLikeController(likes *services.LikeService, destinations *services.DestinationService, users *services.UserService) *LikeController {
	return &LikeController{likes: likes, destinations: destinations, users: users}
}

func (l *LikeController) sessionUser(c *gin.Context) (*models.User, bool) {
	u := l.users.CurrentUser()
	if u == nil {
		utils.JSONError(c, http.StatusUnauthorized, "sign in to manage likes")
		return nil, false
	}
	return u, true
}

type likeRequest struct {
	TargetKind string `json:"targetKind" binding:"required"`
	TargetID   string `json:"targetId" binding:"required"`
}

func (r likeRequest) target(c *gin.Context) (models.LikeTarget, bool) {
	target, err := models.ParseLikeTarget(r.TargetKind, r.TargetID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return models.LikeTarget{}, false
	}
	return target, true
}

// Like (POST /api/likes) likes a destination or hotel and returns the new
// counter value.
func (l *LikeController) Like(c *gin.Context) {
	user, ok := l.sessionUser(c)
	if !ok {
		return
	}
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	target, ok := req.target(c)
	if !ok {
		return
	}

	count, err := l.likes.Like(c.Request.Context(), user.ID, target)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"likes": count})
}

// Unlike (POST /api/likes/remove). A missing like row is benign: the
// caller wanted the target unliked and it already is.
func (l *LikeController) Unlike(c *gin.Context) {
	user, ok := l.sessionUser(c)
	if !ok {
		return
	}
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	target, ok := req.target(c)
	if !ok {
		return
	}

	count, err := l.likes.Unlike(c.Request.Context(), user.ID, target)
	if errors.Is(err, services.ErrLikeNotFound) {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"removed": false})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"removed": true, "likes": count})
}

type toggleRequest struct {
	likeRequest
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// Toggle (POST /api/likes/toggle) flips the caller's like state with the
// optimistic apply/commit/revert discipline and returns the settled state.
func (l *LikeController) Toggle(c *gin.Context) {
	user, ok := l.sessionUser(c)
	if !ok {
		return
	}
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	target, ok := req.target(c)
	if !ok {
		return
	}

	state, err := l.likes.Toggle(c.Request.Context(), user.ID, target, services.LikeState{
		Liked: req.Liked,
		Likes: req.Likes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, state)
}

// Status (GET /api/likes/status?targetKind=&targetId=)
func (l *LikeController) Status(c *gin.Context) {
	user, ok := l.sessionUser(c)
	if !ok {
		return
	}
	target, err := models.ParseLikeTarget(c.Query("targetKind"), c.Query("targetId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	liked, err := l.likes.IsLiked(c.Request.Context(), user.ID, target)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"liked": liked})
}

// Liked (GET /api/likes) returns the session user's liked destinations and
// hotels.
func (l *LikeController) Liked(c *gin.Context) {
	user, ok := l.sessionUser(c)
	if !ok {
		return
	}

	items, err := l.destinations.Liked(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}
