package services

import (
	"context"
	"errors"
	"net/url"

	"getjoy-backend/client"
	"getjoy-backend/models"
	"getjoy-backend/utils"
)

// LikeService maintains the user↔{destination,hotel} like relation over the
// flat likes collection. The store can only filter by one field, so every
// operation pulls the user's full like list and scans it in memory,
// O(likes-per-user) per call, fine at this data scale.
type LikeService struct {
	api *client.Client
}

func NewLikeService(api *client.Client) *LikeService {
	return &LikeService{api: api}
}

func (s *LikeService) userLikes(ctx context.Context, userID models.NumericID) ([]models.Like, error) {
	var likes []models.Like
	err := s.api.List(ctx, "likes", url.Values{"userId": {userID.String()}}, &likes)
	return likes, err
}

// IsLiked reports whether the user has liked the target. The first matching
// row is authoritative; the store never enforced (user, target) uniqueness.
func (s *LikeService) IsLiked(ctx context.Context, userID models.NumericID, target models.LikeTarget) (bool, error) {
	likes, err := s.userLikes(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, l := range likes {
		if target.Matches(l) {
			return true, nil
		}
	}
	return false, nil
}

// Like creates the like row, then bumps the target's likes counter, and
// returns the new count. The two writes are sequential, not atomic: if the
// bump fails the row exists without the count, so readers must tolerate a
// transient undercount.
func (s *LikeService) Like(ctx context.Context, userID models.NumericID, target models.LikeTarget) (int, error) {
	var created models.Like
	if err := s.api.Create(ctx, "likes", target.Row(userID), &created); err != nil {
		return 0, err
	}
	return s.bumpLikes(ctx, target, +1)
}

// Unlike deletes the first like row matching the target, then decrements
// the counter (floor 0). Returns ErrLikeNotFound, with no counter mutation,
// when the user never liked the target.
func (s *LikeService) Unlike(ctx context.Context, userID models.NumericID, target models.LikeTarget) (int, error) {
	likes, err := s.userLikes(ctx, userID)
	if err != nil {
		return 0, err
	}

	var row *models.Like
	for i := range likes {
		if target.Matches(likes[i]) {
			row = &likes[i]
			break
		}
	}
	if row == nil {
		return 0, ErrLikeNotFound
	}

	if err := s.api.Delete(ctx, "likes", row.ID); err != nil {
		return 0, err
	}
	return s.bumpLikes(ctx, target, -1)
}

// bumpLikes is the read-modify-write on the owning record's denormalized
// likes counter. The record is handled as a raw document so fields this
// service doesn't know about survive the PUT.
func (s *LikeService) bumpLikes(ctx context.Context, target models.LikeTarget, delta int) (int, error) {
	var doc map[string]any
	if err := s.api.Get(ctx, target.Collection(), target.RecordID(), &doc); err != nil {
		return 0, err
	}

	current := 0
	if v, ok := doc["likes"].(float64); ok {
		current = int(v)
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	doc["likes"] = next

	if err := s.api.Update(ctx, target.Collection(), target.RecordID(), doc, nil); err != nil {
		return 0, err
	}
	return next, nil
}

// LikeState is the caller-visible like status of one target.
type LikeState struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// Toggle flips the like state with the optimistic discipline: the tentative
// state is applied before the remote call, committed with the confirmed
// count on success, reverted on failure. An unlike that finds no row is
// benign: the flip stands and the count stays put.
func (s *LikeService) Toggle(ctx context.Context, userID models.NumericID, target models.LikeTarget, state LikeState) (LikeState, error) {
	cell := utils.NewOptimistic(state)

	tentative := LikeState{Liked: !state.Liked, Likes: state.Likes + 1}
	if !tentative.Liked {
		tentative.Likes = state.Likes - 1
		if tentative.Likes < 0 {
			tentative.Likes = 0
		}
	}
	token := cell.Apply(tentative)

	var count int
	var err error
	if tentative.Liked {
		count, err = s.Like(ctx, userID, target)
	} else {
		count, err = s.Unlike(ctx, userID, target)
		if errors.Is(err, ErrLikeNotFound) {
			token.Commit(LikeState{Liked: false, Likes: state.Likes})
			return cell.Get(), nil
		}
	}
	if err != nil {
		token.Revert()
		return cell.Get(), err
	}

	token.Commit(LikeState{Liked: tentative.Liked, Likes: count})
	return cell.Get(), nil
}
