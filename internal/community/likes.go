package community

import (
	"context"

	"github.com/dmitrijs2005/artspace/internal/domain"
	"github.com/dmitrijs2005/artspace/internal/storage"
)

// LikeResult reports the state after a toggle. Likes is meaningful only
// when Counted is set, i.e. the artwork is a community submission with a
// persisted counter.
type LikeResult struct {
	Liked   bool `json:"liked"`
	Likes   int  `json:"likes"`
	Counted bool `json:"counted"`
}

func (c *Catalog) likeSlot(userID string) *storage.Slot[domain.LikeSet] {
	return storage.NewSlot[domain.LikeSet](c.store, storage.LikedArtKey(userID), nil, c.logger)
}

// LikeSet returns the ids actor has liked; anonymous actors have none.
func (c *Catalog) LikeSet(ctx context.Context, actor *domain.User) domain.LikeSet {
	if actor == nil {
		return nil
	}
	return c.likeSlot(actor.ID).Get(ctx)
}

// ToggleLike flips id in actor's like-set and moves the counter of a
// community artwork with it. The counter never drops below zero.
func (c *Catalog) ToggleLike(ctx context.Context, actor *domain.User, id string) (LikeResult, error) {
	if actor == nil {
		return LikeResult{}, domain.ErrUnauthenticated
	}

	var res LikeResult
	if err := c.likeSlot(actor.ID).Update(ctx, func(set domain.LikeSet) (domain.LikeSet, error) {
		next, liked := set.Toggle(id)
		res.Liked = liked
		return next, nil
	}); err != nil {
		return LikeResult{}, err
	}

	delta := -1
	if res.Liked {
		delta = 1
	}
	if err := c.art.Update(ctx, func(arts []domain.Artwork) ([]domain.Artwork, error) {
		for i := range arts {
			if arts[i].ID != id {
				continue
			}
			arts[i].Likes = max(arts[i].Likes+delta, 0)
			res.Likes = arts[i].Likes
			res.Counted = true
			break
		}
		return arts, nil
	}); err != nil {
		return LikeResult{}, err
	}

	return res, nil
}
