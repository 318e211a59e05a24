package items

import (
	"time"

	"github.com/go-faster/errors"

	"github.com/frisklabs/frisk/api"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/models"
)

// TransformItems maps one page of raw items into view models, preserving
// backend order. A malformed required field fails the entire page; user id
// resolution misses never do.
func TransformItems(raw []api.RawItem, dir directory.D) ([]models.Item, error) {
	out := make([]models.Item, 0, len(raw))
	for _, r := range raw {
		item, err := transformItem(r, dir)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func transformItem(r api.RawItem, dir directory.D) (models.Item, error) {
	created, err := time.Parse(time.RFC3339, r.ImportDate)
	if err != nil {
		return models.Item{}, errors.Wrapf(err, "invalid import date '%s' for purchase '%s'", r.ImportDate, r.PurchaseID)
	}

	item := models.Item{
		ID:         r.PurchaseID,
		Status:     r.Status,
		Created:    created,
		Amount:     r.TotalAmount,
		Currency:   r.Currency,
		QueueIDs:   r.QueueIDs,
		LockedByID: r.LockedBy,
	}

	// Lock timestamps are best-effort; the lock itself matters, not when
	// it was taken.
	if r.LockedOn != "" {
		if lockedOn, err := time.Parse(time.RFC3339, r.LockedOn); err == nil {
			item.LockedOn = &lockedOn
		}
	}

	if r.Decision != nil {
		applied, err := time.Parse(time.RFC3339, r.Decision.Applied)
		if err != nil {
			return models.Item{}, errors.Wrapf(err, "invalid decision timestamp '%s' for purchase '%s'", r.Decision.Applied, r.PurchaseID)
		}
		item.Decision = &models.Decision{
			AuthorID: r.Decision.UserID,
			Label:    r.Decision.Label,
			Applied:  applied,
		}
	}

	// The decision author takes priority over the lock owner.
	analystID := r.LockedBy
	if r.Decision != nil && r.Decision.UserID != "" {
		analystID = r.Decision.UserID
	}
	if analystID != "" {
		if u, ok := dir.Get(analystID); ok {
			item.Analyst = &u
		}
	}

	for _, n := range r.Notes {
		note := models.Note{
			Note:     n.Note,
			AuthorID: n.UserID,
		}
		if createdAt, err := time.Parse(time.RFC3339, n.Created); err == nil {
			note.Created = createdAt
		}
		if u, ok := dir.Get(n.UserID); ok {
			note.User = &u
		}
		item.Notes = append(item.Notes, note)
	}

	return item, nil
}
