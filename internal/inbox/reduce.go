// Package inbox keeps a user's active notification list in step with the server.
//
// A Session holds the ordered list, folds realtime change events into it and
// applies the user's read, archive and delete actions against a Store.
package inbox

import (
	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
)

// Reduce folds one change event into an active list ordered newest-first and
// returns the new list. The input slice is never modified.
//
// INSERT places the record at its created_at position, which for a freshly created
// notification is the front of the list. A record already present is replaced.
// UPDATE replaces the record in place, or drops it once archived.
// DELETE removes the record.
func Reduce(items []*entity.Notification, event entity.ChangeEvent) []*entity.Notification {
	record := event.Record
	if record == nil {
		return items
	}

	switch event.Kind {
	case entity.ChangeInsert:
		next := without(items, record.ID)
		if record.Archived {
			return next
		}

		return insertOrdered(next, record)
	case entity.ChangeUpdate:
		idx := indexOf(items, record.ID)
		if idx < 0 {
			return items
		}
		if record.Archived {
			return without(items, record.ID)
		}
		next := make([]*entity.Notification, len(items))
		copy(next, items)
		next[idx] = record

		return next
	case entity.ChangeDelete:
		return without(items, record.ID)
	default:
		return items
	}
}

func indexOf(items []*entity.Notification, id uuid.UUID) int {
	for i, n := range items {
		if n.ID == id {
			return i
		}
	}

	return -1
}

func without(items []*entity.Notification, id uuid.UUID) []*entity.Notification {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}

	next := make([]*entity.Notification, 0, len(items)-1)
	next = append(next, items[:idx]...)

	return append(next, items[idx+1:]...)
}

// insertOrdered puts the record before the first item that is not newer than it.
func insertOrdered(items []*entity.Notification, record *entity.Notification) []*entity.Notification {
	pos := len(items)
	for i, n := range items {
		if !record.CreatedAt.Before(n.CreatedAt) {
			pos = i

			break
		}
	}

	next := make([]*entity.Notification, 0, len(items)+1)
	next = append(next, items[:pos]...)
	next = append(next, record)

	return append(next, items[pos:]...)
}
