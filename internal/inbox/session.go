package inbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAlreadySubscribed is returned when a session already has a live subscription.
var ErrAlreadySubscribed = errors.New("inbox session already subscribed")

const updateBuffer = 16

// Store persists the user's notification actions.
type Store interface {
	ListActive(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)
	MarkUnread(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
	Archive(ctx context.Context, userID, id uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	RecordClick(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)
}

// Feed opens realtime subscriptions to a user's notification changes.
type Feed interface {
	Subscribe(ctx context.Context, userID uuid.UUID) (service.FeedSubscription, error)
}

// Session is one user's view of their active notifications.
// Items are treated as immutable: every change swaps in a new record.
type Session struct {
	userID uuid.UUID
	store  Store
	feed   Feed
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	items   []*entity.Notification
	loadErr error
	sub     *Subscription
}

// NewSession creates an empty session for the user.
func NewSession(userID uuid.UUID, store Store, feed Feed, logger *slog.Logger) *Session {
	return &Session{
		userID: userID,
		store:  store,
		feed:   feed,
		logger: logger,
		now:    time.Now,
		items:  []*entity.Notification{},
	}
}

// UserID returns the owner of the session.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// Items returns a snapshot of the active list, newest first.
func (s *Session) Items() []*entity.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*entity.Notification, len(s.items))
	copy(items, s.items)

	return items
}

// Err returns the error of the last failed load, or nil once a load succeeded.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadErr
}

// LoadAll replaces the list with the server's active notifications.
// On failure the previous list is kept and the error is remembered.
func (s *Session) LoadAll(ctx context.Context) error {
	items, err := s.store.ListActive(ctx, s.userID, 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.loadErr = errors.Wrap(err, "failed to load notifications")

		return s.loadErr
	}

	if items == nil {
		items = []*entity.Notification{}
	}
	s.items = items
	s.loadErr = nil

	return nil
}

// Apply folds a change event into the list and returns the new unread count.
func (s *Session) Apply(event entity.ChangeEvent) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = Reduce(s.items, event)

	return UnreadCount(s.items)
}

// Update is emitted after an event was folded into the list.
type Update struct {
	Event       entity.ChangeEvent
	UnreadCount int
}

// Subscribe opens the session's single realtime subscription. Events are folded into
// the list as they arrive and then announced on Updates. The subscription ends when
// ctx is done, the feed closes, or Close is called.
func (s *Session) Subscribe(ctx context.Context) (*Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil && !s.sub.isClosed() {
		return nil, ErrAlreadySubscribed
	}

	feedSub, err := s.feed.Subscribe(ctx, s.userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to notification feed")
	}

	sub := &Subscription{
		feed:    feedSub,
		updates: make(chan Update, updateBuffer),
		done:    make(chan struct{}),
	}
	s.sub = sub

	go s.run(ctx, sub)

	return sub, nil
}

func (s *Session) run(ctx context.Context, sub *Subscription) {
	defer close(sub.updates)
	defer func() { _ = sub.Close() }()

	events := sub.feed.Events()
	for {
		select {
		case <-sub.done:
			return
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Record == nil {
				continue
			}
			if event.Record.UserID != uuid.Nil && event.Record.UserID != s.userID {
				s.logger.Warn("Ignoring change event of another user",
					slog.String("user_id", s.userID.String()),
					slog.String("notification_id", event.Record.ID.String()),
				)

				continue
			}

			update := Update{Event: event, UnreadCount: s.Apply(event)}

			select {
			case sub.updates <- update:
			case <-sub.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}

// MarkRead flips the notification to read locally, then persists it.
// If persisting fails the previous state is restored.
func (s *Session) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.setRead(ctx, id, true)
}

// MarkUnread is the inverse of MarkRead with the same compensation.
func (s *Session) MarkUnread(ctx context.Context, id uuid.UUID) error {
	return s.setRead(ctx, id, false)
}

func (s *Session) setRead(ctx context.Context, id uuid.UUID, read bool) error {
	s.mu.Lock()
	prev := s.find(id)
	next := prev
	if prev != nil && prev.Read != read {
		next = prev.Clone()
		if read {
			next.MarkRead(s.now())
		} else {
			next.MarkUnread()
		}
		s.replace(prev.ID, next)
	}
	s.mu.Unlock()

	persist := s.store.MarkUnread
	if read {
		persist = s.store.MarkRead
	}

	updated, err := persist(ctx, s.userID, id)
	if err != nil {
		if prev != nil && next != prev {
			s.swapIfCurrent(id, next, prev)
		}
		s.logger.Warn("Reverted optimistic read state",
			slog.String("notification_id", id.String()),
			slog.Bool("read", read),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to persist read state")
	}

	if updated != nil && next != nil {
		s.swapIfCurrent(id, next, updated)
	}

	return nil
}

// swapIfCurrent replaces the record only while the slot still holds expected.
// A feed event folded in meanwhile is newer and is kept.
func (s *Session) swapIfCurrent(id uuid.UUID, expected, n *entity.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(id) != expected {
		return
	}
	s.replace(id, n)
}

// MarkAllRead marks every notification read with one server call and then updates the list.
func (s *Session) MarkAllRead(ctx context.Context) (int, error) {
	count, err := s.store.MarkAllRead(ctx, s.userID, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	next := make([]*entity.Notification, len(s.items))
	for i, n := range s.items {
		if n.Read {
			next[i] = n

			continue
		}
		read := n.Clone()
		read.MarkRead(now)
		next[i] = read
	}
	s.items = next

	return count, nil
}

// Archive persists the archive and then drops the notification from the list.
func (s *Session) Archive(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Archive(ctx, s.userID, id); err != nil {
		return errors.Wrap(err, "failed to archive notification")
	}

	s.remove(id)

	return nil
}

// Delete persists the deletion and then drops the notification from the list.
func (s *Session) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, s.userID, id); err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}

	s.remove(id)

	return nil
}

// RecordClick marks the notification read if needed, records the click and
// returns the link the caller should navigate to. The link may be empty.
// A failed mark-read is logged and the click is still recorded.
func (s *Session) RecordClick(ctx context.Context, id uuid.UUID) (string, error) {
	s.mu.RLock()
	current := s.find(id)
	s.mu.RUnlock()

	if current != nil && !current.Read {
		if err := s.MarkRead(ctx, id); err != nil {
			s.logger.Warn("Failed to mark clicked notification read",
				slog.String("notification_id", id.String()),
				slog.Any("error", err),
			)
		}
	}

	clicked, err := s.store.RecordClick(ctx, s.userID, id)
	if err != nil {
		return "", errors.Wrap(err, "failed to record click")
	}

	s.mu.Lock()
	s.replace(clicked.ID, clicked)
	s.mu.Unlock()

	return clicked.LinkURL, nil
}

// Close ends the live subscription, if any.
func (s *Session) Close() error {
	s.mu.RLock()
	sub := s.sub
	s.mu.RUnlock()

	if sub == nil {
		return nil
	}

	return sub.Close()
}

func (s *Session) find(id uuid.UUID) *entity.Notification {
	if idx := indexOf(s.items, id); idx >= 0 {
		return s.items[idx]
	}

	return nil
}

// replace swaps the record in place; records no longer in the list stay out.
func (s *Session) replace(id uuid.UUID, n *entity.Notification) {
	idx := indexOf(s.items, id)
	if idx < 0 {
		return
	}

	next := make([]*entity.Notification, len(s.items))
	copy(next, s.items)
	next[idx] = n
	s.items = next
}

func (s *Session) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = without(s.items, id)
}

// Subscription is a live realtime subscription of a session.
type Subscription struct {
	feed    service.FeedSubscription
	updates chan Update
	done    chan struct{}
	once    sync.Once
}

// Updates delivers one Update per folded event. It is closed when the subscription ends.
func (sub *Subscription) Updates() <-chan Update {
	return sub.updates
}

// Close releases the feed subscription. It is safe to call more than once and
// after the feed already went away.
func (sub *Subscription) Close() error {
	var err error
	sub.once.Do(func() {
		close(sub.done)
		err = sub.feed.Close()
	})

	return err
}

func (sub *Subscription) isClosed() bool {
	select {
	case <-sub.done:
		return true
	default:
		return false
	}
}
