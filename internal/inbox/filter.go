package inbox

import (
	"strings"

	"staffportal/internal/domain/entity"
)

// Tabs understood by Filter besides plain category names.
const (
	TabAll    = "all"
	TabUnread = "unread"
)

// PriorityAll disables the priority filter.
const PriorityAll = "all"

// Filter narrows the local list. Zero values match everything.
type Filter struct {
	Tab      string // all, unread, or a category
	Priority string // all, or a notification priority
	Query    string // case-insensitive substring of title, message or actor name
}

// Match reports whether a notification passes every criterion of the filter.
func (f Filter) Match(n *entity.Notification) bool {
	switch f.Tab {
	case "", TabAll:
	case TabUnread:
		if n.Read {
			return false
		}
	default:
		if n.Category != f.Tab {
			return false
		}
	}

	if f.Priority != "" && f.Priority != PriorityAll && string(n.Priority) != f.Priority {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(n.Title), query) ||
		strings.Contains(strings.ToLower(n.Message), query) ||
		strings.Contains(strings.ToLower(n.ActorName), query)
}

// Apply returns the matching notifications in their original order.
func (f Filter) Apply(items []*entity.Notification) []*entity.Notification {
	matched := make([]*entity.Notification, 0, len(items))
	for _, n := range items {
		if f.Match(n) {
			matched = append(matched, n)
		}
	}

	return matched
}

// UnreadCount counts the unread notifications of the list.
func UnreadCount(items []*entity.Notification) int {
	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}

	return count
}

// Counts summarizes a list for the tab badges.
type Counts struct {
	All        int            `json:"all"`
	Unread     int            `json:"unread"`
	Categories map[string]int `json:"categories"`
}

// CategoryCounts tallies the list per category. The well-known categories are always present.
func CategoryCounts(items []*entity.Notification) Counts {
	counts := Counts{
		All:    len(items),
		Unread: UnreadCount(items),
		Categories: map[string]int{
			entity.CategoryTasks:    0,
			entity.CategoryAssets:   0,
			entity.CategoryFeedback: 0,
			entity.CategoryMentions: 0,
		},
	}
	for _, n := range items {
		if n.Category != "" {
			counts.Categories[n.Category]++
		}
	}

	return counts
}
