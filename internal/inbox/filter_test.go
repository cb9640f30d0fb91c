package inbox

import (
	"testing"
	"time"

	"staffportal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []*entity.Notification {
	task := newNotification("Review sprint board", time.Minute)
	task.Category = entity.CategoryTasks
	task.Priority = entity.PriorityHigh
	task.ActorName = "Dana Whitfield"

	asset := newNotification("Laptop assigned", time.Hour)
	asset.Category = entity.CategoryAssets
	asset.MarkRead(baseTime)

	mention := newNotification("You were mentioned", 2*time.Hour)
	mention.Category = entity.CategoryMentions
	mention.Message = "Check the onboarding checklist"

	return []*entity.Notification{task, asset, mention}
}

func TestFilter_Apply(t *testing.T) {
	items := filterFixture()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter matches all", Filter{}, []string{"Review sprint board", "Laptop assigned", "You were mentioned"}},
		{"all tab", Filter{Tab: TabAll, Priority: PriorityAll}, []string{"Review sprint board", "Laptop assigned", "You were mentioned"}},
		{"unread tab", Filter{Tab: TabUnread}, []string{"Review sprint board", "You were mentioned"}},
		{"category tab", Filter{Tab: entity.CategoryAssets}, []string{"Laptop assigned"}},
		{"priority", Filter{Priority: string(entity.PriorityHigh)}, []string{"Review sprint board"}},
		{"query matches title case-insensitively", Filter{Query: "LAPTOP"}, []string{"Laptop assigned"}},
		{"query matches message", Filter{Query: "onboarding"}, []string{"You were mentioned"}},
		{"query matches actor name", Filter{Query: "whitfield"}, []string{"Review sprint board"}},
		{"criteria combine", Filter{Tab: TabUnread, Priority: string(entity.PriorityNormal), Query: "mention"}, []string{"You were mentioned"}},
		{"nothing matches", Filter{Tab: entity.CategoryFeedback}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(tt.filter.Apply(items)))
		})
	}
}

func TestCategoryCounts(t *testing.T) {
	counts := CategoryCounts(filterFixture())

	assert.Equal(t, 3, counts.All)
	assert.Equal(t, 2, counts.Unread)
	assert.Equal(t, 1, counts.Categories[entity.CategoryTasks])
	assert.Equal(t, 1, counts.Categories[entity.CategoryAssets])
	assert.Equal(t, 1, counts.Categories[entity.CategoryMentions])
	assert.Equal(t, 0, counts.Categories[entity.CategoryFeedback])
}

func TestUnreadCount_Empty(t *testing.T) {
	assert.Zero(t, UnreadCount(nil))
}
