package views

import (
	"testing"
	"time"

	types "github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/services"
)

func TestDisplayTime(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	stamp := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)

	got := DisplayTime(stamp, loc)
	if got == nil {
		t.Fatal("expected non-nil display")
	}
	if *got != "2024-06-01 14:30" {
		t.Fatalf("unexpected display: %q", *got)
	}
}

func TestDisplayTimeZeroIsNull(t *testing.T) {
	if got := DisplayTime(time.Time{}, time.UTC); got != nil {
		t.Fatalf("zero time should render null, got %q", *got)
	}
}

func TestDisplayTimeMissingZoneFallsBack(t *testing.T) {
	stamp := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
	got := DisplayTime(stamp, nil)
	if got == nil {
		t.Fatal("expected non-nil display")
	}
	if *got != stamp.Format(time.RFC3339) {
		t.Fatalf("expected raw RFC3339 fallback, got %q", *got)
	}
}

func TestDiscussionViewEmbedsComments(t *testing.T) {
	creator := int64(10)
	d := &types.Discussion{ID: 1, Title: "D1", Body: "b", Author: "A", CreatorID: &creator, CreatedAt: time.Now()}
	c := &types.Comment{ID: 2, DiscussionID: 1, Body: "c1", Author: "U1", CreatedAt: time.Now()}

	view := Discussion(&services.DiscussionDetail{Discussion: d, Comments: []*types.Comment{c}}, time.UTC)
	if len(view.Comments) != 1 {
		t.Fatalf("expected 1 embedded comment, got %d", len(view.Comments))
	}
	if view.Comments[0].DiscussionTitle != "D1" {
		t.Fatalf("embedded comment should carry parent title, got %q", view.Comments[0].DiscussionTitle)
	}
	if view.CreatedAtDisplay == nil {
		t.Fatal("expected created_at_display")
	}
}
