package discussions

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/discussions-backend/internal/data/repos/testutil"
	types "github.com/yungbote/discussions-backend/internal/domain"
)

func TestDiscussionListOrdering(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	base := time.Now().Truncate(time.Second)
	oldest := testutil.SeedDiscussion(t, ctx, tx, "oldest", nil, base.Add(-2*time.Hour))
	// Two rows share a timestamp; the higher id must come first.
	tieLow := testutil.SeedDiscussion(t, ctx, tx, "tie-low", nil, base.Add(-time.Hour))
	tieHigh := testutil.SeedDiscussion(t, ctx, tx, "tie-high", nil, base.Add(-time.Hour))
	newest := testutil.SeedDiscussion(t, ctx, tx, "newest", nil, base)

	repo := NewDiscussionRepo(gdb, log)
	found, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(found) != 4 {
		t.Fatalf("expected 4 discussions, got %d", len(found))
	}
	wantOrder := []int64{newest.ID, tieHigh.ID, tieLow.ID, oldest.ID}
	for i, want := range wantOrder {
		if found[i].ID != want {
			t.Fatalf("position %d: got id %d want %d", i, found[i].ID, want)
		}
	}
}

func TestDiscussionDeleteCascadesComments(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	now := time.Now()
	parent := testutil.SeedDiscussion(t, ctx, tx, "parent", nil, now)
	doomed := testutil.SeedComment(t, ctx, tx, parent.ID, nil, now)
	other := testutil.SeedDiscussion(t, ctx, tx, "other", nil, now)
	survivor := testutil.SeedComment(t, ctx, tx, other.ID, nil, now)

	discussionRepo := NewDiscussionRepo(gdb, log)
	commentRepo := NewCommentRepo(gdb, log)

	if err := discussionRepo.Delete(ctx, tx, parent.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if found, err := discussionRepo.GetByIDs(ctx, tx, []int64{parent.ID}); err != nil || len(found) != 0 {
		t.Fatalf("parent should be gone, got %d rows (err=%v)", len(found), err)
	}
	if found, err := commentRepo.GetByIDs(ctx, tx, []int64{doomed.ID}); err != nil || len(found) != 0 {
		t.Fatalf("child comment should be gone, got %d rows (err=%v)", len(found), err)
	}
	if found, err := commentRepo.GetByIDs(ctx, tx, []int64{survivor.ID}); err != nil || len(found) != 1 {
		t.Fatalf("unrelated comment must survive, got %d rows (err=%v)", len(found), err)
	}
}

func TestCommentListFiltersByDiscussion(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	now := time.Now()
	a := testutil.SeedDiscussion(t, ctx, tx, "a", nil, now)
	b := testutil.SeedDiscussion(t, ctx, tx, "b", nil, now)
	testutil.SeedComment(t, ctx, tx, a.ID, nil, now.Add(-time.Minute))
	testutil.SeedComment(t, ctx, tx, a.ID, nil, now)
	testutil.SeedComment(t, ctx, tx, b.ID, nil, now)

	repo := NewCommentRepo(gdb, log)

	filtered, err := repo.List(ctx, tx, &a.ID)
	if err != nil {
		t.Fatalf("List(filter): %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 comments for discussion %d, got %d", a.ID, len(filtered))
	}
	if filtered[0].CreatedAt.Before(filtered[1].CreatedAt) {
		t.Fatal("comments must come back newest first")
	}

	all, err := repo.List(ctx, tx, nil)
	if err != nil {
		t.Fatalf("List(nil): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 comments unfiltered, got %d", len(all))
	}
}

func TestCourseDiscussionUniquePerCourse(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	now := time.Now()
	testutil.SeedCourseDiscussion(t, ctx, tx, "CS", "101", nil, now)

	repo := NewCourseDiscussionRepo(gdb, log)
	_, err := repo.Create(ctx, tx, &types.CourseDiscussion{
		Title:         "duplicate",
		Body:          "body",
		Author:        "author",
		CourseSubject: "CS",
		CourseID:      "101",
	})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestCourseDiscussionGetByCourse(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	now := time.Now()
	seeded := testutil.SeedCourseDiscussion(t, ctx, tx, "MATH", "201", nil, now)
	testutil.SeedCourseDiscussion(t, ctx, tx, "MATH", "202", nil, now)

	repo := NewCourseDiscussionRepo(gdb, log)

	found, err := repo.GetByCourse(ctx, tx, CourseKey{CourseID: "201", CourseSubject: "MATH"})
	if err != nil {
		t.Fatalf("GetByCourse: %v", err)
	}
	if len(found) != 1 || found[0].ID != seeded.ID {
		t.Fatalf("unexpected result: %+v", found)
	}

	missing, err := repo.GetByCourse(ctx, tx, CourseKey{CourseID: "999", CourseSubject: "MATH"})
	if err != nil {
		t.Fatalf("GetByCourse(missing): %v", err)
	}
	if len(missing) != 0 {
		t.Fatalf("expected no rows, got %d", len(missing))
	}
}

func TestCourseDiscussionListFilter(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	now := time.Now()
	testutil.SeedCourseDiscussion(t, ctx, tx, "CS", "101", nil, now)
	testutil.SeedCourseDiscussion(t, ctx, tx, "CS", "102", nil, now)

	repo := NewCourseDiscussionRepo(gdb, log)

	filtered, err := repo.List(ctx, tx, &CourseKey{CourseID: "101", CourseSubject: "CS"})
	if err != nil {
		t.Fatalf("List(filter): %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("expected 1 thread, got %d", len(filtered))
	}

	all, err := repo.List(ctx, tx, nil)
	if err != nil {
		t.Fatalf("List(nil): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 threads, got %d", len(all))
	}
}

func TestCourseCommentListByCourse(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	now := time.Now()
	cs := testutil.SeedCourseDiscussion(t, ctx, tx, "CS", "101", nil, now)
	math := testutil.SeedCourseDiscussion(t, ctx, tx, "MATH", "201", nil, now)
	testutil.SeedCourseComment(t, ctx, tx, cs.ID, nil, now.Add(-time.Minute))
	testutil.SeedCourseComment(t, ctx, tx, cs.ID, nil, now)
	testutil.SeedCourseComment(t, ctx, tx, math.ID, nil, now)

	repo := NewCourseCommentRepo(gdb, log)

	byCourse, err := repo.ListByCourse(ctx, tx, CourseKey{CourseID: "101", CourseSubject: "CS"})
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(byCourse) != 2 {
		t.Fatalf("expected 2 comments via the course join, got %d", len(byCourse))
	}
	if byCourse[0].CreatedAt.Before(byCourse[1].CreatedAt) {
		t.Fatal("comments must come back newest first")
	}

	byThread, err := repo.ListByDiscussionID(ctx, tx, math.ID)
	if err != nil {
		t.Fatalf("ListByDiscussionID: %v", err)
	}
	if len(byThread) != 1 {
		t.Fatalf("expected 1 comment for thread %d, got %d", math.ID, len(byThread))
	}
}

func TestCourseDiscussionDeleteCascades(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()
	log := testutil.Logger(t)

	now := time.Now()
	parent := testutil.SeedCourseDiscussion(t, ctx, tx, "CS", "101", nil, now)
	doomed := testutil.SeedCourseComment(t, ctx, tx, parent.ID, nil, now)

	discussionRepo := NewCourseDiscussionRepo(gdb, log)
	commentRepo := NewCourseCommentRepo(gdb, log)

	if err := discussionRepo.Delete(ctx, tx, parent.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if found, err := commentRepo.GetByIDs(ctx, tx, []int64{doomed.ID}); err != nil || len(found) != 0 {
		t.Fatalf("child comment should be gone, got %d rows (err=%v)", len(found), err)
	}
}
