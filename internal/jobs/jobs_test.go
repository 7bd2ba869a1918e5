package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"iou-platform.io/iou/ent"
)

func TestCommunityDetectArgs(t *testing.T) {
	t.Parallel()

	if got := (CommunityDetectArgs{}).Kind(); got != "community_detect" {
		t.Fatalf("Kind() = %q, want %q", got, "community_detect")
	}

	opts := (CommunityDetectArgs{}).InsertOpts()
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Hour)
	}
	if !opts.UniqueOpts.ByQueue || !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts must be scoped by queue and args")
	}
}

func TestRetentionSweepArgs(t *testing.T) {
	t.Parallel()

	if got := (RetentionSweepArgs{}).Kind(); got != "retention_sweep" {
		t.Fatalf("Kind() = %q, want %q", got, "retention_sweep")
	}

	opts := (RetentionSweepArgs{}).InsertOpts()
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
}

func TestObjectAnalyzeArgs(t *testing.T) {
	t.Parallel()

	if got := (ObjectAnalyzeArgs{}).Kind(); got != "object_analyze" {
		t.Fatalf("Kind() = %q, want %q", got, "object_analyze")
	}

	opts := (ObjectAnalyzeArgs{}).InsertOpts()
	if opts.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts = %d, want 3", opts.MaxAttempts)
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestEntityDedupArgs(t *testing.T) {
	t.Parallel()

	if got := (EntityDedupArgs{}).Kind(); got != "entity_dedup" {
		t.Fatalf("Kind() = %q, want %q", got, "entity_dedup")
	}

	opts := (EntityDedupArgs{}).InsertOpts()
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
	if !opts.UniqueOpts.ByQueue || !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts must be scoped by queue and args")
	}
}

func TestDuplicateGroups(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []*ent.Entity{
		{ID: "ent-3", CanonicalKey: "provincie utrecht", EntityType: "location", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "ent-1", CanonicalKey: "provincie utrecht", EntityType: "location", CreatedAt: base},
		{ID: "ent-2", CanonicalKey: "provincie utrecht", EntityType: "organization", CreatedAt: base},
		{ID: "ent-4", CanonicalKey: "wet open overheid", EntityType: "law", CreatedAt: base},
		{ID: "ent-6", CanonicalKey: "wet open overheid", EntityType: "law", CreatedAt: base},
		{ID: "ent-5", CanonicalKey: "wet open overheid", EntityType: "law", CreatedAt: base},
	}

	groups := duplicateGroups(rows)

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	// Same key with a different type is a different entity, never a group.
	if got := []string{groups[0][0].ID, groups[0][1].ID}; got[0] != "ent-1" || got[1] != "ent-3" {
		t.Fatalf("location group order = %v, want oldest first", got)
	}
	// Ties on creation time fall back to id order.
	law := groups[1]
	if law[0].ID != "ent-4" || law[1].ID != "ent-5" || law[2].ID != "ent-6" {
		t.Fatalf("law group order = [%s %s %s], want id order on equal timestamps", law[0].ID, law[1].ID, law[2].ID)
	}
}

func TestWorkersRejectUninitializedState(t *testing.T) {
	t.Parallel()

	t.Run("community detect", func(t *testing.T) {
		var w *CommunityDetectWorker
		if err := w.Work(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("retention sweep", func(t *testing.T) {
		w := &RetentionSweepWorker{}
		if err := w.Work(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("object analyze without id", func(t *testing.T) {
		w := NewObjectAnalyzeWorker(nil)
		if err := w.Work(context.Background(), &river.Job[ObjectAnalyzeArgs]{}); err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("entity dedup", func(t *testing.T) {
		w := NewEntityDedupWorker(nil, nil)
		if err := w.Work(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}
