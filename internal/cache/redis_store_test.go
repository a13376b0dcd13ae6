package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"vitrin/api/internal/persist"
	"vitrin/api/internal/section"
)

func setupTestRedis(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	store, err := NewRedisStore("redis://"+s.Addr(), ttl)
	if err != nil {
		t.Fatalf("failed to create redis store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, s
}

func draft(id, title string, at time.Time) persist.Record {
	return persist.Record{
		DocumentID: id,
		Sections:   []section.Instance{{ID: "s1", Type: "HeroCentered", Props: section.Props{"title": title}}},
		Theme:      section.Theme{"primaryColor": "#6F4E37"},
		UpdatedAt:  at,
	}
}

func TestNewRedisStoreRejectsBadURL(t *testing.T) {
	if _, err := NewRedisStore("://nope", time.Hour); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveAndLoadDraft(t *testing.T) {
	store, s := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	if err := store.Save(ctx, draft("proj-1", "Merhaba", time.Unix(100, 0).UTC())); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !s.Exists("draft:proj-1") {
		t.Fatal("expected draft:proj-1 key")
	}
	if ttl := s.TTL("draft:proj-1"); ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}

	rec, err := store.Load(ctx, "proj-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if rec.Sections[0].Props["title"] != "Merhaba" || rec.Theme["primaryColor"] != "#6F4E37" {
		t.Errorf("unexpected record %+v", rec)
	}
	if !rec.UpdatedAt.Equal(time.Unix(100, 0)) {
		t.Errorf("updatedAt = %v", rec.UpdatedAt)
	}
}

func TestLoadMissingDraft(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)
	_, err := store.Load(context.Background(), "nope")
	if !errors.Is(err, persist.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDraftExpires(t *testing.T) {
	store, s := setupTestRedis(t, time.Minute)
	ctx := context.Background()
	if err := store.Save(ctx, draft("proj-1", "x", time.Now())); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s.FastForward(30 * time.Second)
	if _, err := store.Load(ctx, "proj-1"); err != nil {
		t.Fatalf("draft should still exist: %v", err)
	}
	// Load refreshed the TTL.
	s.FastForward(45 * time.Second)
	if _, err := store.Load(ctx, "proj-1"); err != nil {
		t.Fatalf("draft should survive after refresh: %v", err)
	}

	s.FastForward(2 * time.Minute)
	if _, err := store.Load(ctx, "proj-1"); !errors.Is(err, persist.ErrNotFound) {
		t.Fatalf("expected expired draft, got %v", err)
	}
}

func TestRecentDraftsOrderAndPrune(t *testing.T) {
	store, s := setupTestRedis(t, time.Hour)
	ctx := context.Background()
	base := time.Unix(1_000, 0)
	for i, id := range []string{"a", "b", "c"} {
		if err := store.Save(ctx, draft(id, id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Save %s failed: %v", id, err)
		}
	}
	s.Del("draft:b")

	ids, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "c" || ids[1] != "a" {
		t.Fatalf("recent = %v, want [c a]", ids)
	}
	if members, _ := s.ZMembers("drafts:recent"); len(members) != 2 {
		t.Errorf("expired id not pruned: %v", members)
	}
}

func TestRecentScansPastExpiredDrafts(t *testing.T) {
	store, s := setupTestRedis(t, time.Hour)
	ctx := context.Background()
	base := time.Unix(2_000, 0)
	ids := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}
	for i, id := range ids {
		if err := store.Save(ctx, draft(id, id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Save %s failed: %v", id, err)
		}
	}
	// The three newest drafts expired; the next page still has live ones.
	for _, id := range []string{"p7", "p6", "p5"} {
		s.Del("draft:" + id)
	}

	got, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	want := []string{"p4", "p3", "p2"}
	if len(got) != len(want) {
		t.Fatalf("recent = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("recent = %v, want %v", got, want)
		}
	}
	if members, _ := s.ZMembers("drafts:recent"); len(members) != 4 {
		t.Errorf("expired ids not pruned: %v", members)
	}

	closed, _ := setupTestRedis(t, time.Hour)
	if err := closed.Save(ctx, draft("x", "x", base)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	_ = closed.Close()
	if _, err := closed.Recent(ctx, 3); err == nil {
		t.Error("expected an error from a closed client")
	}
}

func TestDeleteDraft(t *testing.T) {
	store, s := setupTestRedis(t, time.Hour)
	ctx := context.Background()
	if err := store.Save(ctx, draft("proj-1", "x", time.Now())); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, "proj-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if s.Exists("draft:proj-1") {
		t.Error("draft key still present")
	}
	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
