package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/clipforge/clipforge/internal/export"
	"github.com/clipforge/clipforge/internal/session"
	"github.com/clipforge/clipforge/internal/storage"
)

const testKey = "videoHistory"

func testArtifact(id, title string) export.Artifact {
	return export.Artifact{
		ID:        id,
		Title:     title,
		Clips:     []session.Clip{{ID: "c1", StartTime: 0, EndTime: 10}},
		OutputURL: "data:video/mp4;base64,AAAA",
		Duration:  10,
		OwnerID:   "1",
	}
}

func TestSave_PersistsAndLists(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewStore(context.Background(), kv, testKey, nil)
	ctx := context.Background()

	s.Save(ctx, testArtifact("a1", "First"))
	s.Save(ctx, testArtifact("a2", "Second"))

	list := s.List(ctx)
	if len(list) != 2 {
		t.Fatalf("List() = %d artifacts, want 2", len(list))
	}
	if list[0].ID != "a1" || list[1].ID != "a2" {
		t.Error("history not in insertion order")
	}

	raw, err := kv.Load(ctx, testKey)
	if err != nil || raw == nil {
		t.Fatalf("durable payload missing: %v", err)
	}
	var persisted []export.Artifact
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("durable payload not valid JSON: %v", err)
	}
	if len(persisted) != 2 {
		t.Errorf("durable list = %d artifacts, want 2", len(persisted))
	}
}

func TestHydrate_FromDurableStore(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	first := NewStore(ctx, kv, testKey, nil)
	first.Save(ctx, testArtifact("a1", "Survivor"))

	second := NewStore(ctx, kv, testKey, nil)
	list := second.List(ctx)
	if len(list) != 1 || list[0].ID != "a1" {
		t.Fatalf("hydrated list = %v, want artifact a1", list)
	}
}

func TestHydrate_MalformedPayload(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	if err := kv.Store(ctx, testKey, []byte("{not json")); err != nil {
		t.Fatalf("seeding kv: %v", err)
	}

	s := NewStore(ctx, kv, testKey, nil)
	if n := len(s.List(ctx)); n != 0 {
		t.Errorf("List() after malformed payload = %d, want 0", n)
	}
}

func TestGet(t *testing.T) {
	s := NewStore(context.Background(), storage.NewMemoryKV(), testKey, nil)
	ctx := context.Background()
	s.Save(ctx, testArtifact("a1", "First"))

	got, err := s.Get(ctx, "a1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "First" {
		t.Errorf("Get().Title = %q, want First", got.Title)
	}

	_, err = s.Get(ctx, "missing")
	if !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrArtifactNotFound", err)
	}
}

func TestUpdate_ReplacesById(t *testing.T) {
	s := NewStore(context.Background(), storage.NewMemoryKV(), testKey, nil)
	ctx := context.Background()
	s.Save(ctx, testArtifact("a1", "Original"))

	updated := testArtifact("a1", "Repaired")
	updated.OutputURL = "data:video/mp4;base64,BBBB"
	s.Update(ctx, updated)

	got, err := s.Get(ctx, "a1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Repaired" || got.OutputURL != "data:video/mp4;base64,BBBB" {
		t.Errorf("Get() after Update = %+v, want repaired values", got)
	}
	if n := len(s.List(ctx)); n != 1 {
		t.Errorf("List() = %d, want 1 (update must not append)", n)
	}
}

func TestUpdate_UnknownIdIsNoop(t *testing.T) {
	s := NewStore(context.Background(), storage.NewMemoryKV(), testKey, nil)
	ctx := context.Background()
	s.Save(ctx, testArtifact("a1", "Only"))

	s.Update(ctx, testArtifact("ghost", "Ghost"))

	list := s.List(ctx)
	if len(list) != 1 || list[0].ID != "a1" {
		t.Errorf("List() after no-op update = %v, want only a1", list)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	s := NewStore(context.Background(), storage.NewMemoryKV(), testKey, nil)
	ctx := context.Background()
	s.Save(ctx, testArtifact("a1", "First"))

	s.Delete(ctx, "a1")
	s.Delete(ctx, "a1")
	s.Delete(ctx, "never-existed")

	if n := len(s.List(ctx)); n != 0 {
		t.Errorf("List() = %d, want 0", n)
	}
}

func TestClear(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewStore(context.Background(), kv, testKey, nil)
	ctx := context.Background()
	s.Save(ctx, testArtifact("a1", "First"))

	s.Clear(ctx)

	if n := len(s.List(ctx)); n != 0 {
		t.Errorf("List() = %d, want 0", n)
	}
	raw, _ := kv.Load(ctx, testKey)
	if raw != nil {
		t.Errorf("durable entry still present after Clear: %q", raw)
	}
}

// failingKV always fails writes, simulating an unavailable durable store.
type failingKV struct{}

func (failingKV) Load(context.Context, string) ([]byte, error) { return nil, nil }
func (failingKV) Store(context.Context, string, []byte) error {
	return errors.New("disk unavailable")
}
func (failingKV) Remove(context.Context, string) error {
	return errors.New("disk unavailable")
}

func TestSave_DegradesOnPersistFailure(t *testing.T) {
	s := NewStore(context.Background(), failingKV{}, testKey, nil)
	ctx := context.Background()

	s.Save(ctx, testArtifact("a1", "First"))

	if !s.Degraded() {
		t.Error("Degraded() = false, want true after persist failure")
	}
	// The in-memory view still carries the mutation.
	if n := len(s.List(ctx)); n != 1 {
		t.Errorf("List() = %d, want 1", n)
	}
}

func TestOnChange_Notifies(t *testing.T) {
	s := NewStore(context.Background(), storage.NewMemoryKV(), testKey, nil)
	ctx := context.Background()

	var sizes []int
	s.OnChange(func(list []export.Artifact) {
		sizes = append(sizes, len(list))
	})

	s.Save(ctx, testArtifact("a1", "First"))
	s.Delete(ctx, "a1")

	if len(sizes) != 2 || sizes[0] != 1 || sizes[1] != 0 {
		t.Errorf("notification sizes = %v, want [1 0]", sizes)
	}
}

func TestList_IsDefensiveCopy(t *testing.T) {
	s := NewStore(context.Background(), storage.NewMemoryKV(), testKey, nil)
	ctx := context.Background()
	s.Save(ctx, testArtifact("a1", "First"))

	list := s.List(ctx)
	list[0].Title = "mutated"
	list[0].Clips[0].Title = "mutated"

	got, _ := s.Get(ctx, "a1")
	if got.Title != "First" {
		t.Errorf("store title mutated through List(): %q", got.Title)
	}
}
