package archive

import (
	"context"
	"testing"
)

func TestSaveAndListRoundTrip(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	rec := Record{
		ID:           "11111111-1111-1111-1111-111111111111",
		Size:         9,
		Mode:         "generated-strict",
		PuzzleText:   "5________\n",
		SolutionText: "534678912\n",
	}
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d records, want 1", len(got))
	}
	if got[0].ID != rec.ID || got[0].PuzzleText != rec.PuzzleText {
		t.Errorf("List()[0] = %+v, want ID/PuzzleText matching %+v", got[0], rec)
	}
	if got[0].CreatedAt == "" {
		t.Errorf("CreatedAt was not stamped")
	}
}

func TestListEmptyStore(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	got, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() = %v, want empty", got)
	}
}
