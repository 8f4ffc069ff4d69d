package selection

import (
	"testing"

	"tableflip.dev/owo/pkg/catalog"
)

func testIndex() *catalog.Index {
	faces := &catalog.Collection{
		Name: "Faces",
		Type: catalog.TypeEmoji,
		Items: []catalog.Item{
			{Key: "faces_0", Icon: "😀", Text: "grin", Type: catalog.TypeEmoji, Category: "Faces"},
			{Key: "faces_1", Icon: "😀", Text: "grin2", Type: catalog.TypeEmoji, Category: "Faces"},
			{Key: "faces_2", Icon: "🙂", Text: "smile", Type: catalog.TypeEmoji, Category: "Faces"},
		},
	}
	animals := &catalog.Collection{
		Name: "Animals",
		Type: catalog.TypeEmoticon,
		Items: []catalog.Item{
			{Key: "animals_0", Icon: "(=^･ω･^=)", Text: "cat", Type: catalog.TypeEmoticon, Category: "Animals"},
		},
	}
	return catalog.NewIndex([]*catalog.Collection{faces, animals})
}

func TestNewStateFallsBackToFirstCollection(t *testing.T) {
	s := NewState(testIndex(), "Gone")
	if s.ActiveCollection() != "Faces" {
		t.Fatalf("expected fallback to Faces, got %q", s.ActiveCollection())
	}
	if len(s.Filtered()) != 3 {
		t.Fatalf("expected 3 items, got %d", len(s.Filtered()))
	}
	if s.Highlight() != -1 {
		t.Fatalf("expected no highlight, got %d", s.Highlight())
	}
}

func TestEmptyQueryShowsActiveCollection(t *testing.T) {
	s := NewState(testIndex(), "Animals")

	if changed := s.SubmitQuery("   "); changed {
		t.Fatal("whitespace query should equal the initial empty query")
	}
	if len(s.Filtered()) != 1 || s.Filtered()[0].Key != "animals_0" {
		t.Fatalf("expected Animals items, got %v", s.Filtered())
	}
}

func TestQueryTransitionsToSearchView(t *testing.T) {
	s := NewState(testIndex(), "Animals")

	if changed := s.SubmitQuery("gri"); !changed {
		t.Fatal("expected filtered list to change")
	}
	got := s.Filtered()
	if len(got) != 2 || got[0].Text != "grin" || got[1].Text != "grin2" {
		t.Fatalf("expected [grin grin2], got %v", got)
	}
	if s.Highlight() != -1 {
		t.Fatalf("highlight not reset, got %d", s.Highlight())
	}

	// Search spans every collection, not just the active one.
	if changed := s.SubmitQuery("cat"); !changed {
		t.Fatal("expected filtered list to change")
	}
	if len(s.Filtered()) != 1 || s.Filtered()[0].Key != "animals_0" {
		t.Fatalf("expected cross-collection match, got %v", s.Filtered())
	}
}

func TestSameTrimmedQueryIsNoop(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	s.SubmitQuery("grin")
	s.NavigateDown()

	if changed := s.SubmitQuery("  grin "); changed {
		t.Fatal("identical trimmed query must be a no-op")
	}
	if s.Highlight() != 0 {
		t.Fatalf("no-op query moved the highlight to %d", s.Highlight())
	}
}

func TestIdenticalResultsPreserveHighlight(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	s.SubmitQuery("grin2")
	s.NavigateDown()

	// Different query, same single-item result set.
	if changed := s.SubmitQuery("faces_1"); changed {
		t.Fatal("equal result sets should not report a change")
	}
	if s.Highlight() != 0 {
		t.Fatalf("highlight reset despite unchanged results, got %d", s.Highlight())
	}
}

func TestClearingQueryRestoresCollectionView(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	s.SubmitQuery("cat")

	if changed := s.SubmitQuery(""); !changed {
		t.Fatal("expected return to collection view")
	}
	if len(s.Filtered()) != 3 {
		t.Fatalf("expected Faces items back, got %d", len(s.Filtered()))
	}
}

func TestSwitchCollectionClearsActiveSearch(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	s.SubmitQuery("grin")

	if changed := s.SwitchCollection("Animals"); !changed {
		t.Fatal("expected switch to change the filtered list")
	}
	if s.Query() != "" {
		t.Fatalf("query not cleared, got %q", s.Query())
	}
	if len(s.Filtered()) != 1 || s.Filtered()[0].Key != "animals_0" {
		t.Fatalf("expected Animals full set, got %v", s.Filtered())
	}
}

func TestSwitchToUnknownCollectionIgnored(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	if changed := s.SwitchCollection("Gone"); changed {
		t.Fatal("unknown collection should be ignored")
	}
	if s.ActiveCollection() != "Faces" {
		t.Fatalf("active collection changed to %q", s.ActiveCollection())
	}
}

func TestNavigationWraps(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	n := len(s.Filtered())

	s.NavigateDown()
	if s.Highlight() != 0 {
		t.Fatalf("expected first row, got %d", s.Highlight())
	}
	s.NavigateUp()
	if s.Highlight() != n-1 {
		t.Fatalf("expected wrap to last row %d, got %d", n-1, s.Highlight())
	}
	s.NavigateDown()
	if s.Highlight() != 0 {
		t.Fatalf("expected wrap to first row, got %d", s.Highlight())
	}
}

func TestNavigationNoopOnEmptyResults(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	s.SubmitQuery("zzz-no-match")

	if s.NavigateDown() || s.NavigateUp() {
		t.Fatal("navigation should be a no-op on empty results")
	}
	if s.Highlight() != -1 {
		t.Fatalf("highlight moved on empty results: %d", s.Highlight())
	}
}

func TestActivate(t *testing.T) {
	s := NewState(testIndex(), "Faces")

	if _, ok := s.Activate(); ok {
		t.Fatal("activate without highlight should fail")
	}
	s.NavigateDown()
	item, ok := s.Activate()
	if !ok || item.Key != "faces_0" {
		t.Fatalf("expected faces_0, got %v ok=%v", item, ok)
	}
}

func TestToggleMultiSelectLeavesListAlone(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	s.NavigateDown()

	if !s.ToggleMultiSelect() {
		t.Fatal("expected multi-select on")
	}
	if s.Highlight() != 0 || len(s.Filtered()) != 3 {
		t.Fatal("toggle disturbed the filtered list or highlight")
	}
	if s.ToggleMultiSelect() {
		t.Fatal("expected multi-select off")
	}
}

func TestCycleCollectionWrapsThroughAllTab(t *testing.T) {
	s := NewState(testIndex(), "Faces")

	s.CycleCollection(1)
	if s.ActiveCollection() != "Animals" {
		t.Fatalf("expected Animals, got %q", s.ActiveCollection())
	}
	s.CycleCollection(1)
	if s.ActiveCollection() != catalog.All {
		t.Fatalf("expected all view, got %q", s.ActiveCollection())
	}
	if len(s.Filtered()) != 4 {
		t.Fatalf("expected 4 items in all view, got %d", len(s.Filtered()))
	}
	s.CycleCollection(1)
	if s.ActiveCollection() != "Faces" {
		t.Fatalf("expected wrap to Faces, got %q", s.ActiveCollection())
	}
	s.CycleCollection(-1)
	if s.ActiveCollection() != catalog.All {
		t.Fatalf("expected backward wrap to all, got %q", s.ActiveCollection())
	}
}

func TestSetCatalogKeepsActiveAndQuery(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	s.SubmitQuery("grin")

	fresh := catalog.NewIndex([]*catalog.Collection{
		{
			Name: "Faces",
			Type: catalog.TypeEmoji,
			Items: []catalog.Item{
				{Key: "faces_0", Icon: "😀", Text: "grin", Type: catalog.TypeEmoji, Category: "Faces"},
			},
		},
	})
	if changed := s.SetCatalog(fresh); !changed {
		t.Fatal("expected refreshed results")
	}
	if s.ActiveCollection() != "Faces" || s.Query() != "grin" {
		t.Fatalf("swap lost state: active %q query %q", s.ActiveCollection(), s.Query())
	}
	if len(s.Filtered()) != 1 {
		t.Fatalf("expected re-run search over fresh data, got %d items", len(s.Filtered()))
	}
}

func TestSetUnavailable(t *testing.T) {
	s := NewState(testIndex(), "Faces")
	s.SetUnavailable("all sources failed")

	if s.Err() != "all sources failed" {
		t.Fatalf("unexpected error message %q", s.Err())
	}
	if len(s.Filtered()) != 0 {
		t.Fatalf("expected empty item set, got %d", len(s.Filtered()))
	}

	// The controller stays usable and recovers on the next good load.
	if changed := s.SetCatalog(testIndex()); !changed {
		t.Fatal("expected recovery to repopulate")
	}
	if s.Err() != "" {
		t.Fatalf("error not cleared: %q", s.Err())
	}
}
