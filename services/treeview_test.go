package services

import (
	"testing"

	"github.com/nickksoares/drivetube/drive"
)

func sampleTree() *drive.Folder {
	return &drive.Folder{
		ID:   "root",
		Name: "Curso",
		Files: []drive.File{
			{ID: "f-b", Name: "b.mp4"},
			{ID: "f-a", Name: "a.mp4"},
		},
		Subfolders: []*drive.Folder{
			{
				ID:   "dia10",
				Name: "Dia 10",
				Files: []drive.File{
					{ID: "f-10", Name: "aula.mp4"},
				},
			},
			{
				ID:   "dia2",
				Name: "Dia 2",
				Files: []drive.File{
					{ID: "f-2", Name: "aula.mp4"},
				},
			},
			{
				ID:   "dia1",
				Name: "Dia 1",
				Subfolders: []*drive.Folder{
					{
						ID:    "extra",
						Name:  "Extra",
						Files: []drive.File{{ID: "f-e", Name: "bonus.mp4"}},
					},
				},
			},
		},
	}
}

func rowIDs(rows []TreeRow) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func assertOrder(t *testing.T, rows []TreeRow, want []string) {
	t.Helper()
	got := rowIDs(rows)
	if len(got) != len(want) {
		t.Fatalf("expected %d rows %v, got %v", len(want), want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q (all: %v)", i, want[i], got[i], got)
		}
	}
}

func TestBuildTreeViewNumericSort(t *testing.T) {
	rows := BuildTreeView(sampleTree(), SortNumeric, nil)
	// "Dia 10" sorts after "Dia 2" numerically, files stay alphabetical.
	assertOrder(t, rows, []string{"dia1", "dia2", "dia10", "f-a", "f-b"})
}

func TestBuildTreeViewAlphabeticalSort(t *testing.T) {
	rows := BuildTreeView(sampleTree(), SortAlphabeticalAsc, nil)
	assertOrder(t, rows, []string{"dia1", "dia10", "dia2", "f-a", "f-b"})

	rows = BuildTreeView(sampleTree(), SortAlphabeticalDesc, nil)
	assertOrder(t, rows, []string{"dia2", "dia10", "dia1", "f-b", "f-a"})
}

func TestBuildTreeViewFilesFollowDirectionToggle(t *testing.T) {
	root := &drive.Folder{
		ID:   "root",
		Name: "Curso",
		Files: []drive.File{
			{ID: "f-b", Name: "Aula B.mp4"},
			{ID: "f-c", Name: "Aula C.mp4"},
			{ID: "f-a", Name: "Aula A.mp4"},
		},
	}

	rows := BuildTreeView(root, SortAlphabeticalDesc, nil)
	assertOrder(t, rows, []string{"f-c", "f-b", "f-a"})

	// Numeric mode only reorders folders; files keep ascending order.
	root.Files = []drive.File{
		{ID: "f-10", Name: "Aula 10.mp4"},
		{ID: "f-2", Name: "Aula 2.mp4"},
	}
	rows = BuildTreeView(root, SortNumeric, nil)
	assertOrder(t, rows, []string{"f-10", "f-2"})
}

func TestBuildTreeViewCollapsedSuppressesChildren(t *testing.T) {
	rows := BuildTreeView(sampleTree(), SortNumeric, nil)
	for _, row := range rows {
		if row.Depth != 0 {
			t.Fatalf("collapsed tree leaked a nested row: %+v", row)
		}
	}
}

func TestBuildTreeViewExpandedEmitsChildren(t *testing.T) {
	expanded := map[string]bool{"dia1": true, "extra": true}
	rows := BuildTreeView(sampleTree(), SortNumeric, expanded)
	assertOrder(t, rows, []string{"dia1", "extra", "f-e", "dia2", "dia10", "f-a", "f-b"})

	if rows[0].Depth != 0 || rows[1].Depth != 1 || rows[2].Depth != 2 {
		t.Fatalf("unexpected depths: %+v", rows[:3])
	}
	if !rows[0].Expanded || !rows[1].Expanded {
		t.Fatalf("expected expanded flags on open folders")
	}
}

func TestBuildTreeViewEmptyFolderNotExpandable(t *testing.T) {
	root := &drive.Folder{
		ID:   "root",
		Name: "Curso",
		Subfolders: []*drive.Folder{
			{ID: "vazio", Name: "Vazio"},
		},
	}
	// A stale expansion id on a content-less folder stays inert.
	rows := BuildTreeView(root, SortAlphabeticalAsc, map[string]bool{"vazio": true})
	if len(rows) != 1 {
		t.Fatalf("expected a single row, got %v", rowIDs(rows))
	}
	if rows[0].Expandable || rows[0].Expanded {
		t.Fatalf("empty folder must be a static row: %+v", rows[0])
	}
}

func TestEmbeddedNumber(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Dia 1", 1},
		{"Dia 10", 10},
		{"Aula 07 - Intro", 7},
		{"Sem numero", 0},
		{"12 Macacos", 12},
	}
	for _, tc := range cases {
		if got := embeddedNumber(tc.name); got != tc.want {
			t.Errorf("embeddedNumber(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}
