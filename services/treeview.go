package services

import (
	"sort"
	"strings"

	"github.com/nickksoares/drivetube/drive"
)

const (
	SortAlphabeticalAsc  = "alphabetical-asc"
	SortAlphabeticalDesc = "alphabetical-desc"
	SortNumeric          = "numeric"
)

const (
	TreeRowFolder = "folder"
	TreeRowVideo  = "video"
)

// TreeRow is one visible line of the sidebar tree, in render order.
type TreeRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Depth      int    `json:"depth"`
	Expandable bool   `json:"expandable"`
	Expanded   bool   `json:"expanded"`
	VideoCount int    `json:"video_count,omitempty"`
}

// embeddedNumber extracts the first run of digits in a name, so "Aula 10"
// sorts after "Aula 2" in numeric mode. Names without digits sort as 0.
func embeddedNumber(name string) int {
	n := 0
	found := false
	for _, r := range name {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	return n
}

func sortSubfolders(subs []*drive.Folder, mode string) {
	switch mode {
	case SortNumeric:
		sort.SliceStable(subs, func(i, j int) bool {
			return embeddedNumber(subs[i].Name) < embeddedNumber(subs[j].Name)
		})
	case SortAlphabeticalDesc:
		sort.SliceStable(subs, func(i, j int) bool {
			return strings.ToLower(subs[i].Name) > strings.ToLower(subs[j].Name)
		})
	default:
		sort.SliceStable(subs, func(i, j int) bool {
			return strings.ToLower(subs[i].Name) < strings.ToLower(subs[j].Name)
		})
	}
}

// Files follow the asc/desc toggle but never the numeric mode; numeric
// ordering only applies to folders.
func sortFiles(files []drive.File, mode string) {
	if mode == SortAlphabeticalDesc {
		sort.SliceStable(files, func(i, j int) bool {
			return strings.ToLower(files[i].Name) > strings.ToLower(files[j].Name)
		})
		return
	}
	sort.SliceStable(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})
}

// BuildTreeView flattens a folder tree into render-order rows. The root's own
// children are always visible; deeper folders only emit children when their ID
// is in expanded. Folders with no content at all render as plain rows.
func BuildTreeView(root *drive.Folder, sortMode string, expanded map[string]bool) []TreeRow {
	if root == nil {
		return []TreeRow{}
	}
	rows := make([]TreeRow, 0, len(root.Files)+len(root.Subfolders))
	appendChildren(&rows, root, sortMode, expanded, 0)
	return rows
}

func appendChildren(rows *[]TreeRow, folder *drive.Folder, sortMode string, expanded map[string]bool, depth int) {
	subs := make([]*drive.Folder, len(folder.Subfolders))
	copy(subs, folder.Subfolders)
	sortSubfolders(subs, sortMode)

	for _, sub := range subs {
		expandable := !sub.IsEmpty()
		isExpanded := expandable && expanded[sub.ID]
		*rows = append(*rows, TreeRow{
			ID:         sub.ID,
			Name:       sub.Name,
			Kind:       TreeRowFolder,
			Depth:      depth,
			Expandable: expandable,
			Expanded:   isExpanded,
			VideoCount: sub.CountVideos(),
		})
		if isExpanded {
			appendChildren(rows, sub, sortMode, expanded, depth+1)
		}
	}

	files := make([]drive.File, len(folder.Files))
	copy(files, folder.Files)
	sortFiles(files, sortMode)
	for _, f := range files {
		*rows = append(*rows, TreeRow{
			ID:    f.ID,
			Name:  f.Name,
			Kind:  TreeRowVideo,
			Depth: depth,
		})
	}
}
