package drive

import (
	"context"
	"strings"
	"sync"
)

// DepthLimitName marks sentinel nodes returned when the walker refuses to
// recurse any deeper.
const DepthLimitName = "Limite de profundidade atingido"

var videoExtensions = []string{
	".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v", ".mpg", ".mpeg",
}

// IsVideoFile classifies a Drive file as a playable video, by MIME type or by
// filename extension.
func IsVideoFile(f File) bool {
	if strings.HasPrefix(f.MimeType, "video/") || f.MimeType == mimeNativeVideo {
		return true
	}
	name := strings.ToLower(f.Name)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Walker builds folder trees bounded by MaxDepth.
type Walker struct {
	lister   Lister
	maxDepth int
}

func NewWalker(lister Lister, maxDepth int) *Walker {
	if maxDepth <= 0 {
		maxDepth = 3
	}
	return &Walker{lister: lister, maxDepth: maxDepth}
}

// Walk fetches folderID and its video-bearing descendants. Sibling subfolders
// are fetched concurrently and joined before pruning, so total latency scales
// with tree depth rather than node count. Subfolders left with no videos and
// no subfolders are dropped; the root is returned even when empty.
func (w *Walker) Walk(ctx context.Context, folderID string) (*Folder, error) {
	return w.walk(ctx, folderID, 0)
}

func (w *Walker) walk(ctx context.Context, folderID string, depth int) (*Folder, error) {
	if depth > w.maxDepth {
		return &Folder{
			ID:         folderID,
			Name:       DepthLimitName,
			Files:      []File{},
			Subfolders: []*Folder{},
			Truncated:  true,
		}, nil
	}

	name, err := w.lister.FolderName(ctx, folderID)
	if err != nil {
		return nil, err
	}

	children, subfolderIDs, err := w.lister.ListChildren(ctx, folderID)
	if err != nil {
		return nil, err
	}

	folder := &Folder{
		ID:         folderID,
		Name:       name,
		Files:      []File{},
		Subfolders: []*Folder{},
	}
	for _, f := range children {
		if IsVideoFile(f) {
			folder.Files = append(folder.Files, f)
		}
	}

	results := make([]*Folder, len(subfolderIDs))
	errs := make([]error, len(subfolderIDs))

	var wg sync.WaitGroup
	for i, id := range subfolderIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i], errs[i] = w.walk(ctx, id, depth+1)
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for _, sub := range results {
		if sub.IsEmpty() && !sub.Truncated {
			continue
		}
		folder.Subfolders = append(folder.Subfolders, sub)
	}

	return folder, nil
}
