package drive

// File is an immutable snapshot of a video file as reported by Google Drive.
type File struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MimeType       string `json:"mimeType"`
	ThumbnailLink  string `json:"thumbnailLink,omitempty"`
	WebViewLink    string `json:"webViewLink,omitempty"`
	WebContentLink string `json:"webContentLink,omitempty"`
	CreatedTime    string `json:"createdTime,omitempty"`
	ModifiedTime   string `json:"modifiedTime,omitempty"`
	Size           int64  `json:"size,omitempty"`
	Description    string `json:"description,omitempty"`
}

// Folder is one node of the recursively fetched tree. Only video files are
// retained; subfolders that end up empty are pruned by the walker.
type Folder struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Files      []File    `json:"files"`
	Subfolders []*Folder `json:"subfolders"`
	// Truncated marks a depth-limit sentinel whose contents were never
	// fetched. Sentinels are exempt from empty-folder pruning.
	Truncated bool `json:"truncated,omitempty"`
}

// IsEmpty reports whether the node carries no videos anywhere beneath it.
func (f *Folder) IsEmpty() bool {
	return len(f.Files) == 0 && len(f.Subfolders) == 0
}

// CountVideos returns the total number of video files in the subtree.
func (f *Folder) CountVideos() int {
	count := len(f.Files)
	for _, sub := range f.Subfolders {
		count += sub.CountVideos()
	}
	return count
}

// FirstThumbnail walks the subtree depth first and returns the first video
// thumbnail link it finds, or "".
func (f *Folder) FirstThumbnail() string {
	for _, file := range f.Files {
		if file.ThumbnailLink != "" {
			return file.ThumbnailLink
		}
	}
	for _, sub := range f.Subfolders {
		if link := sub.FirstThumbnail(); link != "" {
			return link
		}
	}
	return ""
}
