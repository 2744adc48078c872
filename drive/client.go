package drive

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	mimeFolder      = "application/vnd.google-apps.folder"
	mimeNativeVideo = "application/vnd.google-apps.video"

	childFields = "files(id,name,mimeType,thumbnailLink,webViewLink,webContentLink,createdTime,modifiedTime,size,description)"
)

// Lister is the read surface of Google Drive the walker needs.
type Lister interface {
	FolderName(ctx context.Context, folderID string) (string, error)
	// ListChildren returns the immediate children of folderID in
	// Drive-reported order: video files filtered by the caller, folders as ids.
	ListChildren(ctx context.Context, folderID string) ([]File, []string, error)
}

// Client wraps the Drive v3 service authenticated with a user's access token.
type Client struct {
	service *gdrive.Service
}

// NewClient builds a Drive client backed by the given bearer token.
func NewClient(ctx context.Context, accessToken string) (*Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	srv, err := gdrive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("build drive service: %w", err)
	}
	return &Client{service: srv}, nil
}

func (c *Client) FolderName(ctx context.Context, folderID string) (string, error) {
	f, err := c.service.Files.Get(folderID).Fields("name").Context(ctx).Do()
	if err != nil {
		return "", wrapAPIError("get folder", err)
	}
	return f.Name, nil
}

// FolderMeta fetches id, name and mime type of a file, used to validate that
// a configured id really is a folder.
func (c *Client) FolderMeta(ctx context.Context, folderID string) (id, name, mimeType string, err error) {
	f, err := c.service.Files.Get(folderID).Fields("id,name,mimeType").Context(ctx).Do()
	if err != nil {
		return "", "", "", wrapAPIError("get folder meta", err)
	}
	return f.Id, f.Name, f.MimeType, nil
}

func (c *Client) ListChildren(ctx context.Context, folderID string) ([]File, []string, error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	r, err := c.service.Files.List().
		Q(q).
		Fields(googleapi.Field("nextPageToken, " + childFields)).
		PageSize(1000).
		Context(ctx).
		Do()
	if err != nil {
		return nil, nil, wrapAPIError("list children", err)
	}

	var files []File
	var folderIDs []string
	for _, f := range r.Files {
		if f.MimeType == mimeFolder {
			folderIDs = append(folderIDs, f.Id)
			continue
		}
		files = append(files, File{
			ID:             f.Id,
			Name:           f.Name,
			MimeType:       f.MimeType,
			ThumbnailLink:  f.ThumbnailLink,
			WebViewLink:    f.WebViewLink,
			WebContentLink: f.WebContentLink,
			CreatedTime:    f.CreatedTime,
			ModifiedTime:   f.ModifiedTime,
			Size:           f.Size,
			Description:    f.Description,
		})
	}
	return files, folderIDs, nil
}

// IsFolder reports whether mimeType denotes a Drive folder.
func IsFolder(mimeType string) bool {
	return mimeType == mimeFolder
}
