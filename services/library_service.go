package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nickksoares/drivetube/config"
	"github.com/nickksoares/drivetube/drive"
	"github.com/nickksoares/drivetube/logger"
	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"

	"gorm.io/gorm"
)

// DriveClient is the Drive surface the library needs: tree walking plus the
// metadata lookup used to validate a configured folder id.
type DriveClient interface {
	drive.Lister
	FolderMeta(ctx context.Context, folderID string) (id, name, mimeType string, err error)
}

// DriveClientFactory builds a client authenticated with one user's token.
type DriveClientFactory func(ctx context.Context, accessToken string) (DriveClient, error)

// LibraryTree is the browse response: the walked (or cached) folder tree.
type LibraryTree struct {
	FolderID  string        `json:"folder_id"`
	Root      *drive.Folder `json:"root"`
	FetchedAt int64         `json:"fetched_at"`
	FromCache bool          `json:"from_cache"`
}

type TreeViewInput struct {
	FolderID string
	SortMode string
}

type LibraryService interface {
	GetTree(ctx context.Context, userID uint, folderID string) (*LibraryTree, error)
	TreeView(ctx context.Context, userID uint, in TreeViewInput) ([]TreeRow, error)
	Refresh(ctx context.Context, userID uint, folderID string) (*LibraryTree, error)
	ClearCache(ctx context.Context, userID uint) error
	ToggleFolder(ctx context.Context, userID uint, folderID string) (bool, error)
	SavedFolders(ctx context.Context, userID uint) ([]models.SavedFolder, error)
	DeleteSavedFolder(ctx context.Context, userID uint, driveFolderID string) error
	ConfigureFolder(ctx context.Context, userID uint, folderID string) (models.SavedFolder, error)
}

type libraryService struct {
	cache        repositories.StructureCacheRepository
	expansion    repositories.ExpansionRepository
	googleTokens repositories.GoogleTokenRepository
	savedFolders repositories.SavedFolderRepository
	newClient    DriveClientFactory
	now          func() time.Time
}

func NewLibraryService(
	cache repositories.StructureCacheRepository,
	expansion repositories.ExpansionRepository,
	googleTokens repositories.GoogleTokenRepository,
	savedFolders repositories.SavedFolderRepository,
	newClient DriveClientFactory,
) LibraryService {
	if newClient == nil {
		newClient = func(ctx context.Context, accessToken string) (DriveClient, error) {
			return drive.NewClient(ctx, accessToken)
		}
	}
	return &libraryService{
		cache:        cache,
		expansion:    expansion,
		googleTokens: googleTokens,
		savedFolders: savedFolders,
		newClient:    newClient,
		now:          time.Now,
	}
}

func (s *libraryService) token(ctx context.Context, userID uint) (string, error) {
	token, err := s.googleTokens.Get(ctx, userID)
	if err != nil {
		return "", newAppError(http.StatusInternalServerError, "Erro ao acessar o Google Drive", err)
	}
	if token == "" {
		return "", newAppError(http.StatusUnauthorized, "Sessão do Google expirada. Faça login novamente", nil)
	}
	return token, nil
}

// mapDriveError translates the upstream Drive status into the message the
// client should see.
func mapDriveError(err error) error {
	switch drive.StatusOf(err) {
	case http.StatusUnauthorized:
		return newAppError(http.StatusUnauthorized, "Sessão do Google expirada. Faça login novamente", err)
	case http.StatusForbidden:
		return newAppError(http.StatusForbidden, "Sem permissão para acessar esta pasta", err)
	case http.StatusNotFound:
		return newAppError(http.StatusNotFound, "Pasta não encontrada", err)
	default:
		return newAppError(http.StatusInternalServerError, "Erro ao acessar o Google Drive", err)
	}
}

// resolveFolderID falls back to the user's most recently browsed folder when
// the request does not name one.
func (s *libraryService) resolveFolderID(ctx context.Context, userID uint, folderID string) (string, error) {
	if folderID != "" {
		return folderID, nil
	}
	saved, err := s.savedFolders.ListByUser(ctx, nil, userID)
	if err != nil {
		return "", newAppError(http.StatusInternalServerError, "Erro ao buscar pastas salvas", err)
	}
	if len(saved) == 0 {
		return "", newAppError(http.StatusBadRequest, "Nenhuma pasta configurada", nil)
	}
	return saved[0].DriveFolderID, nil
}

func (s *libraryService) GetTree(ctx context.Context, userID uint, folderID string) (*LibraryTree, error) {
	folderID, err := s.resolveFolderID(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(config.AppConfig.Drive.StructureCacheTTL) * time.Second
	cached, err := s.cache.Get(ctx, userID)
	if err != nil {
		logger.Warnf("structure cache read for user %d: %v", userID, err)
	}
	if cached != nil && cached.FolderID == folderID {
		age := s.now().Unix() - cached.FetchedAt
		if age >= 0 && time.Duration(age)*time.Second <= ttl {
			if err := s.touchSavedFolder(ctx, userID, cached.Root); err != nil {
				logger.Warnf("saved folder touch for user %d: %v", userID, err)
			}
			return &LibraryTree{
				FolderID:  folderID,
				Root:      cached.Root,
				FetchedAt: cached.FetchedAt,
				FromCache: true,
			}, nil
		}
	}

	return s.walkAndCache(ctx, userID, folderID)
}

// Refresh bypasses the cache and forces a fresh walk.
func (s *libraryService) Refresh(ctx context.Context, userID uint, folderID string) (*LibraryTree, error) {
	folderID, err := s.resolveFolderID(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}
	return s.walkAndCache(ctx, userID, folderID)
}

func (s *libraryService) walkAndCache(ctx context.Context, userID uint, folderID string) (*LibraryTree, error) {
	token, err := s.token(ctx, userID)
	if err != nil {
		return nil, err
	}
	client, err := s.newClient(ctx, token)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "Erro ao acessar o Google Drive", err)
	}

	gen, err := s.cache.BumpGeneration(ctx, userID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "Erro ao acessar o Google Drive", err)
	}

	walker := drive.NewWalker(client, config.AppConfig.Drive.MaxDepth)
	root, err := walker.Walk(ctx, folderID)
	if err != nil {
		return nil, mapDriveError(err)
	}
	fetchedAt := s.now().Unix()

	// A concurrent walk for a newer folder selection may have started while
	// this one ran; only the walk with the current generation may write.
	current, err := s.cache.Generation(ctx, userID)
	if err == nil && current == gen {
		entry := &repositories.CachedStructure{
			FolderID:  folderID,
			FetchedAt: fetchedAt,
			Root:      root,
		}
		ttl := time.Duration(config.AppConfig.Drive.StructureCacheTTL) * time.Second
		if err := s.cache.Put(ctx, userID, entry, ttl); err != nil {
			logger.Warnf("structure cache write for user %d: %v", userID, err)
		}
		if err := s.touchSavedFolder(ctx, userID, root); err != nil {
			logger.Warnf("saved folder upsert for user %d: %v", userID, err)
		}
	}

	return &LibraryTree{
		FolderID:  folderID,
		Root:      root,
		FetchedAt: fetchedAt,
	}, nil
}

func (s *libraryService) touchSavedFolder(ctx context.Context, userID uint, root *drive.Folder) error {
	if root == nil {
		return nil
	}
	updates := map[string]interface{}{
		"name":             root.Name,
		"thumbnail_url":    root.FirstThumbnail(),
		"video_count":      root.CountVideos(),
		"last_accessed_at": s.now(),
	}
	existing, err := s.savedFolders.GetByUserAndFolder(ctx, nil, userID, root.ID)
	if err == nil {
		return s.savedFolders.UpdateByID(ctx, nil, existing.ID, updates)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.savedFolders.Create(ctx, nil, &models.SavedFolder{
		UserID:         userID,
		DriveFolderID:  root.ID,
		Name:           root.Name,
		ThumbnailURL:   root.FirstThumbnail(),
		VideoCount:     root.CountVideos(),
		LastAccessedAt: s.now(),
	})
}

func (s *libraryService) TreeView(ctx context.Context, userID uint, in TreeViewInput) ([]TreeRow, error) {
	tree, err := s.GetTree(ctx, userID, in.FolderID)
	if err != nil {
		return nil, err
	}

	members, err := s.expansion.Members(ctx, userID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "Erro ao montar a árvore", err)
	}
	expanded := make(map[string]bool, len(members))
	for _, id := range members {
		expanded[id] = true
	}

	return BuildTreeView(tree.Root, in.SortMode, expanded), nil
}

// ClearCache drops both the cached structure and the expansion state.
func (s *libraryService) ClearCache(ctx context.Context, userID uint) error {
	if err := s.cache.Clear(ctx, userID); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao limpar o cache", err)
	}
	if err := s.expansion.Clear(ctx, userID); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao limpar o cache", err)
	}
	return nil
}

func (s *libraryService) ToggleFolder(ctx context.Context, userID uint, folderID string) (bool, error) {
	open, err := s.expansion.Contains(ctx, userID, folderID)
	if err != nil {
		return false, newAppError(http.StatusInternalServerError, "Erro ao alternar a pasta", err)
	}
	if open {
		if err := s.expansion.Remove(ctx, userID, folderID); err != nil {
			return false, newAppError(http.StatusInternalServerError, "Erro ao alternar a pasta", err)
		}
		return false, nil
	}
	if err := s.expansion.Add(ctx, userID, folderID); err != nil {
		return false, newAppError(http.StatusInternalServerError, "Erro ao alternar a pasta", err)
	}
	return true, nil
}

func (s *libraryService) SavedFolders(ctx context.Context, userID uint) ([]models.SavedFolder, error) {
	folders, err := s.savedFolders.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "Erro ao buscar pastas salvas", err)
	}
	return folders, nil
}

func (s *libraryService) DeleteSavedFolder(ctx context.Context, userID uint, driveFolderID string) error {
	removed, err := s.savedFolders.DeleteByUserAndFolder(ctx, nil, userID, driveFolderID)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao remover pasta salva", err)
	}
	if removed == 0 {
		return newAppError(http.StatusNotFound, "Pasta não encontrada", nil)
	}
	return nil
}

// ConfigureFolder validates that folderID exists, is reachable with the
// user's token and really is a folder, then records it as a saved folder.
func (s *libraryService) ConfigureFolder(ctx context.Context, userID uint, folderID string) (models.SavedFolder, error) {
	if folderID == "" {
		return models.SavedFolder{}, newAppError(http.StatusBadRequest, "ID da pasta é obrigatório", nil)
	}

	token, err := s.token(ctx, userID)
	if err != nil {
		return models.SavedFolder{}, err
	}
	client, err := s.newClient(ctx, token)
	if err != nil {
		return models.SavedFolder{}, newAppError(http.StatusInternalServerError, "Erro ao acessar o Google Drive", err)
	}

	id, name, mimeType, err := client.FolderMeta(ctx, folderID)
	if err != nil {
		return models.SavedFolder{}, mapDriveError(err)
	}
	if !drive.IsFolder(mimeType) {
		return models.SavedFolder{}, newAppError(http.StatusBadRequest, "O ID fornecido não é uma pasta", nil)
	}

	// Configuring only knows the folder's metadata; thumbnail and video count
	// from an earlier browse stay untouched until the next walk.
	existing, err := s.savedFolders.GetByUserAndFolder(ctx, nil, userID, id)
	if err == nil {
		updates := map[string]interface{}{
			"name":             name,
			"last_accessed_at": s.now(),
		}
		if err := s.savedFolders.UpdateByID(ctx, nil, existing.ID, updates); err != nil {
			return models.SavedFolder{}, newAppError(http.StatusInternalServerError, "Erro ao salvar a pasta", err)
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.savedFolders.Create(ctx, nil, &models.SavedFolder{
			UserID:         userID,
			DriveFolderID:  id,
			Name:           name,
			LastAccessedAt: s.now(),
		}); err != nil {
			return models.SavedFolder{}, newAppError(http.StatusInternalServerError, "Erro ao salvar a pasta", err)
		}
	} else {
		return models.SavedFolder{}, newAppError(http.StatusInternalServerError, "Erro ao salvar a pasta", err)
	}

	saved, err := s.savedFolders.GetByUserAndFolder(ctx, nil, userID, id)
	if err != nil {
		return models.SavedFolder{}, newAppError(http.StatusInternalServerError, "Erro ao salvar a pasta", err)
	}
	return saved, nil
}
