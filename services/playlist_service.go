package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"

	"gorm.io/gorm"
)

type PlaylistInput struct {
	Name        string
	Description string
}

type PlaylistDetail struct {
	models.Playlist
	Videos []repositories.PlaylistVideoItem `json:"videos"`
}

type ReorderItem struct {
	VideoID  uint `json:"id"`
	Position int  `json:"position"`
}

type PlaylistService interface {
	List(ctx context.Context, userID uint) ([]models.Playlist, error)
	Get(ctx context.Context, userID uint, playlistID uint) (PlaylistDetail, error)
	Create(ctx context.Context, userID uint, in PlaylistInput) (models.Playlist, error)
	Update(ctx context.Context, userID uint, playlistID uint, in PlaylistInput) error
	Delete(ctx context.Context, userID uint, playlistID uint) error
	AddVideo(ctx context.Context, userID uint, playlistID uint, videoID uint) error
	RemoveVideo(ctx context.Context, userID uint, playlistID uint, videoID uint) error
	Reorder(ctx context.Context, userID uint, playlistID uint, items []ReorderItem) error
}

type playlistService struct {
	txManager TxManager
	playlists repositories.PlaylistRepository
	videos    repositories.VideoRepository
}

func NewPlaylistService(txManager TxManager, playlists repositories.PlaylistRepository, videos repositories.VideoRepository) PlaylistService {
	return &playlistService{txManager: txManager, playlists: playlists, videos: videos}
}

func (s *playlistService) List(ctx context.Context, userID uint) ([]models.Playlist, error) {
	playlists, err := s.playlists.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "Erro ao listar playlists", err)
	}
	return playlists, nil
}

func (s *playlistService) getOwned(ctx context.Context, userID uint, playlistID uint) (models.Playlist, error) {
	playlist, err := s.playlists.GetByIDAndUser(ctx, nil, playlistID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Playlist{}, newAppError(http.StatusNotFound, "Playlist não encontrada", nil)
		}
		return models.Playlist{}, newAppError(http.StatusInternalServerError, "Erro ao buscar playlist", err)
	}
	return playlist, nil
}

func (s *playlistService) Get(ctx context.Context, userID uint, playlistID uint) (PlaylistDetail, error) {
	playlist, err := s.getOwned(ctx, userID, playlistID)
	if err != nil {
		return PlaylistDetail{}, err
	}

	videos, err := s.playlists.ListVideos(ctx, nil, playlistID)
	if err != nil {
		return PlaylistDetail{}, newAppError(http.StatusInternalServerError, "Erro ao buscar playlist", err)
	}
	if videos == nil {
		videos = []repositories.PlaylistVideoItem{}
	}
	return PlaylistDetail{Playlist: playlist, Videos: videos}, nil
}

func (s *playlistService) Create(ctx context.Context, userID uint, in PlaylistInput) (models.Playlist, error) {
	playlist := models.Playlist{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.playlists.Create(ctx, nil, &playlist); err != nil {
		return models.Playlist{}, newAppError(http.StatusInternalServerError, "Erro ao criar playlist", err)
	}
	return playlist, nil
}

func (s *playlistService) Update(ctx context.Context, userID uint, playlistID uint, in PlaylistInput) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}
	updates := map[string]interface{}{"name": in.Name, "description": in.Description}
	if err := s.playlists.UpdateByID(ctx, nil, playlistID, updates); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao atualizar playlist", err)
	}
	return nil
}

func (s *playlistService) Delete(ctx context.Context, userID uint, playlistID uint) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}
	if err := s.playlists.SoftDeleteByID(ctx, nil, playlistID); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao excluir playlist", err)
	}
	return nil
}

func (s *playlistService) AddVideo(ctx context.Context, userID uint, playlistID uint, videoID uint) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}

	video, err := s.videos.GetByID(ctx, nil, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "Vídeo não encontrado", nil)
		}
		return newAppError(http.StatusInternalServerError, "Erro ao adicionar vídeo à playlist", err)
	}
	if video.UserID != userID {
		return newAppError(http.StatusNotFound, "Vídeo não encontrado", nil)
	}

	exists, err := s.playlists.HasVideo(ctx, nil, playlistID, videoID)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao adicionar vídeo à playlist", err)
	}
	if exists {
		return newAppError(http.StatusBadRequest, "Vídeo já está na playlist", nil)
	}

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		max, err := s.playlists.MaxPosition(ctx, tx, playlistID)
		if err != nil {
			return err
		}
		entry := models.PlaylistVideo{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   max + 1,
		}
		return s.playlists.AddVideo(ctx, tx, &entry)
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao adicionar vídeo à playlist", err)
	}
	return nil
}

// RemoveVideo deletes the entry and renumbers the remainder so positions stay
// contiguous starting at 1.
func (s *playlistService) RemoveVideo(ctx context.Context, userID uint, playlistID uint, videoID uint) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}

	var removed int64
	err := s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		removed, err = s.playlists.RemoveVideo(ctx, tx, playlistID, videoID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return nil
		}

		entries, err := s.playlists.ListEntries(ctx, tx, playlistID)
		if err != nil {
			return err
		}
		for i, entry := range entries {
			want := i + 1
			if entry.Position == want {
				continue
			}
			if err := s.playlists.SetPosition(ctx, tx, playlistID, entry.VideoID, want); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao remover vídeo da playlist", err)
	}
	if removed == 0 {
		return newAppError(http.StatusNotFound, "Vídeo não encontrado na playlist", nil)
	}
	return nil
}

func (s *playlistService) Reorder(ctx context.Context, userID uint, playlistID uint, items []ReorderItem) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}

	err := s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		for _, item := range items {
			if err := s.playlists.SetPosition(ctx, tx, playlistID, item.VideoID, item.Position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao reordenar vídeos", err)
	}
	return nil
}
