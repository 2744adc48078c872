package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"

	"gorm.io/gorm"
)

type FavoriteService interface {
	List(ctx context.Context, userID uint) ([]models.Video, error)
	Add(ctx context.Context, userID uint, videoID uint) error
	Remove(ctx context.Context, userID uint, videoID uint) error
}

type favoriteService struct {
	favorites repositories.FavoriteRepository
	videos    repositories.VideoRepository
}

func NewFavoriteService(favorites repositories.FavoriteRepository, videos repositories.VideoRepository) FavoriteService {
	return &favoriteService{favorites: favorites, videos: videos}
}

func (s *favoriteService) List(ctx context.Context, userID uint) ([]models.Video, error) {
	videos, err := s.favorites.ListVideosByUser(ctx, nil, userID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "Erro ao listar favoritos", err)
	}
	return videos, nil
}

func (s *favoriteService) Add(ctx context.Context, userID uint, videoID uint) error {
	video, err := s.videos.GetByID(ctx, nil, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newAppError(http.StatusNotFound, "Vídeo não encontrado", nil)
		}
		return newAppError(http.StatusInternalServerError, "Erro ao adicionar favorito", err)
	}
	if video.UserID != userID {
		return newAppError(http.StatusNotFound, "Vídeo não encontrado", nil)
	}

	exists, err := s.favorites.Exists(ctx, nil, userID, videoID)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao adicionar favorito", err)
	}
	if exists {
		return newAppError(http.StatusBadRequest, "Vídeo já está nos favoritos", nil)
	}

	favorite := models.Favorite{UserID: userID, VideoID: videoID}
	if err := s.favorites.Create(ctx, nil, &favorite); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao adicionar favorito", err)
	}
	return nil
}

func (s *favoriteService) Remove(ctx context.Context, userID uint, videoID uint) error {
	removed, err := s.favorites.Delete(ctx, nil, userID, videoID)
	if err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao remover favorito", err)
	}
	if removed == 0 {
		return newAppError(http.StatusNotFound, "Vídeo não está nos favoritos", nil)
	}
	return nil
}
