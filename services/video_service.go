package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/nickksoares/drivetube/config"
	"github.com/nickksoares/drivetube/models"
	"github.com/nickksoares/drivetube/repositories"
	"github.com/nickksoares/drivetube/utils"

	"gorm.io/gorm"
)

type CreateVideoInput struct {
	DriveID      string
	Name         string
	Description  string
	Folder       string
	ThumbnailURL string
	Duration     int
}

type UpdateVideoInput struct {
	Name         *string
	Description  *string
	Folder       *string
	ThumbnailURL *string
	Duration     *int
}

type VideoListOutput struct {
	Videos     []models.Video       `json:"videos"`
	Pagination utils.PaginationData `json:"pagination"`
}

type VideoService interface {
	List(ctx context.Context, userID uint, page int, pageSize int) (VideoListOutput, error)
	Get(ctx context.Context, userID uint, videoID uint) (models.Video, error)
	EmbedURL(ctx context.Context, userID uint, videoID uint) (string, error)
	Create(ctx context.Context, userID uint, in CreateVideoInput) (models.Video, error)
	Update(ctx context.Context, userID uint, videoID uint, in UpdateVideoInput) error
	Delete(ctx context.Context, userID uint, videoID uint) error
}

type videoService struct {
	videos repositories.VideoRepository
}

func NewVideoService(videos repositories.VideoRepository) VideoService {
	return &videoService{videos: videos}
}

func (s *videoService) List(ctx context.Context, userID uint, page int, pageSize int) (VideoListOutput, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > config.AppConfig.Pagination.MaxPageSize {
		pageSize = config.AppConfig.Pagination.DefaultPageSize
	}

	total, err := s.videos.CountByUser(ctx, nil, userID)
	if err != nil {
		return VideoListOutput{}, newAppError(http.StatusInternalServerError, "Erro ao listar vídeos", err)
	}

	videos, err := s.videos.ListByUser(ctx, nil, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return VideoListOutput{}, newAppError(http.StatusInternalServerError, "Erro ao listar vídeos", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	return VideoListOutput{
		Videos: videos,
		Pagination: utils.PaginationData{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// getOwned distinguishes a missing video (404) from one owned by somebody
// else (403).
func (s *videoService) getOwned(ctx context.Context, userID uint, videoID uint) (models.Video, error) {
	video, err := s.videos.GetByID(ctx, nil, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Video{}, newAppError(http.StatusNotFound, "Vídeo não encontrado", nil)
		}
		return models.Video{}, newAppError(http.StatusInternalServerError, "Erro ao buscar vídeo", err)
	}
	if video.UserID != userID {
		return models.Video{}, newAppError(http.StatusForbidden, "Você não tem permissão para acessar este vídeo", nil)
	}
	return video, nil
}

func (s *videoService) Get(ctx context.Context, userID uint, videoID uint) (models.Video, error) {
	return s.getOwned(ctx, userID, videoID)
}

func (s *videoService) EmbedURL(ctx context.Context, userID uint, videoID uint) (string, error) {
	video, err := s.getOwned(ctx, userID, videoID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", video.DriveID), nil
}

func (s *videoService) Create(ctx context.Context, userID uint, in CreateVideoInput) (models.Video, error) {
	video := models.Video{
		UserID:       userID,
		DriveID:      in.DriveID,
		Name:         in.Name,
		Description:  in.Description,
		Folder:       in.Folder,
		ThumbnailURL: in.ThumbnailURL,
		Duration:     in.Duration,
	}
	if err := s.videos.Create(ctx, nil, &video); err != nil {
		return models.Video{}, newAppError(http.StatusInternalServerError, "Erro ao criar vídeo", err)
	}
	return video, nil
}

func (s *videoService) Update(ctx context.Context, userID uint, videoID uint, in UpdateVideoInput) error {
	if _, err := s.getOwned(ctx, userID, videoID); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Folder != nil {
		updates["folder"] = *in.Folder
	}
	if in.ThumbnailURL != nil {
		updates["thumbnail_url"] = *in.ThumbnailURL
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.videos.UpdateByID(ctx, nil, videoID, updates); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao atualizar vídeo", err)
	}
	return nil
}

func (s *videoService) Delete(ctx context.Context, userID uint, videoID uint) error {
	if _, err := s.getOwned(ctx, userID, videoID); err != nil {
		return err
	}
	if err := s.videos.SoftDeleteByID(ctx, nil, videoID); err != nil {
		return newAppError(http.StatusInternalServerError, "Erro ao excluir vídeo", err)
	}
	return nil
}
