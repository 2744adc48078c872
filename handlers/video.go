package handlers

import (
	"net/http"
	"strconv"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

type CreateVideoRequest struct {
	DriveID      string `json:"drive_id" binding:"required"`
	Name         string `json:"name" binding:"required,max=255"`
	Description  string `json:"description"`
	Folder       string `json:"folder"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     int    `json:"duration"`
}

type UpdateVideoRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Folder       *string `json:"folder"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Duration     *int    `json:"duration"`
}

func videoIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID do vídeo inválido")
		return 0, false
	}
	return uint(id), true
}

func ListVideos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	out, err := getServices().Videos.List(c.Request.Context(), c.GetUint("user_id"), page, pageSize)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, out)
}

func GetVideo(c *gin.Context) {
	videoID, ok := videoIDParam(c)
	if !ok {
		return
	}
	video, err := getServices().Videos.Get(c.Request.Context(), c.GetUint("user_id"), videoID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, video)
}

func GetVideoEmbed(c *gin.Context) {
	videoID, ok := videoIDParam(c)
	if !ok {
		return
	}
	url, err := getServices().Videos.EmbedURL(c.Request.Context(), c.GetUint("user_id"), videoID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"embed_url": url})
}

func CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	video, err := getServices().Videos.Create(c.Request.Context(), c.GetUint("user_id"), services.CreateVideoInput{
		DriveID:      req.DriveID,
		Name:         req.Name,
		Description:  req.Description,
		Folder:       req.Folder,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Created(c, video)
}

func UpdateVideo(c *gin.Context) {
	videoID, ok := videoIDParam(c)
	if !ok {
		return
	}

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	err := getServices().Videos.Update(c.Request.Context(), c.GetUint("user_id"), videoID, services.UpdateVideoInput{
		Name:         req.Name,
		Description:  req.Description,
		Folder:       req.Folder,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "Vídeo atualizado", nil)
}

func DeleteVideo(c *gin.Context) {
	videoID, ok := videoIDParam(c)
	if !ok {
		return
	}
	err := getServices().Videos.Delete(c.Request.Context(), c.GetUint("user_id"), videoID)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "Vídeo removido", nil)
}
