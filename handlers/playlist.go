package handlers

import (
	"net/http"
	"strconv"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

type PlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type AddPlaylistVideoRequest struct {
	VideoID uint `json:"video_id" binding:"required"`
}

type ReorderPlaylistRequest struct {
	Videos []services.ReorderItem `json:"videos" binding:"required,dive"`
}

func playlistIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID da playlist inválido")
		return 0, false
	}
	return uint(id), true
}

func ListPlaylists(c *gin.Context) {
	playlists, err := getServices().Playlists.List(c.Request.Context(), c.GetUint("user_id"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, playlists)
}

func GetPlaylist(c *gin.Context) {
	playlistID, ok := playlistIDParam(c)
	if !ok {
		return
	}
	detail, err := getServices().Playlists.Get(c.Request.Context(), c.GetUint("user_id"), playlistID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, detail)
}

func CreatePlaylist(c *gin.Context) {
	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	playlist, err := getServices().Playlists.Create(c.Request.Context(), c.GetUint("user_id"), services.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Created(c, playlist)
}

func UpdatePlaylist(c *gin.Context) {
	playlistID, ok := playlistIDParam(c)
	if !ok {
		return
	}

	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	err := getServices().Playlists.Update(c.Request.Context(), c.GetUint("user_id"), playlistID, services.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "Playlist atualizada", nil)
}

func DeletePlaylist(c *gin.Context) {
	playlistID, ok := playlistIDParam(c)
	if !ok {
		return
	}
	err := getServices().Playlists.Delete(c.Request.Context(), c.GetUint("user_id"), playlistID)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "Playlist removida", nil)
}

func AddPlaylistVideo(c *gin.Context) {
	playlistID, ok := playlistIDParam(c)
	if !ok {
		return
	}

	var req AddPlaylistVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	err := getServices().Playlists.AddVideo(c.Request.Context(), c.GetUint("user_id"), playlistID, req.VideoID)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "Vídeo adicionado à playlist", nil)
}

func RemovePlaylistVideo(c *gin.Context) {
	playlistID, ok := playlistIDParam(c)
	if !ok {
		return
	}
	videoID, err := strconv.ParseUint(c.Param("videoId"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID do vídeo inválido")
		return
	}

	if respondServiceError(c, getServices().Playlists.RemoveVideo(c.Request.Context(), c.GetUint("user_id"), playlistID, uint(videoID))) {
		return
	}
	utils.SuccessWithMessage(c, "Vídeo removido da playlist", nil)
}

func ReorderPlaylist(c *gin.Context) {
	playlistID, ok := playlistIDParam(c)
	if !ok {
		return
	}

	var req ReorderPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	err := getServices().Playlists.Reorder(c.Request.Context(), c.GetUint("user_id"), playlistID, req.Videos)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "Playlist reordenada", nil)
}
