package handlers

import (
	"net/http"
	"strconv"

	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

func favoriteVideoIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("videoId"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID do vídeo inválido")
		return 0, false
	}
	return uint(id), true
}

func ListFavorites(c *gin.Context) {
	videos, err := getServices().Favorites.List(c.Request.Context(), c.GetUint("user_id"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, videos)
}

func AddFavorite(c *gin.Context) {
	videoID, ok := favoriteVideoIDParam(c)
	if !ok {
		return
	}
	err := getServices().Favorites.Add(c.Request.Context(), c.GetUint("user_id"), videoID)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "Vídeo adicionado aos favoritos", nil)
}

func RemoveFavorite(c *gin.Context) {
	videoID, ok := favoriteVideoIDParam(c)
	if !ok {
		return
	}
	err := getServices().Favorites.Remove(c.Request.Context(), c.GetUint("user_id"), videoID)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "Vídeo removido dos favoritos", nil)
}
