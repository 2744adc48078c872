package handlers

import (
	"net/http"

	"github.com/nickksoares/drivetube/services"
	"github.com/nickksoares/drivetube/utils"

	"github.com/gin-gonic/gin"
)

type TreeViewRequest struct {
	FolderID string `json:"folder_id"`
	SortMode string `json:"sort_mode"`
}

type RefreshRequest struct {
	FolderID string `json:"folder_id"`
}

type ConfigureFolderRequest struct {
	FolderID string `json:"folder_id" binding:"required"`
}

func GetLibraryTree(c *gin.Context) {
	tree, err := getServices().Library.GetTree(c.Request.Context(), c.GetUint("user_id"), c.Query("folder_id"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, tree)
}

func GetLibraryTreeView(c *gin.Context) {
	var req TreeViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	rows, err := getServices().Library.TreeView(c.Request.Context(), c.GetUint("user_id"), services.TreeViewInput{
		FolderID: req.FolderID,
		SortMode: req.SortMode,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, rows)
}

func RefreshLibrary(c *gin.Context) {
	var req RefreshRequest
	// Body is optional; without one the current folder is refreshed.
	_ = c.ShouldBindJSON(&req)

	tree, err := getServices().Library.Refresh(c.Request.Context(), c.GetUint("user_id"), req.FolderID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, tree)
}

func ClearLibraryCache(c *gin.Context) {
	if respondServiceError(c, getServices().Library.ClearCache(c.Request.Context(), c.GetUint("user_id"))) {
		return
	}
	utils.SuccessWithMessage(c, "Cache limpo", nil)
}

func ToggleLibraryFolder(c *gin.Context) {
	folderID := c.Param("folderId")
	if folderID == "" {
		utils.Error(c, http.StatusBadRequest, "ID da pasta é obrigatório")
		return
	}

	expanded, err := getServices().Library.ToggleFolder(c.Request.Context(), c.GetUint("user_id"), folderID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"folder_id": folderID, "expanded": expanded})
}

func ListSavedFolders(c *gin.Context) {
	folders, err := getServices().Library.SavedFolders(c.Request.Context(), c.GetUint("user_id"))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, folders)
}

func DeleteSavedFolder(c *gin.Context) {
	folderID := c.Param("folderId")
	if folderID == "" {
		utils.Error(c, http.StatusBadRequest, "ID da pasta é obrigatório")
		return
	}

	if respondServiceError(c, getServices().Library.DeleteSavedFolder(c.Request.Context(), c.GetUint("user_id"), folderID)) {
		return
	}
	utils.SuccessWithMessage(c, "Pasta removida", nil)
}

func ConfigureLibraryFolder(c *gin.Context) {
	var req ConfigureFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Dados inválidos: "+err.Error())
		return
	}

	folder, err := getServices().Library.ConfigureFolder(c.Request.Context(), c.GetUint("user_id"), req.FolderID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, folder)
}
