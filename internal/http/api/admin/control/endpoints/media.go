package endpoints

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/model"
	"github.com/Lumen-Signage/lumen/internal/storage"
)

type MediaController struct {
	store   db.Store
	storage storage.Storage
}

func newMediaController(store db.Store, storageSystem storage.Storage) *MediaController {
	return &MediaController{store: store, storage: storageSystem}
}

func MediaModule(store db.Store, storageSystem storage.Storage) api.Module {
	ctl := newMediaController(store, storageSystem)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/media", ctl.listMedia)
		c.POST("/media", ctl.uploadMedia)
		c.DELETE("/media/:id", ctl.deleteMedia)
	})
}

func (m *MediaController) listMedia(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := m.store.ListMedia(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list media"}
	}
	return list, nil
}

// uploadMedia accepts multipart form data: "file" plus an optional "name".
func (m *MediaController) uploadMedia(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "file is required"}
	}

	name := ctx.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}

	mediaType := "image"
	if ct := fileHeader.Header.Get("Content-Type"); strings.HasPrefix(ct, "video/") {
		mediaType = "video"
	}

	url, err := m.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("media upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store file"}
	}

	media, err := m.store.CreateMedia(user.CustomerID, name, mediaType, url, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create media"}
	}
	return media, nil
}

func (m *MediaController) deleteMedia(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := m.store.DeleteMedia(user.CustomerID, id); err != nil {
		return nil, storeError(err, "could not delete media")
	}
	return gin.H{"message": "deleted"}, nil
}
