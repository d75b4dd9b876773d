package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/http/api/admin/control/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
)

type LayoutController struct {
	store db.Store
}

func newLayoutController(store db.Store) *LayoutController {
	return &LayoutController{store: store}
}

func LayoutModule(store db.Store) api.Module {
	ctl := newLayoutController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/layouts", ctl.listLayouts)
		c.POST("/layouts", ctl.createLayout)
		c.GET("/layouts/:id", ctl.getLayout)
		c.PATCH("/layouts/:id", ctl.updateLayout)
		c.DELETE("/layouts/:id", ctl.deleteLayout)
	})
}

func (l *LayoutController) listLayouts(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := l.store.ListLayouts(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list layouts"}
	}
	return list, nil
}

func (l *LayoutController) getLayout(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	layout, err := l.store.GetLayoutByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}
	return layout, nil
}

func (l *LayoutController) createLayout(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateLayoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	background := request.BackgroundColor
	if background == "" {
		background = "#000000"
	}

	layout, err := l.store.CreateLayout(user.CustomerID, request.Name, request.Width, request.Height, background, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create layout"}
	}
	return layout, nil
}

func (l *LayoutController) updateLayout(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateLayoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := l.store.UpdateLayout(user.CustomerID, id, request.Name, request.Width, request.Height, request.BackgroundColor); err != nil {
		return nil, storeError(err, "could not update layout")
	}

	layout, err := l.store.GetLayoutByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated layout"}
	}
	return layout, nil
}

func (l *LayoutController) deleteLayout(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := l.store.DeleteLayout(user.CustomerID, id); err != nil {
		return nil, storeError(err, "could not delete layout")
	}
	return gin.H{"message": "deleted"}, nil
}
