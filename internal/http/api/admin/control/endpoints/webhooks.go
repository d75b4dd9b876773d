package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/http/api/admin/control/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
	"github.com/Lumen-Signage/lumen/internal/webhook"
)

var knownEvents = map[string]bool{
	webhook.EventScheduleCreated:   true,
	webhook.EventScheduleUpdated:   true,
	webhook.EventScheduleDeleted:   true,
	webhook.EventAssignmentCreated: true,
	webhook.EventAssignmentDeleted: true,
	webhook.EventPlayerPaired:      true,
}

type WebhookController struct {
	store db.Store
}

func WebhookModule(store db.Store) api.Module {
	ctl := &WebhookController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/webhooks", ctl.listWebhooks)
		c.POST("/webhooks", ctl.createWebhook)
		c.DELETE("/webhooks/:id", ctl.deleteWebhook)
	})
}

func (w *WebhookController) listWebhooks(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := w.store.ListWebhooks(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list webhooks"}
	}
	return list, nil
}

func (w *WebhookController) createWebhook(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateWebhookRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	for _, ev := range request.Events {
		if !knownEvents[ev] {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown event " + ev}
		}
	}

	created, err := w.store.CreateWebhook(user.CustomerID, request.URL, request.Secret, request.Events)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create webhook"}
	}
	return created, nil
}

func (w *WebhookController) deleteWebhook(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := w.store.DeleteWebhook(user.CustomerID, id); err != nil {
		return nil, storeError(err, "could not delete webhook")
	}
	return gin.H{"message": "deleted"}, nil
}
