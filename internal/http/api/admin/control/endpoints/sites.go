package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/http/api/admin/control/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
)

type SiteController struct {
	store db.Store
}

func newSiteController(store db.Store) *SiteController {
	return &SiteController{store: store}
}

func SiteModule(store db.Store) api.Module {
	ctl := newSiteController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/sites", ctl.listSites)
		c.POST("/sites", ctl.createSite)
		c.GET("/sites/:id", ctl.getSite)
		c.PATCH("/sites/:id", ctl.updateSite)
		c.DELETE("/sites/:id", ctl.deleteSite)
	})
}

func (s *SiteController) listSites(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := s.store.ListSites(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list sites"}
	}
	return list, nil
}

func (s *SiteController) getSite(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	site, err := s.store.GetSiteByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
	}
	return site, nil
}

func (s *SiteController) createSite(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateSiteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	// the zone string drives every schedule evaluation for this site, so
	// reject anything the tz database doesn't know
	if _, err := time.LoadLocation(request.TimeZone); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "time_zone must be a valid IANA zone"}
	}

	site, err := s.store.CreateSite(user.CustomerID, request.Name, request.TimeZone, request.Location)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create site"}
	}
	return site, nil
}

func (s *SiteController) updateSite(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateSiteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if request.TimeZone != nil {
		if _, err := time.LoadLocation(*request.TimeZone); err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "time_zone must be a valid IANA zone"}
		}
	}

	if err := s.store.UpdateSite(user.CustomerID, id, request.Name, request.TimeZone, request.Location); err != nil {
		return nil, storeError(err, "could not update site")
	}

	site, err := s.store.GetSiteByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated site"}
	}
	return site, nil
}

func (s *SiteController) deleteSite(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := s.store.DeleteSite(user.CustomerID, id); err != nil {
		return nil, storeError(err, "could not delete site")
	}
	return gin.H{"message": "deleted"}, nil
}
