package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Signage/lumen/internal/http/api/player/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
)

func postCtx(t *testing.T, body any) *gin.Context {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	ctx.Request.Header.Set("Content-Type", "application/json")
	return ctx
}

func TestTokenExchange(t *testing.T) {
	store := &fakeStore{playerByDevice: map[string]model.Player{
		"tv-abc": {ID: 101, SiteID: 11, CustomerID: 1, Paired: true},
	}}
	ctl := &PairingController{store: store, secretKey: "unit-test-secret"}

	result, apiErr := ctl.token(postCtx(t, gin.H{"device_id": "tv-abc"}))
	require.Nil(t, apiErr)
	assert.NotEmpty(t, result.(packets.TokenResponse).Token)
}

func TestTokenExchangeBeforePairing(t *testing.T) {
	store := &fakeStore{playerByDevice: map[string]model.Player{
		"tv-abc": {ID: 101, SiteID: 11, CustomerID: 1, Paired: false},
	}}
	ctl := &PairingController{store: store, secretKey: "unit-test-secret"}

	t.Run("registered but unclaimed", func(t *testing.T) {
		_, apiErr := ctl.token(postCtx(t, gin.H{"device_id": "tv-abc"}))
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
	})

	t.Run("unknown device", func(t *testing.T) {
		_, apiErr := ctl.token(postCtx(t, gin.H{"device_id": "tv-xyz"}))
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
	})
}
