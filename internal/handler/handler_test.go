package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scribble/internal/dice"
	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/enemy"
	"github.com/osse101/scribble/internal/inventory"
	"github.com/osse101/scribble/internal/repository"
	"github.com/osse101/scribble/internal/search"
	"github.com/osse101/scribble/internal/stats"
	"github.com/osse101/scribble/internal/validation"
)

type fixture struct {
	inventory inventory.Service
	enemies   enemy.Service
	stats     stats.Service
	search    search.Service
}

func newFixture(t *testing.T, items ...domain.Item) *fixture {
	t.Helper()
	store := repository.NewMemStore()
	v := validation.NewSchemaValidator()
	inv := repository.NewCollection[domain.Item](store, domain.CollectionInventory, v)
	en := repository.NewCollection[domain.Enemy](store, domain.CollectionEnemies, v)
	st := repository.NewCollection[domain.Stat](store, domain.CollectionStats, v)
	if len(items) > 0 {
		require.NoError(t, inv.Save(context.Background(), items))
	}
	return &fixture{
		inventory: inventory.NewService(inv),
		enemies:   enemy.NewService(en),
		stats:     stats.NewService(st),
		search:    search.NewService(inv, en, st),
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func get(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

var sword = domain.Item{Name: "Sword", Description: "Heirloom", Count: 1, Activity: domain.ActivityActive, Key: domain.KeyItem}

func TestHandleAddItem(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantBody   string
	}{
		{
			name:       "new item",
			body:       inventory.AddItemRequest{Name: "Torch", Description: "Light", Count: 2, Activity: domain.ActivityActive, Key: domain.NotKeyItem},
			wantStatus: http.StatusOK,
			wantBody:   MsgItemAdded,
		},
		{
			name:       "merge needs only name and count",
			body:       map[string]interface{}{"name": "sword", "count": 2},
			wantStatus: http.StatusOK,
			wantBody:   MsgItemMerged,
		},
		{
			name:       "incomplete new item",
			body:       map[string]interface{}{"name": "Lantern", "count": 1},
			wantStatus: http.StatusBadRequest,
			wantBody:   "description",
		},
		{
			name:       "validation failure",
			body:       map[string]interface{}{"name": "Torch", "count": 0},
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:       "bad activity value",
			body:       map[string]interface{}{"name": "Torch", "count": 1, "activeOrPassive": "Sometimes"},
			wantStatus: http.StatusBadRequest,
			wantBody:   "activeOrPassive",
		},
		{
			name:       "malformed json",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, sword)

			w := postJSON(t, HandleAddItem(f.inventory), tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleRemoveItem(t *testing.T) {
	tests := []struct {
		name       string
		body       inventory.RemoveItemRequest
		wantStatus int
		wantBody   string
	}{
		{name: "key item protected", body: inventory.RemoveItemRequest{Name: "Sword", Count: -1}, wantStatus: http.StatusConflict, wantBody: ErrMsgKeyItemError},
		{name: "not found", body: inventory.RemoveItemRequest{Name: "Lantern", Count: 1}, wantStatus: http.StatusNotFound, wantBody: ErrMsgItemNotFoundError},
		{name: "decrement", body: inventory.RemoveItemRequest{Name: "Torch", Count: 1}, wantStatus: http.StatusOK, wantBody: `"count":2`},
		{name: "blank name", body: inventory.RemoveItemRequest{Name: " ", Count: 1}, wantStatus: http.StatusBadRequest, wantBody: `"name"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			torch := domain.Item{Name: "Torch", Description: "Light", Count: 3, Activity: domain.ActivityActive, Key: domain.NotKeyItem}
			f := newFixture(t, sword, torch)

			w := postJSON(t, HandleRemoveItem(f.inventory), tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleListInventory(t *testing.T) {
	f := newFixture(t, sword)

	w := get(HandleListInventory(f.inventory), "/api/v1/inventory")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []domain.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []domain.Item{sword}, resp.Data)
}

func TestHandleEnemies(t *testing.T) {
	f := newFixture(t)

	w := postJSON(t, HandleAddEnemy(f.enemies), enemy.AddEnemyRequest{Name: "Goblin", Description: "Sneaky"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, HandleAddEnemy(f.enemies), enemy.AddEnemyRequest{Name: "Goblin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(HandleListEnemies(f.enemies), "/api/v1/enemies")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sneaky")
}

func TestHandleRoll(t *testing.T) {
	roller := dice.NewRoller(nil)

	w := postJSON(t, HandleRoll(roller), dice.RollRequest{Count: 3, Sides: 6})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Dice       []int  `json:"dice"`
		Total      int    `json:"total"`
		Expression string `json:"expression"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Dice, 3)
	assert.True(t, resp.Total >= 3 && resp.Total <= 18)
	assert.Equal(t, "3d6", resp.Expression)

	w = postJSON(t, HandleRoll(roller), dice.RollRequest{Count: 0, Sides: 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleStats(t *testing.T) {
	f := newFixture(t)

	w := postJSON(t, HandleAdjustStat(f.stats), stats.AdjustStatRequest{Name: "HP", Delta: 5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"value":5`)

	w = get(HandleListStats(f.stats), "/api/v1/stats")
	assert.Contains(t, w.Body.String(), `"name":"HP"`)
}

func TestHandleSearch(t *testing.T) {
	f := newFixture(t, sword)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "hit", target: "/?collection=inventory&name=%20sWORD", wantStatus: http.StatusOK, wantBody: `"value":"Heirloom"`},
		{name: "miss", target: "/?collection=inventory&name=Sw", wantStatus: http.StatusNotFound, wantBody: ErrMsgNoRecordError},
		{name: "unknown collection", target: "/?collection=spells&name=x", wantStatus: http.StatusBadRequest, wantBody: "collection"},
		{name: "missing name", target: "/?collection=stats", wantStatus: http.StatusBadRequest, wantBody: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(HandleSearch(f.search), tt.target)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrUnknownCollection, http.StatusBadRequest},
		{domain.ErrKeyItemProtected, http.StatusConflict},
		{domain.ErrItemNotFound, http.StatusNotFound},
		{domain.ErrEnemyNotFound, http.StatusNotFound},
		{domain.ErrStatNotFound, http.StatusNotFound},
		{domain.ErrRecordNotFound, http.StatusNotFound},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotContains(t, msg, "disk on fire")
		})
	}
}

func TestHandleHealthz(t *testing.T) {
	w := get(HandleHealthz(), "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleVersion(t *testing.T) {
	w := get(HandleVersion("1.2.3"), "/version")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
}
