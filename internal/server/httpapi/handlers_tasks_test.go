package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskkeeper/internal/common"
	"taskkeeper/internal/server/tasks"
)

func TestListTasks_Defaults(t *testing.T) {
	ts := &fakeTaskService{listOut: &tasks.Page{Results: []*tasks.Task{}, Info: tasks.PageInfo{Count: 0, Pages: 0}}}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodGet, "/tasks", issueToken(t, "u1", "a@b.com"), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u1", ts.lastOwnerID)
	assert.Equal(t, tasks.ListQuery{Page: 0, Size: 5, Sort: "title", Order: "asc"}, ts.lastQ)
}

func TestListTasks_QueryParams(t *testing.T) {
	ts := &fakeTaskService{listOut: &tasks.Page{Results: []*tasks.Task{}}}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodGet, "/tasks?page=2&size=10&sort=endDate&order=desc", issueToken(t, "u1", "a@b.com"), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, tasks.ListQuery{Page: 2, Size: 10, Sort: "endDate", Order: "desc"}, ts.lastQ)
}

func TestListTasks_MalformedParams(t *testing.T) {
	h := newTestServer(&fakeUserService{}, &fakeTaskService{}).Handler()
	token := issueToken(t, "u1", "a@b.com")

	for _, target := range []string{"/tasks?page=two", "/tasks?size=lots"} {
		rr := doJSON(t, h, http.MethodGet, target, token, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "target %s", target)
	}
}

func TestListTasks_InvalidPageSize(t *testing.T) {
	ts := &fakeTaskService{listErr: common.ErrorInvalidPageSize}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodGet, "/tasks?size=0", issueToken(t, "u1", "a@b.com"), nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid_page_size", decodeBody(t, rr)["error"])
}

func TestCreateTask_RequiresAuth(t *testing.T) {
	h := newTestServer(&fakeUserService{}, &fakeTaskService{}).Handler()

	rr := doJSON(t, h, http.MethodPost, "/tasks", "", map[string]string{"title": "x"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateTask_OwnerFromTokenNotBody(t *testing.T) {
	ts := &fakeTaskService{}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	// the body tries to claim another owner; the verified identity wins
	rr := doJSON(t, h, http.MethodPost, "/tasks", issueToken(t, "token-owner", "a@b.com"), map[string]string{
		"title":  "some task",
		"userId": "body-owner",
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "token-owner", ts.lastOwnerID)
	assert.Equal(t, "token-owner", decodeBody(t, rr)["userId"])
}

func TestCreateTask_ValidationError(t *testing.T) {
	ts := &fakeTaskService{createErr: common.FieldErrors{}.Add("title", "must not be empty")}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodPost, "/tasks", issueToken(t, "u1", "a@b.com"), map[string]string{"title": ""})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetTask_OK(t *testing.T) {
	ts := &fakeTaskService{getOut: &tasks.Task{ID: "t1", Title: "x", State: tasks.StatePending, UserID: "u1"}}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodGet, "/tasks/t1", issueToken(t, "u1", "a@b.com"), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "t1", decodeBody(t, rr)["id"])
}

func TestGetTask_NotFound(t *testing.T) {
	ts := &fakeTaskService{getErr: common.ErrorNotFound}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodGet, "/tasks/missing", issueToken(t, "u1", "a@b.com"), nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateTask_OK(t *testing.T) {
	ts := &fakeTaskService{updateOut: &tasks.Task{ID: "t1", Title: "new", State: tasks.StateInProgress, UserID: "u1"}}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodPut, "/tasks/t1", issueToken(t, "u1", "a@b.com"), map[string]string{"title": "new"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "new", decodeBody(t, rr)["title"])
}

func TestUpdateTask_NotFound(t *testing.T) {
	ts := &fakeTaskService{updateErr: common.ErrorNotFound}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodPut, "/tasks/missing", issueToken(t, "u1", "a@b.com"), map[string]string{"title": "x"})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteTask_ReturnsDeletedRecord(t *testing.T) {
	ts := &fakeTaskService{deleteOut: &tasks.Task{ID: "t1", Title: "gone", State: tasks.StateCompleted, UserID: "u1"}}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodDelete, "/tasks/t1", issueToken(t, "u1", "a@b.com"), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "gone", body["title"])
	assert.Equal(t, "COMPLETED", body["state"])
}

func TestDeleteTask_NotFound(t *testing.T) {
	ts := &fakeTaskService{deleteErr: common.ErrorNotFound}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodDelete, "/tasks/missing", issueToken(t, "u1", "a@b.com"), nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInternalErrorHidesDetail(t *testing.T) {
	ts := &fakeTaskService{listErr: assert.AnError}
	h := newTestServer(&fakeUserService{}, ts).Handler()

	rr := doJSON(t, h, http.MethodGet, "/tasks", issueToken(t, "u1", "a@b.com"), nil)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "internal", body["error"])
	assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
}
