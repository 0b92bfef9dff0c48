package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfarrell/taskapi/internal/api"
	"github.com/mfarrell/taskapi/internal/api/shared"
)

// doRequest runs a request through the full router and returns the recorder.
func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		// The raw header value is the token; no Bearer prefix.
		req.Header.Set("Authorization", token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestListTasks_EmptyStore(t *testing.T) {
	t.Parallel()

	_, router, _ := newTestApplication(t)

	recorder := doRequest(router, http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestCreateTask_RequiresToken(t *testing.T) {
	t.Parallel()

	_, router, taskStore := newTestApplication(t)

	recorder := doRequest(router, http.MethodPost, "/create", "",
		`{"task":{"description":"X"}}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Equal(t, "No token provided.", errResp.Error)

	// The gate stops the request before the store is touched.
	assert.Equal(t, 0, taskStore.Len())
}

func TestCreateTask_RejectsBadToken(t *testing.T) {
	t.Parallel()

	_, router, taskStore := newTestApplication(t)

	recorder := doRequest(router, http.MethodPost, "/create", "not-a-real-token",
		`{"task":{"description":"Test task"}}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Equal(t, "Authentication failed.", errResp.Error)
	assert.Equal(t, 0, taskStore.Len())
}

func TestCreateTask_AuthPrecedesValidation(t *testing.T) {
	t.Parallel()

	_, router, _ := newTestApplication(t)

	// Invalid token AND invalid body: the gate must answer first.
	recorder := doRequest(router, http.MethodPost, "/create", "bad-token",
		`{"task":null}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateTask_Success(t *testing.T) {
	t.Parallel()

	app, router, _ := newTestApplication(t)
	token := validToken(t, app)

	recorder := doRequest(router, http.MethodPost, "/create", token,
		`{"task":{"description":"Test task"}}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var task api.TaskResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &task))
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "Test task", task.Description)

	// The created task shows up in a subsequent list.
	listRecorder := doRequest(router, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, listRecorder.Code)

	var tasks []api.TaskResponse
	require.NoError(t, json.Unmarshal(listRecorder.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, task, tasks[0])
}

func TestCreateTask_NullTask(t *testing.T) {
	t.Parallel()

	app, router, taskStore := newTestApplication(t)
	token := validToken(t, app)

	recorder := doRequest(router, http.MethodPost, "/create", token, `{"task":null}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.NotEmpty(t, errResp.Error)
	assert.Equal(t, 0, taskStore.Len())
}

func TestCreateTask_ShortDescription(t *testing.T) {
	t.Parallel()

	app, router, taskStore := newTestApplication(t)
	token := validToken(t, app)

	recorder := doRequest(router, http.MethodPost, "/create", token,
		`{"task":{"description":"ab"}}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, taskStore.Len())
}

func TestDeleteTask_FullLifecycle(t *testing.T) {
	t.Parallel()

	app, router, _ := newTestApplication(t)
	token := validToken(t, app)

	// Create a task
	createRecorder := doRequest(router, http.MethodPost, "/create", token,
		`{"task":{"description":"Doomed task"}}`)
	require.Equal(t, http.StatusCreated, createRecorder.Code)

	var created api.TaskResponse
	require.NoError(t, json.Unmarshal(createRecorder.Body.Bytes(), &created))

	// Delete it
	deleteRecorder := doRequest(router, http.MethodDelete,
		fmt.Sprintf("/%d", created.ID), token, "")
	assert.Equal(t, http.StatusNoContent, deleteRecorder.Code)
	assert.Empty(t, deleteRecorder.Body.Bytes())

	// The store is empty again
	listRecorder := doRequest(router, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, listRecorder.Code)
	assert.JSONEq(t, "[]", listRecorder.Body.String())
}

func TestDeleteTask_RequiresToken(t *testing.T) {
	t.Parallel()

	_, router, _ := newTestApplication(t)

	recorder := doRequest(router, http.MethodDelete, "/1", "", "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestDeleteTask_UnknownID(t *testing.T) {
	t.Parallel()

	app, router, _ := newTestApplication(t)
	token := validToken(t, app)

	recorder := doRequest(router, http.MethodDelete, "/999", token, "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Equal(t, "Task not found", errResp.Error)
}

func TestDeleteTask_NonNumericID(t *testing.T) {
	t.Parallel()

	app, router, _ := newTestApplication(t)
	token := validToken(t, app)

	recorder := doRequest(router, http.MethodDelete, "/abc", token, "")

	// Non-numeric ids are coerced to the not-found outcome.
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestStoreReset_IsolatesRuns(t *testing.T) {
	t.Parallel()

	app, router, taskStore := newTestApplication(t)
	token := validToken(t, app)

	for i := 0; i < 3; i++ {
		recorder := doRequest(router, http.MethodPost, "/create", token,
			`{"task":{"description":"Test task"}}`)
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	taskStore.Reset()

	// IDs restart at 1 after a reset.
	recorder := doRequest(router, http.MethodPost, "/create", token,
		`{"task":{"description":"After reset"}}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var task api.TaskResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &task))
	assert.Equal(t, int64(1), task.ID)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	_, router, _ := newTestApplication(t)

	recorder := doRequest(router, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestWrongSecret_RejectsToken(t *testing.T) {
	t.Parallel()

	// Token minted against one secret must fail against another.
	issuerApp, _, _ := newTestApplication(t)
	token := validToken(t, issuerApp)

	cfg := testConfig()
	cfg.Auth.JWTSecret = "a-completely-different-secret-32ch!!"
	verifierApp, err := newApplication(cfg, issuerApp.logger)
	require.NoError(t, err)
	router := verifierApp.setupRouter()

	recorder := doRequest(router, http.MethodPost, "/create", token,
		`{"task":{"description":"Test task"}}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
