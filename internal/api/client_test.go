package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.Task{})
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "tok-123" })
	_, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsAuthWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.Task{})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientDecodesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "insufficient points"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.RedeemReward(context.Background(), 1, 2)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "insufficient points", apiErr.Message)
}

func TestCompleteTaskRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/tasks/7/complete", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("userId"))
		json.NewEncoder(w).Encode(model.Task{ID: 7, Status: model.TaskStatusCompleted, RewardPoints: 10})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	task, err := c.CompleteTask(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, task.Status)
	assert.Equal(t, 10, task.RewardPoints)
}

func TestLoginRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "s3cret", body["password"])
		json.NewEncoder(w).Encode(AuthResponse{Token: "tok", ID: 1, Username: "alice"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	resp, err := c.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, int64(1), resp.ID)
}

func TestUpdateTaskSendsOnlyPatchedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"status": "completed"}, body)
		json.NewEncoder(w).Encode(model.Task{ID: 1, Status: "completed"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	status := model.TaskStatusCompleted
	_, err := c.UpdateTask(context.Background(), 1, model.TaskPatch{Status: &status})
	require.NoError(t, err)
}

func TestAssignMealRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/meals/4/assign", r.URL.Path)
		assert.Equal(t, "2026-06-09", r.URL.Query().Get("date"))
		assert.Equal(t, "dinner", r.URL.Query().Get("mealType"))
		json.NewEncoder(w).Encode(model.Meal{ID: 4, Category: "dinner"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	meal, err := c.AssignMeal(context.Background(), 4, "2026-06-09", "dinner")
	require.NoError(t, err)
	assert.Equal(t, int64(4), meal.ID)
}

func TestDeleteReturnsNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/lists/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	require.NoError(t, c.DeleteList(context.Background(), 9))
}

func TestClientPlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ListTasks(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "gone fishing", apiErr.Message)
}
