package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCookieName = "session_token"

// fakeBackend is an in-memory stand-in for gme-managment. Handlers check
// the session cookie the way the real backend does.
type fakeBackend struct {
	token    string
	projects []map[string]any
	runs     []map[string]any

	lastCreateTitle  string
	lastCreateStart  string
	lastUploadedName string
	lastQuery        string
}

func (b *fakeBackend) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/auth/login", b.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", b.requireSession(b.handleLogout)).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", b.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/users/me", b.requireSession(b.handleMe)).Methods(http.MethodGet)
	r.HandleFunc("/projects", b.requireSession(b.handleListProjects)).Methods(http.MethodGet)
	r.HandleFunc("/projects", b.requireSession(b.handleCreateProject)).Methods(http.MethodPost)
	r.HandleFunc("/projects/{id}/processing/start", b.requireSession(b.handleStartProcessing)).Methods(http.MethodPost)
	r.HandleFunc("/projects/{id}/processing", b.requireSession(b.handleListRuns)).Methods(http.MethodGet)
	return r
}

func (b *fakeBackend) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(testCookieName)
		if err != nil || cookie.Value != b.token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "session expired"})
			return
		}
		next(w, r)
	}
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds map[string]string
	json.NewDecoder(r.Body).Decode(&creds)

	if creds["login"] != "ivan" || creds["password"] != "secret123" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials", "code": "auth_failed"})
		return
	}

	b.token = "tok-123"
	http.SetCookie(w, &http.Cookie{Name: testCookieName, Value: b.token, Path: "/"})
	json.NewEncoder(w).Encode(map[string]any{
		"user": map[string]any{
			"id":    "0b7a2c9d-5c13-4f0f-8a34-91d5a7a3c001",
			"login": "ivan",
			"role":  "user",
		},
	})
}

func (b *fakeBackend) handleLogout(w http.ResponseWriter, r *http.Request) {
	b.token = ""
	w.WriteHeader(http.StatusNoContent)
}

func (b *fakeBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload map[string]string
	json.NewDecoder(r.Body).Decode(&payload)
	if payload["login"] == "taken" {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "login already in use", "code": "login_taken"})
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": "7d7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa"})
}

func (b *fakeBackend) handleMe(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]any{
		"id":           "0b7a2c9d-5c13-4f0f-8a34-91d5a7a3c001",
		"login":        "ivan",
		"role":         "user",
		"is_active":    true,
		"display_name": "Ivan Petrov",
		"created_at":   "2024-01-15T10:00:00Z",
	})
}

func (b *fakeBackend) handleListProjects(w http.ResponseWriter, r *http.Request) {
	b.lastQuery = r.URL.Query().Get("q")
	json.NewEncoder(w).Encode(map[string]any{
		"items":  b.projects,
		"total":  len(b.projects),
		"limit":  100,
		"offset": 0,
	})
}

func (b *fakeBackend) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "bad multipart body"})
		return
	}
	b.lastCreateTitle = r.FormValue("title")
	b.lastCreateStart = r.FormValue("start_processing")

	file, header, err := r.FormFile("video")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "video part missing"})
		return
	}
	defer file.Close()
	b.lastUploadedName = header.Filename

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"id":         "7d7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa",
		"creator_id": "0b7a2c9d-5c13-4f0f-8a34-91d5a7a3c001",
		"title":      b.lastCreateTitle,
		"status":     "draft",
		"video_path": "videos/" + header.Filename,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (b *fakeBackend) handleStartProcessing(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["id"]
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"id":            "aa7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa",
		"project_id":    projectID,
		"video_task_id": "vt-9",
		"provider":      "default",
		"status":        "scheduled",
		"launch_mode":   "immediate",
		"created_at":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (b *fakeBackend) handleListRuns(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]any{
		"items":  b.runs,
		"total":  len(b.runs),
		"limit":  20,
		"offset": 0,
	})
}

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) *Client {
	t.Helper()
	client, err := NewClient(baseURL, timeout, testCookieName, "test", zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestClient_LoginCapturesSessionCookie(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.router())
	defer server.Close()

	client := newTestClient(t, server.URL, 5*time.Second)

	user, err := client.Login(context.Background(), "ivan", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "ivan", user.Login)
	assert.Equal(t, "tok-123", client.SessionToken())
}

func TestClient_LoginInvalidCredentials(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.router())
	defer server.Close()

	client := newTestClient(t, server.URL, 5*time.Second)

	_, err := client.Login(context.Background(), "ivan", "wrong")
	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Empty(t, client.SessionToken(), "failed login must not persist a token")
}

func TestClient_ExpiredSessionMapsToAuthError(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.router())
	defer server.Close()

	client := newTestClient(t, server.URL, 5*time.Second)
	client.SetSessionToken("stale-token")

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Equal(t, "session expired", UserMessage(err))
}

func TestClient_SetAndClearSessionToken(t *testing.T) {
	client := newTestClient(t, "http://gme.example.com/api/v1", time.Second)

	client.SetSessionToken("tok-abc")
	assert.Equal(t, "tok-abc", client.SessionToken())

	client.ClearSessionToken()
	assert.Empty(t, client.SessionToken())
}

func TestClient_ListProjects(t *testing.T) {
	backend := &fakeBackend{
		projects: []map[string]any{
			{
				"id":         "7d7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa",
				"creator_id": "0b7a2c9d-5c13-4f0f-8a34-91d5a7a3c001",
				"title":      "Interview 12",
				"status":     "done",
				"video_path": "videos/interview-12.mp4",
				"created_at": "2024-03-01T09:30:00Z",
			},
		},
	}
	server := httptest.NewServer(backend.router())
	defer server.Close()

	client := newTestClient(t, server.URL, 5*time.Second)
	_, err := client.Login(context.Background(), "ivan", "secret123")
	require.NoError(t, err)

	page, err := client.ListProjects(context.Background(), "interview", 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Interview 12", page.Items[0].Title)
	assert.Equal(t, "interview", backend.lastQuery)
}

func TestClient_CreateProjectUploadsVideo(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.router())
	defer server.Close()

	videoPath := filepath.Join(t.TempDir(), "interview.mp4")
	require.NoError(t, os.WriteFile(videoPath, []byte("fake video content"), 0644))

	client := newTestClient(t, server.URL, 5*time.Second)
	_, err := client.Login(context.Background(), "ivan", "secret123")
	require.NoError(t, err)

	project, err := client.CreateProject(context.Background(), "Interview 12", "first pass", videoPath, true)
	require.NoError(t, err)

	assert.Equal(t, "Interview 12", project.Title)
	assert.Equal(t, "Interview 12", backend.lastCreateTitle)
	assert.Equal(t, "true", backend.lastCreateStart)
	assert.Equal(t, "interview.mp4", backend.lastUploadedName)
}

func TestClient_CreateProjectMissingFile(t *testing.T) {
	client := newTestClient(t, "http://gme.example.com/api/v1", time.Second)

	_, err := client.CreateProject(context.Background(), "t", "", "/does/not/exist.mp4", false)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "video file not found")
}

func TestClient_StartProcessingAndListRuns(t *testing.T) {
	backend := &fakeBackend{
		runs: []map[string]any{
			{
				"id":          "aa7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa",
				"project_id":  "7d7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa",
				"provider":    "default",
				"status":      "running",
				"launch_mode": "immediate",
				"created_at":  "2024-03-01T09:30:00Z",
			},
		},
	}
	server := httptest.NewServer(backend.router())
	defer server.Close()

	client := newTestClient(t, server.URL, 5*time.Second)
	_, err := client.Login(context.Background(), "ivan", "secret123")
	require.NoError(t, err)

	run, err := client.StartProcessing(context.Background(), "7d7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa")
	require.NoError(t, err)
	assert.Equal(t, "scheduled", run.Status.String())

	page, err := client.ListProcessingRuns(context.Background(), "7d7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa", 20, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].Status.IsActive())
}

func TestClient_RegisterConflict(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.router())
	defer server.Close()

	client := newTestClient(t, server.URL, 5*time.Second)

	require.NoError(t, client.Register(context.Background(), "new-user", "secret123", ""))

	err := client.Register(context.Background(), "taken", "secret123", "taken@example.com")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "login_taken", apiErr.Code)
	assert.Equal(t, "login already in use", UserMessage(err))
}

func TestClient_TimeoutMapsToTimeoutError(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer slow.Close()

	client := newTestClient(t, slow.URL, 100*time.Millisecond)

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestClient_NetworkErrorOnUnreachableService(t *testing.T) {
	// Reserved TEST-NET address, nothing listens there.
	client := newTestClient(t, "http://192.0.2.1:9", 200*time.Millisecond)

	_, err := client.Me(context.Background())
	require.Error(t, err)

	if !IsTimeout(err) {
		var netErr *NetworkError
		assert.ErrorAs(t, err, &netErr)
	}
}

func TestClient_LogoutClearsBackendSession(t *testing.T) {
	backend := &fakeBackend{}
	server := httptest.NewServer(backend.router())
	defer server.Close()

	client := newTestClient(t, server.URL, 5*time.Second)
	_, err := client.Login(context.Background(), "ivan", "secret123")
	require.NoError(t, err)

	require.NoError(t, client.Logout(context.Background()))

	// Token is now invalid on the backend side.
	_, err = client.Me(context.Background())
	assert.True(t, IsAuth(err))
}
