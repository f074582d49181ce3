package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/gmehub/gme-app/internal/model"
)

// Launch mode sent with processing requests.
const LaunchModeImmediate = "immediate"

// Multipart field names for the create-project upload.
const (
	fieldTitle           = "title"
	fieldDescription     = "description"
	fieldStartProcessing = "start_processing"
	fieldLaunchMode      = "launch_mode"
	fieldVideo           = "video"
)

// Client talks to the gme-managment REST API. It owns the cookie jar that
// carries the session token, so one Client never holds two sessions.
type Client struct {
	baseURL    string
	cookieName string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a management API client with a bounded timeout and a
// fresh cookie jar.
func NewClient(baseURL string, timeout time.Duration, cookieName string, version string, logger *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	return &Client{
		baseURL:    baseURL,
		cookieName: cookieName,
		userAgent:  "gme-app/" + version,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// BaseURL returns the configured management API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Jar exposes the cookie jar so sibling service clients can share the
// session cookie.
func (c *Client) Jar() http.CookieJar {
	return c.httpClient.Jar
}

// SetSessionToken installs a previously persisted session token into the
// cookie jar, scoped to the base URL.
func (c *Client) SetSessionToken(token string) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	c.httpClient.Jar.SetCookies(base, []*http.Cookie{{
		Name:  c.cookieName,
		Value: token,
		Path:  "/",
	}})
}

// SessionToken returns the current session token, or empty when the client
// is unauthenticated.
func (c *Client) SessionToken() string {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.httpClient.Jar.Cookies(base) {
		if cookie.Name == c.cookieName {
			return cookie.Value
		}
	}
	return ""
}

// ClearSessionToken expires the session cookie in the jar. Starting a new
// login always goes through here first, so a previous session can never
// leak into the next. The jar itself stays in place because sibling service
// clients share it.
func (c *Client) ClearSessionToken() {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	c.httpClient.Jar.SetCookies(base, []*http.Cookie{{
		Name:   c.cookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	}})
}

// Register creates a new account. Email is optional.
func (c *Client) Register(ctx context.Context, login, password, email string) error {
	payload := map[string]string{"login": login, "password": password}
	if email != "" {
		payload["email"] = email
	}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", payload, http.StatusCreated, nil)
}

// Login authenticates and returns the user summary. The session cookie is
// captured by the jar from the Set-Cookie response header.
func (c *Client) Login(ctx context.Context, login, password string) (*model.UserSummary, error) {
	c.ClearSessionToken()

	payload := map[string]string{"login": login, "password": password}
	var result struct {
		User model.UserSummary `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", payload, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// Logout invalidates the session on the backend.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, http.StatusNoContent, nil)
}

// Me fetches the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, http.StatusOK, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListProjects fetches one page of the caller's projects, optionally
// filtered by a search query.
func (c *Client) ListProjects(ctx context.Context, query string, limit, offset int) (*model.ProjectsPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	if query != "" {
		params.Set("q", query)
	}

	var page model.ProjectsPage
	if err := c.doJSON(ctx, http.MethodGet, "/projects?"+params.Encode(), nil, http.StatusOK, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateProject uploads a new project with its video as multipart form
// data. The video is streamed from disk, never buffered whole.
func (c *Client) CreateProject(ctx context.Context, title, description, videoPath string, startProcessing bool) (*model.Project, error) {
	file, err := os.Open(videoPath)
	if err != nil {
		return nil, &APIError{Status: 0, Message: fmt.Sprintf("video file not found: %s", videoPath)}
	}
	defer file.Close()

	pipeReader, pipeWriter := io.Pipe()
	form := multipart.NewWriter(pipeWriter)

	go func() {
		err := writeProjectForm(form, title, description, startProcessing, filepath.Base(videoPath), file)
		if err != nil {
			pipeWriter.CloseWithError(err)
			return
		}
		pipeWriter.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/projects", pipeReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("uploading project",
		zap.String("title", title),
		zap.String("video", videoPath))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, buildResponseError(resp)
	}

	var project model.Project
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		return nil, fmt.Errorf("failed to decode created project: %w", err)
	}
	return &project, nil
}

// StartProcessing triggers a new processing run for the project.
func (c *Client) StartProcessing(ctx context.Context, projectID string) (*model.ProcessingRun, error) {
	payload := map[string]string{"launch_mode": LaunchModeImmediate}
	var run model.ProcessingRun
	path := "/projects/" + url.PathEscape(projectID) + "/processing/start"
	if err := c.doJSON(ctx, http.MethodPost, path, payload, http.StatusAccepted, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// ListProcessingRuns fetches one page of a project's run history.
func (c *Client) ListProcessingRuns(ctx context.Context, projectID string, limit, offset int) (*model.ProcessingRunsPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var page model.ProcessingRunsPage
	path := "/projects/" + url.PathEscape(projectID) + "/processing?" + params.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// doJSON performs one request with an optional JSON body, checks the
// expected status and decodes the response into out when provided.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, expected int, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return wrapTransportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != expected {
		return buildResponseError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// writeProjectForm writes the create-project multipart fields and streams
// the video part from the open file.
func writeProjectForm(form *multipart.Writer, title, description string, startProcessing bool, filename string, video io.Reader) error {
	if err := form.WriteField(fieldTitle, title); err != nil {
		return err
	}
	if err := form.WriteField(fieldDescription, description); err != nil {
		return err
	}
	if err := form.WriteField(fieldStartProcessing, strconv.FormatBool(startProcessing)); err != nil {
		return err
	}
	if err := form.WriteField(fieldLaunchMode, LaunchModeImmediate); err != nil {
		return err
	}

	part, err := form.CreateFormFile(fieldVideo, filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, video)
	return err
}
