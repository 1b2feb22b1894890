package todoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/bnema/todo-tasks-cli/internal/ports"
)

const (
	todosPath        = "/todos"
	batchSubPath     = "/batch"
	maxResponseBytes = 1 << 20
)

// Client is the stateless gateway to the remote todo collection. Every
// call is a single attempt: no retry, no backoff, timeout left to the
// transport. The bearer token is read from the credential store at
// request-build time; a 401 clears it before the error is returned.
type Client struct {
	BaseURL     string
	APIKey      string
	HTTPClient  *http.Client
	Credentials ports.CredentialStore
	Logger      *slog.Logger
}

var _ ports.TodoGateway = (*Client)(nil)

type taskSchema struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type patchSchema struct {
	Text *string `json:"text,omitempty"`
	Done *bool   `json:"done,omitempty"`
}

type batchRequest struct {
	Todos []taskSchema `json:"todos"`
}

// dataEnvelope is the response shape of every endpoint; a missing data
// field reads as an empty result.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Configured reports whether the static service credential is set.
// Bearer-token auth works either way.
func (c *Client) Configured() bool {
	return c.APIKey != ""
}

func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	data, err := c.do(ctx, http.MethodGet, todosPath, nil)
	if err != nil {
		return nil, err
	}

	return c.decodeTasks("list todos", data)
}

func (c *Client) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	data, err := c.do(ctx, http.MethodPost, todosPath, toSchema(task))
	if err != nil {
		return domain.Task{}, err
	}

	return c.decodeTask("create todo", data, task)
}

func (c *Client) Update(ctx context.Context, id domain.TaskID, patch domain.TaskPatch) (domain.Task, error) {
	path := todosPath + "/" + url.PathEscape(string(id))
	data, err := c.do(ctx, http.MethodPut, path, patchSchema{Text: patch.Text, Done: patch.Done})
	if err != nil {
		return domain.Task{}, err
	}

	// An empty response body falls back on the patch applied locally,
	// so the caller still sees the post-update shape.
	return c.decodeTask("update todo", data, patch.Apply(domain.Task{ID: id}))
}

func (c *Client) Delete(ctx context.Context, id domain.TaskID) error {
	path := todosPath + "/" + url.PathEscape(string(id))
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) CreateBatch(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	payload := batchRequest{Todos: make([]taskSchema, 0, len(tasks))}
	for _, task := range tasks {
		payload.Todos = append(payload.Todos, toSchema(task))
	}

	data, err := c.do(ctx, http.MethodPost, todosPath+batchSubPath, payload)
	if err != nil {
		return nil, err
	}

	return c.decodeTasks("create todos", data)
}

// do runs one request and returns the raw data field of the response
// envelope.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	endpoint := strings.TrimRight(c.BaseURL, "/") + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	c.setHeaders(ctx, req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, c.transportError(fmt.Sprintf("%s %s", method, path), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		// Forced local logout: the stored token is no longer valid.
		if c.Credentials != nil {
			if clearErr := c.Credentials.ClearToken(ctx); clearErr != nil {
				c.logger().Error("clear rejected token", "error", clearErr)
			}
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrAuthentication)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.RemoteRequestError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.transportError(fmt.Sprintf("read %s %s response", method, path), err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, c.transportError(fmt.Sprintf("decode %s %s response", method, path), err)
	}

	return envelope.Data, nil
}

// setHeaders builds the header set: JSON content type always, the
// static service credential when configured, and the stored bearer
// token when present.
func (c *Client) setHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Content-Type", "application/json")

	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	if c.Credentials == nil {
		return
	}

	token, ok, err := c.Credentials.Token(ctx)
	if err != nil {
		c.logger().Warn("read stored token, sending request without it", "error", err)
		return
	}
	if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) decodeTasks(op string, data json.RawMessage) ([]domain.Task, error) {
	if len(data) == 0 || string(data) == "null" {
		return []domain.Task{}, nil
	}

	var entries []taskSchema
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, c.transportError("decode "+op+" payload", err)
	}

	tasks := make([]domain.Task, 0, len(entries))
	for _, entry := range entries {
		tasks = append(tasks, fromSchema(entry))
	}

	return tasks, nil
}

func (c *Client) decodeTask(op string, data json.RawMessage, fallback domain.Task) (domain.Task, error) {
	task := fallback
	if len(data) != 0 && string(data) != "null" {
		var entry taskSchema
		if err := json.Unmarshal(data, &entry); err != nil {
			return domain.Task{}, c.transportError("decode "+op+" payload", err)
		}
		task = fromSchema(entry)
	}

	// Never hand an id-less or blank task back to the caller, whether
	// it came from the payload or the fallback.
	if !task.Valid() {
		return domain.Task{}, c.transportError("decode "+op+" payload",
			fmt.Errorf("response did not yield a usable task for id %q", task.ID))
	}

	return task, nil
}

func (c *Client) transportError(op string, err error) error {
	terr := &domain.TransportError{Op: op, Err: err}
	c.logger().Error("todo api request failed", "op", op, "error", err)
	return terr
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func toSchema(task domain.Task) taskSchema {
	return taskSchema{ID: string(task.ID), Text: task.Text, Done: task.Done}
}

func fromSchema(entry taskSchema) domain.Task {
	return domain.Task{ID: domain.TaskID(entry.ID), Text: entry.Text, Done: entry.Done}
}
