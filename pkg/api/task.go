package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
)

// TaskClient reports completed tasks to the remote task endpoint. It is the
// notification collaborator for the checklist controller: delivery (including
// retries) is its concern alone and never feeds back into checklist state.
type TaskClient struct {
	BaseURL string
	Name    string
	HTTP    *http.Client

	// Attempts bounds delivery retries; zero means the default of 3.
	Attempts uint
}

type taskRequest struct {
	Name string `json:"name"`
	Task string `json:"task"`
}

// Submit posts one completed task, retrying transient failures.
func (c *TaskClient) Submit(ctx context.Context, task string) error {
	body, err := json.Marshal(taskRequest{Name: c.Name, Task: task})
	if err != nil {
		return fmt.Errorf("api: encode task: %w", err)
	}

	attempts := c.Attempts
	if attempts == 0 {
		attempts = 3
	}

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/task", bytes.NewReader(body))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("api: build task request: %w", err))
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := c.httpClient().Do(req)
			if err != nil {
				return fmt.Errorf("api: submit task: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 500 {
				return fmt.Errorf("api: task returned status %d", resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("api: task returned status %d", resp.StatusCode))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
}

// TaskCompleted implements checklist.Notifier. Delivery runs on its own
// goroutine so a toggle never waits on the network; failures are reported to
// stderr and dropped.
func (c *TaskClient) TaskCompleted(text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := c.Submit(ctx, text); err != nil {
			fmt.Fprintf(os.Stderr, "api: task submission failed: %v\n", err)
		}
	}()
}

func (c *TaskClient) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: defaultTimeout}
}
