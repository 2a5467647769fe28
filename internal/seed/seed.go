// Package seed populates the store once at startup from a remote JSON
// endpoint. A failed fetch is logged and otherwise ignored: the list starts
// empty and stays fully usable for manual additions.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"ticklist/internal/task"
)

// Record is the subset shape the seed endpoint returns. Extra fields in the
// payload are tolerated and dropped.
type Record struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

const maxBody = 1 << 20

// The payload must be an array of task-shaped objects before we accept it
// wholesale into the store.
const schemaRaw = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title"],
		"properties": {
			"id": {"type": "integer", "minimum": 1},
			"title": {"type": "string", "minLength": 1},
			"completed": {"type": "boolean"}
		}
	}
}`

var payloadSchema = jsonschema.MustCompileString("seed.json", schemaRaw)

type Fetcher struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
	Logger  *log.Logger
}

func NewFetcher(url string, timeout time.Duration, logger *log.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Fetcher{
		URL:     url,
		Timeout: timeout,
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

// Fetch issues the one GET and returns the validated task records.
func (f *Fetcher) Fetch(ctx context.Context) ([]task.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seed request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed request: unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read seed body: %w", err)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse seed body: %w", err)
	}
	if err := payloadSchema.Validate(payload); err != nil {
		return nil, fmt.Errorf("validate seed body: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode seed records: %w", err)
	}

	seen := make(map[int64]bool, len(records))
	now := time.Now().Format(task.TimeLayout)
	out := make([]task.Task, 0, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return nil, fmt.Errorf("validate seed body: duplicate id %d", r.ID)
		}
		seen[r.ID] = true
		t := task.Task{
			ID:        r.ID,
			Title:     r.Title,
			Completed: r.Completed,
		}
		if t.Completed {
			// Completion time must exist whenever completed is set; the
			// seed shape carries none, so stamp the load time.
			t.CompletedTime = now
		}
		out = append(out, t)
	}
	return out, nil
}

// Load runs the fetch and replaces the store on success. Network, parse, and
// schema failures end here: logged, store untouched.
func (f *Fetcher) Load(ctx context.Context, store *task.Store) {
	tasks, err := f.Fetch(ctx)
	if err != nil {
		f.Logger.Printf("seed load failed, starting empty: %v", err)
		return
	}
	store.ReplaceAll(tasks)
	f.Logger.Printf("seed loaded %d tasks from %s", len(tasks), f.URL)
}
