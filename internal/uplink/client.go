package uplink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"syker-uplink/pkg/models"
)

const (
	uploadFieldName = "files"
	labelFieldName  = "archive_label"
	processPath     = "/process"
)

// DefaultArtifactName names the download when the server does not suggest
// one via Content-Disposition.
const DefaultArtifactName = "syker-processed-data.zip"

// Outcome is the result of a successful submission: the artifact bytes and
// the name they should be saved under.
type Outcome struct {
	Filename string
	Data     []byte
}

// Client ships one deduplicated batch of items to the processing endpoint
// and turns the response into an Outcome or a structured error. One
// submission is in flight at a time; the workflow state machine enforces
// that, not the client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a client for the given base URL. An empty base URL
// issues same-origin relative requests, which is only meaningful behind a
// development proxy. Trailing slashes are stripped.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No timeout: a submission runs to completion or failure.
		httpClient: &http.Client{},
		log:        log,
	}
}

// Submit serializes the items into a single multipart request, posts it, and
// awaits the response. Each part is sent under the shared "files" field and
// carries the item's bare name: directory structure is not reconstructed on
// the wire. A non-empty label travels as one additional scalar part.
func (c *Client) Submit(ctx context.Context, items []models.Item, label string) (*Outcome, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, item := range items {
		part, err := writer.CreateFormFile(uploadFieldName, item.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to build upload body: %w", err)
		}
		if _, err := part.Write(item.Data); err != nil {
			return nil, fmt.Errorf("failed to build upload body: %w", err)
		}
	}
	if label != "" {
		if err := writer.WriteField(labelFieldName, label); err != nil {
			return nil, fmt.Errorf("failed to build upload body: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+processPath, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.log.Info().Int("files", len(items)).Str("label", label).Msg("submitting batch")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := strings.TrimSpace(string(data))
		if message == "" {
			message = fmt.Sprintf("Server rejected the upload (status %d).", resp.StatusCode)
		}
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: message}
	}

	name := artifactName(resp.Header.Get("Content-Disposition"))
	c.log.Info().Str("artifact", name).Int("bytes", len(data)).Msg("received processed artifact")

	return &Outcome{Filename: name, Data: data}, nil
}

// artifactName extracts the filename token from a Content-Disposition
// header, stripping surrounding quotes, and falls back to
// DefaultArtifactName when the header is absent or carries no usable name.
func artifactName(disposition string) string {
	if disposition == "" {
		return DefaultArtifactName
	}
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		if name := params["filename"]; name != "" {
			return name
		}
	}
	// Headers that do not parse as a media type can still carry a bare
	// filename token.
	const marker = "filename="
	if i := strings.Index(disposition, marker); i >= 0 {
		name := disposition[i+len(marker):]
		if j := strings.IndexByte(name, ';'); j >= 0 {
			name = name[:j]
		}
		if name = strings.Trim(strings.TrimSpace(name), `"`); name != "" {
			return name
		}
	}
	return DefaultArtifactName
}
