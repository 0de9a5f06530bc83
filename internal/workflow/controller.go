package workflow

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"syker-uplink/internal/entry"
	"syker-uplink/internal/selection"
	"syker-uplink/internal/uplink"
	"syker-uplink/pkg/models"
)

// State is the submit workflow's current phase.
type State string

const (
	StateIdle      State = "idle"
	StateUploading State = "uploading"
	StateError     State = "error"
)

var (
	// ErrBusy rejects operations while a submission is in flight.
	ErrBusy = errors.New("a submission is already in flight")
	// ErrEmptySelection rejects submission of an empty selection.
	ErrEmptySelection = errors.New("no files selected")
)

// ZipFolderInstruction is surfaced when a dropped folder cannot be read and
// the drop carried no flat file list to fall back to.
const ZipFolderInstruction = "Could not read the dropped folder. Please zip the folder and upload the archive instead."

// DropBatch carries one drop event: the entries resolved from the payload
// plus the flat, folder-flattening file list the platform reported alongside
// them. The flat list is the coarse fallback when traversal fails.
type DropBatch struct {
	Entries []entry.Entry
	Flat    []models.Item
}

// Controller owns the selection and drives the submit workflow through
// Idle -> Uploading -> Idle (automatic reset after success) or
// Uploading -> Error -> Idle (user edit, retry, or explicit reset). Errors
// always preserve the selection so the user can retry without reselecting.
type Controller struct {
	mu      sync.Mutex
	state   State
	sel     *selection.Selection
	lastErr string

	client *uplink.Client
	log    zerolog.Logger
}

// NewController creates a controller with an empty selection.
func NewController(client *uplink.Client, log zerolog.Logger) *Controller {
	return &Controller{
		state:  StateIdle,
		sel:    selection.New(),
		client: client,
		log:    log,
	}
}

// State returns the current workflow state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selection returns the current selection.
func (c *Controller) Selection() *selection.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel
}

// LastError returns the user-facing message of the most recent failure, or
// an empty string.
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// AddItems merges picked files into the selection. Editing the selection
// from the Error state returns the workflow to Idle.
func (c *Controller) AddItems(items []models.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateUploading {
		return ErrBusy
	}
	c.sel = selection.Merge(c.sel, items)
	c.state = StateIdle
	c.lastErr = ""
	return nil
}

// Drop resolves one drop event into the selection. When traversal fails on a
// read error and the batch carries a non-empty flat list, the flat list is
// merged silently instead; with no fallback the fixed zip-the-folder
// instruction is surfaced and the workflow enters the Error state.
func (c *Controller) Drop(ctx context.Context, batch DropBatch) error {
	if c.State() == StateUploading {
		return ErrBusy
	}

	items, err := entry.Traverse(ctx, batch.Entries)
	if err != nil {
		var readErr *entry.ReadError
		if errors.As(err, &readErr) && len(batch.Flat) > 0 {
			c.log.Warn().Str("path", readErr.Path).
				Msg("folder traversal failed, falling back to flat file list")
			return c.AddItems(batch.Flat)
		}
		c.fail(ZipFolderInstruction)
		return errors.New(ZipFolderInstruction)
	}
	return c.AddItems(items)
}

// Submit ships the selection as a single batch and returns the artifact.
// Submission is permitted from Idle with a non-empty selection; a retry from
// Error re-enters through Idle. On success the workflow resets automatically
// so the next batch starts from a clean selection; on failure the selection
// is preserved.
func (c *Controller) Submit(ctx context.Context) (*uplink.Outcome, error) {
	c.mu.Lock()
	if c.state == StateUploading {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	if c.sel.Len() == 0 {
		c.mu.Unlock()
		return nil, ErrEmptySelection
	}
	items := c.sel.Items()
	label, _ := selection.DeriveLabel(c.sel)
	c.state = StateUploading
	c.lastErr = ""
	c.mu.Unlock()

	id := uuid.NewString()
	c.log.Info().Str("submission", id).Int("files", len(items)).Str("label", label).
		Msg("starting upload")

	outcome, err := c.client.Submit(ctx, items, label)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateError
		c.lastErr = messageFor(err)
		c.log.Error().Str("submission", id).Err(err).Msg("upload failed")
		return nil, err
	}

	c.state = StateIdle
	c.sel = selection.New()
	c.log.Info().Str("submission", id).Str("artifact", outcome.Filename).Msg("upload complete")
	return outcome, nil
}

// Reset clears the selection and returns the workflow to Idle.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel = selection.New()
	c.state = StateIdle
	c.lastErr = ""
}

func (c *Controller) fail(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateError
	c.lastErr = message
}

// messageFor maps transport and server failures onto the text shown to the
// user. Server responses travel verbatim; everything else keeps the error's
// own wording, which for network failures already carries the zip
// instruction.
func messageFor(err error) string {
	var srvErr *uplink.ServerError
	if errors.As(err, &srvErr) {
		return srvErr.Message
	}
	return err.Error()
}
