package models

// Item represents a single named file queued for upload. RelativePath is set
// only when the item was produced by directory traversal; it records the
// slash-separated path from the dropped root.
type Item struct {
	Name         string `json:"name"`
	RelativePath string `json:"relative_path,omitempty"`
	Data         []byte `json:"-"`
}

// Key identifies the item within a selection: the relative path when one
// exists, the bare name otherwise.
func (i Item) Key() string {
	if i.RelativePath != "" {
		return i.RelativePath
	}
	return i.Name
}
