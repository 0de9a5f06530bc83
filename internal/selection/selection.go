package selection

import "syker-uplink/pkg/models"

// Selection is the user's current, deduplicated set of items queued for
// upload. It preserves first-seen order: upserting an existing key replaces
// the value in place, while a genuinely new key is appended. Selections are
// not safe for concurrent mutation; callers route all merges through one
// update point.
type Selection struct {
	index map[string]int
	items []models.Item
}

// New returns an empty Selection.
func New() *Selection {
	return &Selection{index: make(map[string]int)}
}

// Merge applies incoming items to sel in input order and returns the result
// as a new Selection. sel itself is left untouched.
func Merge(sel *Selection, incoming []models.Item) *Selection {
	merged := New()
	if sel != nil {
		merged.items = append(merged.items, sel.items...)
		for key, pos := range sel.index {
			merged.index[key] = pos
		}
	}
	for _, item := range incoming {
		merged.upsert(item)
	}
	return merged
}

func (s *Selection) upsert(item models.Item) {
	key := item.Key()
	if pos, ok := s.index[key]; ok {
		s.items[pos] = item
		return
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, item)
}

// Items returns the selected items in selection order.
func (s *Selection) Items() []models.Item {
	if s == nil {
		return nil
	}
	return s.items
}

// Len reports the number of selected items.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}
