package selection

import "strings"

// DeriveLabel computes an advisory label describing the batch, sent to the
// server so it can title the response artifact. The first item that carries
// a relative path contributes its top-level folder name; failing that, the
// first item's name is used with its extension stripped. The label never
// affects which items are uploaded.
func DeriveLabel(sel *Selection) (string, bool) {
	if sel.Len() == 0 {
		return "", false
	}

	for _, item := range sel.items {
		if item.RelativePath == "" {
			continue
		}
		segment := item.RelativePath
		if i := strings.IndexAny(segment, `/\`); i >= 0 {
			segment = segment[:i]
		}
		if segment != "" {
			return segment, true
		}
		break
	}

	name := sel.items[0].Name
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}
