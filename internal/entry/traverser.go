package entry

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"syker-uplink/pkg/models"
)

// listPageSize is the page size requested from directory listings. Platforms
// may cap a page below this, which is why pages are drained in a loop.
const listPageSize = 100

// node is one slot in the resolved tree. Each node is written by exactly one
// goroutine; ordering is carried by the tree shape, never by completion
// order.
type node struct {
	item     models.Item
	resolved bool
	children []*node
}

// Traverse resolves a batch of dropped entries into a flat list of items.
// Sibling subtrees (and sibling children within one directory) are resolved
// concurrently; the joined result preserves input order, with each subtree
// internally ordered by listing order. Leaves produced by descending into a
// directory carry their slash-separated path from the drop root in
// RelativePath. Nil entries and entries that are neither files nor
// directories are dropped silently.
//
// Any read failure aborts the whole call and discards partial results.
func Traverse(ctx context.Context, entries []Entry) ([]models.Item, error) {
	g, gctx := errgroup.WithContext(ctx)

	roots := make([]*node, len(entries))
	for i, ent := range entries {
		roots[i] = &node{}
		resolve(gctx, g, ent, roots[i], false)
	}

	if err := g.Wait(); err != nil {
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			err = &ReadError{Err: err}
		}
		return nil, err
	}

	var items []models.Item
	for _, root := range roots {
		flatten(root, &items)
	}
	return items, nil
}

// resolve schedules the work for one entry. Files become a single content
// read; directories become a goroutine that drains the child listing page by
// page and schedules each child in turn. Depth costs goroutines rather than
// stack frames, so arbitrarily deep trees are safe.
func resolve(ctx context.Context, g *errgroup.Group, ent Entry, out *node, nested bool) {
	switch v := ent.(type) {
	case FileEntry:
		g.Go(func() error {
			item, err := v.Content(ctx)
			if err != nil {
				return err
			}
			if nested {
				item.RelativePath = v.FullPath()
			}
			out.item = item
			out.resolved = true
			return nil
		})
	case DirectoryEntry:
		g.Go(func() error {
			children, err := listAll(ctx, v)
			if err != nil {
				return err
			}
			out.children = make([]*node, len(children))
			for i, child := range children {
				out.children[i] = &node{}
				resolve(ctx, g, child, out.children[i], true)
			}
			return nil
		})
	}
}

// listAll drains every page of a directory listing before the directory is
// considered read.
func listAll(ctx context.Context, dir DirectoryEntry) ([]Entry, error) {
	var all []Entry
	var token string
	for {
		children, next, err := dir.List(ctx, listPageSize, token)
		if err != nil {
			return nil, err
		}
		all = append(all, children...)
		if next == "" {
			return all, nil
		}
		token = next
	}
}

// flatten walks the resolved tree with an explicit stack, appending leaves
// in traversal order.
func flatten(root *node, items *[]models.Item) {
	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.resolved {
			*items = append(*items, n.item)
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}
