package db

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
)

// MaxInValues is the largest id list Firestore accepts in a single "in" filter.
const MaxInValues = 30

// ChunkFetcher resolves one batch of at most MaxInValues ids.
type ChunkFetcher[V any] func(ctx context.Context, ids []string) (map[string]V, error)

// LookupChunked resolves ids in groups of MaxInValues and merges the results.
// Empty and duplicate ids are dropped before chunking. Any chunk failure fails
// the whole lookup.
func LookupChunked[V any](ctx context.Context, ids []string, fetch ChunkFetcher[V]) (map[string]V, error) {
	out := map[string]V{}
	for _, chunk := range Chunk(UniqueIDs(ids), MaxInValues) {
		found, err := fetch(ctx, chunk)
		if err != nil {
			return nil, err
		}
		for k, v := range found {
			out[k] = v
		}
	}
	return out, nil
}

// UniqueIDs trims ids and drops blanks and duplicates, keeping first-seen order.
func UniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Chunk splits ids into consecutive groups of at most size.
func Chunk(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	out := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}

// LookupNames resolves display names for ids in collection. The first
// non-empty string among fields wins for each document.
func (c *Client) LookupNames(ctx context.Context, collection string, ids []string, fields ...string) (map[string]string, error) {
	col := c.fs.Collection(collection)
	return LookupChunked(ctx, ids, func(ctx context.Context, chunk []string) (map[string]string, error) {
		refs := make([]*firestore.DocumentRef, 0, len(chunk))
		for _, id := range chunk {
			refs = append(refs, col.Doc(id))
		}
		snaps, err := col.Where(firestore.DocumentID, "in", refs).Documents(ctx).GetAll()
		if err != nil {
			return nil, err
		}
		names := make(map[string]string, len(snaps))
		for _, snap := range snaps {
			names[snap.Ref.ID] = pickName(snap.Data(), fields)
		}
		return names, nil
	})
}

func pickName(data map[string]any, fields []string) string {
	for _, field := range fields {
		if v, ok := data[field].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
