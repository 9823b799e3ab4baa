package db

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Document is implemented by models that carry their Firestore document id.
type Document[T any] interface {
	*T
	SetID(id string)
}

// Decode converts a snapshot into a model and stamps the document id.
func Decode[T any, PT Document[T]](snap *firestore.DocumentSnapshot) (T, error) {
	var out T
	if err := snap.DataTo(&out); err != nil {
		return out, fmt.Errorf("decoding %s: %w", snap.Ref.Path, err)
	}
	PT(&out).SetID(snap.Ref.ID)
	return out, nil
}

// DecodeAll drains a query and decodes every document into T.
func DecodeAll[T any, PT Document[T]](ctx context.Context, q firestore.Query) ([]T, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	out := []T{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		item, err := Decode[T, PT](snap)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Get loads one document by id. Missing documents return ErrNotFound.
func Get[T any, PT Document[T]](ctx context.Context, col *firestore.CollectionRef, id string) (T, error) {
	var zero T
	snap, err := col.Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return Decode[T, PT](snap)
}

// Exists reports whether a document with id exists in col.
func Exists(ctx context.Context, col *firestore.CollectionRef, id string) (bool, error) {
	_, err := col.Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Updates converts a field map into Firestore updates with a stable order.
func Updates(fields map[string]any) []firestore.Update {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]firestore.Update, 0, len(keys))
	for _, k := range keys {
		out = append(out, firestore.Update{Path: k, Value: fields[k]})
	}
	return out
}

// UpdateFields applies a partial update to an existing document. A missing
// document returns ErrNotFound.
func UpdateFields(ctx context.Context, col *firestore.CollectionRef, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if _, err := col.Doc(id).Update(ctx, Updates(fields)); err != nil {
		if IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
