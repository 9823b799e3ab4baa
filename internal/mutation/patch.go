// Package mutation applies allow-listed partial updates to single documents.
package mutation

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/delito/admin-api/pkg/db"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
)

// Patch collects the fields an admin asked to change. Nil inputs are skipped.
type Patch struct {
	fields map[string]any
}

// NewPatch returns an empty patch.
func NewPatch() *Patch {
	return &Patch{fields: map[string]any{}}
}

// String sets field to the trimmed value when v is non-nil.
func (p *Patch) String(field string, v *string) *Patch {
	if v != nil {
		p.fields[field] = strings.TrimSpace(*v)
	}
	return p
}

func (p *Patch) Bool(field string, v *bool) *Patch {
	if v != nil {
		p.fields[field] = *v
	}
	return p
}

func (p *Patch) Float(field string, v *float64) *Patch {
	if v != nil {
		p.fields[field] = *v
	}
	return p
}

// Set records an already validated value.
func (p *Patch) Set(field string, v any) *Patch {
	p.fields[field] = v
	return p
}

func (p *Patch) Has(field string) bool {
	_, ok := p.fields[field]
	return ok
}

func (p *Patch) Empty() bool {
	return len(p.fields) == 0
}

// Keys lists the patched fields in sorted order.
func (p *Patch) Keys() []string {
	keys := make([]string, 0, len(p.fields))
	for k := range p.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Fields returns the update with updatedAt stamped.
func (p *Patch) Fields(now time.Time) map[string]any {
	out := make(map[string]any, len(p.fields)+1)
	for k, v := range p.fields {
		out[k] = v
	}
	out["updatedAt"] = now
	return out
}

// Result confirms an applied patch.
type Result struct {
	ID            string    `json:"id"`
	UpdatedFields []string  `json:"updatedFields"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Updater writes fields to the document with id, returning db.ErrNotFound
// when it does not exist.
type Updater func(ctx context.Context, id string, fields map[string]any) error

// Target names the document kind in error messages.
type Target struct {
	Label   string
	IDField string
}

// Apply validates and writes patch to the document with id.
func Apply(ctx context.Context, target Target, id string, patch *Patch, update Updater, now time.Time) (*Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, target.IDField+" is required")
	}
	if patch == nil || patch.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no updatable fields provided")
	}

	now = now.UTC()
	if err := update(ctx, id, patch.Fields(now)); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, target.Label+" not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to update "+target.Label)
	}
	return &Result{ID: id, UpdatedFields: patch.Keys(), UpdatedAt: now}, nil
}
