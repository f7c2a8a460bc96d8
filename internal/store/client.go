package store

import (
	"context"
	"errors"
)

// Collection names in the backend
const (
	Tasks      = "tasks"
	Categories = "categories"
	Branding   = "branding"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("row not found")

// Client is the row-level contract against the backend that holds all
// persistent data. The state manager and the admin commands are its only
// consumers; neither ever sees wire details.
//
// List/Get decode rows into out (a pointer to slice or struct). Insert
// echoes the stored row, including the server-assigned id, into out.
type Client interface {
	ListRows(ctx context.Context, collection string, out any) error
	InsertRow(ctx context.Context, collection string, record any, out any) error
	UpdateRow(ctx context.Context, collection, id string, patch map[string]any) error
	UpsertRow(ctx context.Context, collection string, record any) error
	DeleteRow(ctx context.Context, collection, id string) error
	GetSingleton(ctx context.Context, collection, id string, out any) error
	UploadFile(ctx context.Context, bucket, filename string, data []byte, contentType string) (string, error)
}
