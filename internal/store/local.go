package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/listo/internal/models"
)

// Local is a Client backed by an embedded sqlite database. It stands in
// for the hosted backend when running without an account, and in tests.
// Uploads land in a plain directory and are addressed with file:// URLs.
type Local struct {
	db      *gorm.DB
	uploads string
}

// OpenLocal opens (and migrates) the sqlite database at dbPath
func OpenLocal(dbPath, uploadsDir string) (*Local, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Task{}, &models.Category{}, &models.Branding{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Local{db: db, uploads: uploadsDir}, nil
}

// Close closes the underlying database connection
func (l *Local) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (l *Local) ListRows(ctx context.Context, collection string, out any) error {
	if _, err := tableModel(collection); err != nil {
		return err
	}
	return l.db.WithContext(ctx).Find(out).Error
}

func (l *Local) InsertRow(ctx context.Context, collection string, record any, out any) error {
	return l.create(ctx, collection, record, out, false)
}

func (l *Local) UpsertRow(ctx context.Context, collection string, record any) error {
	return l.create(ctx, collection, record, nil, true)
}

func (l *Local) UpdateRow(ctx context.Context, collection, id string, patch map[string]any) error {
	model, err := tableModel(collection)
	if err != nil {
		return err
	}
	return l.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(patch).Error
}

func (l *Local) DeleteRow(ctx context.Context, collection, id string) error {
	model, err := tableModel(collection)
	if err != nil {
		return err
	}
	return l.db.WithContext(ctx).Where("id = ?", id).Delete(model).Error
}

func (l *Local) GetSingleton(ctx context.Context, collection, id string, out any) error {
	if _, err := tableModel(collection); err != nil {
		return err
	}
	err := l.db.WithContext(ctx).First(out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// UploadFile writes data into the uploads directory, ignoring bucket
// nesting beyond a subdirectory, and returns a file:// URL
func (l *Local) UploadFile(ctx context.Context, bucket, filename string, data []byte, contentType string) (string, error) {
	dir := filepath.Join(l.uploads, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + abs, nil
}

// create inserts record, assigning an id when the caller left it empty.
// Server-assigned ids mirror what the hosted backend does on insert.
func (l *Local) create(ctx context.Context, collection string, record any, out any, upsert bool) error {
	db := l.db.WithContext(ctx)
	if upsert {
		db = db.Clauses(clause.OnConflict{UpdateAll: true})
	}

	switch rec := record.(type) {
	case models.Task:
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
		if dst, ok := out.(*models.Task); ok {
			*dst = rec
		}
	case models.Category:
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
		if dst, ok := out.(*models.Category); ok {
			*dst = rec
		}
	case models.Branding:
		if rec.ID == "" {
			rec.ID = models.BrandingID
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
		if dst, ok := out.(*models.Branding); ok {
			*dst = rec
		}
	default:
		return fmt.Errorf("unsupported record type %T for %s", record, collection)
	}
	return nil
}

func tableModel(collection string) (any, error) {
	switch collection {
	case Tasks:
		return &models.Task{}, nil
	case Categories:
		return &models.Category{}, nil
	case Branding:
		return &models.Branding{}, nil
	default:
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
}
