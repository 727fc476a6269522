package snippet

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:snippet_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Snippet{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(NewRepository(db))
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := setupTestService(t)

	sn, err := svc.Create(context.Background(), CreateInput{
		Title:       "Debounce helper",
		Description: "Debounce for event handlers",
		Code:        "export const debounce = (fn, ms) => {}",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sn.Language != DefaultLanguage {
		t.Fatalf("expected default language %q, got %q", DefaultLanguage, sn.Language)
	}
	if sn.Tags == nil || len(sn.Tags) != 0 {
		t.Fatalf("expected empty tags, got %#v", sn.Tags)
	}
}

func TestCreateRejectsBlankRequiredFields(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		Title:       "x",
		Description: "   ",
		Code:        "y",
	})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestUpdateKeepsOptionalFieldsWhenOmitted(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	sn, _ := svc.Create(ctx, CreateInput{
		Title:       "Retry",
		Description: "Retry with backoff",
		Code:        "func Retry() {}",
		Language:    "go",
		Tags:        []string{"retry", "backoff"},
	})

	updated, err := svc.Update(ctx, sn.ID, UpdateInput{
		Title:       "Retry v2",
		Description: "Retry with jitter",
		Code:        "func Retry2() {}",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Language != "go" {
		t.Fatalf("expected language preserved, got %q", updated.Language)
	}
	if len(updated.Tags) != 2 {
		t.Fatalf("expected tags preserved, got %#v", updated.Tags)
	}
	if updated.Title != "Retry v2" {
		t.Fatalf("expected title replaced, got %q", updated.Title)
	}
}

func TestUpdateReplacesOptionalFieldsWhenSet(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	sn, _ := svc.Create(ctx, CreateInput{
		Title:       "Retry",
		Description: "Retry with backoff",
		Code:        "func Retry() {}",
		Tags:        []string{"retry"},
	})

	lang := "typescript"
	tags := []string{}
	updated, err := svc.Update(ctx, sn.ID, UpdateInput{
		Title:       "Retry",
		Description: "Retry with backoff",
		Code:        "func Retry() {}",
		Language:    &lang,
		Tags:        &tags,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Language != "typescript" {
		t.Fatalf("expected language replaced, got %q", updated.Language)
	}
	if len(updated.Tags) != 0 {
		t.Fatalf("expected tags cleared, got %#v", updated.Tags)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Update(context.Background(), "no-such-id", UpdateInput{
		Title:       "a",
		Description: "b",
		Code:        "c",
	})
	if !errors.Is(err, ErrSnippetNotFound) {
		t.Fatalf("expected ErrSnippetNotFound, got %v", err)
	}
}

func TestListHonorsLimitAndOrder(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, CreateInput{
			Title:       fmt.Sprintf("snippet %d", i),
			Description: "d",
			Code:        "c",
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	all, err := svc.List(ctx, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 snippets, got %d", len(all))
	}

	limited, err := svc.List(ctx, 2)
	if err != nil {
		t.Fatalf("List with limit returned error: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 snippets with limit, got %d", len(limited))
	}
}

func TestDeleteThenListAndSecondDelete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	sn, _ := svc.Create(ctx, CreateInput{
		Title:       "Once",
		Description: "d",
		Code:        "c",
	})

	if err := svc.Delete(ctx, sn.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	all, _ := svc.List(ctx, 0)
	if len(all) != 0 {
		t.Fatalf("expected empty list, got %d", len(all))
	}

	if err := svc.Delete(ctx, sn.ID); !errors.Is(err, ErrSnippetNotFound) {
		t.Fatalf("expected ErrSnippetNotFound on second delete, got %v", err)
	}
}
