package database

import (
	"testing"

	"beforeafter/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Option{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	prev := DB
	DB = db
	t.Cleanup(func() { DB = prev })
}

func TestGetOption_Missing(t *testing.T) {
	setupTestDB(t)

	_, ok, err := GetOption("columns")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for missing key")
	}
}

func TestSetAndGetOption(t *testing.T) {
	setupTestDB(t)

	if err := SetOption("columns", "3"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := GetOption("columns")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != "3" {
		t.Fatalf("expected (3, true), got (%q, %v)", value, ok)
	}

	// Overwrite
	if err := SetOption("columns", "2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = GetOption("columns")
	if value != "2" {
		t.Fatalf("expected overwritten value 2, got %q", value)
	}
}

func TestSetOption_EmptyKey(t *testing.T) {
	setupTestDB(t)

	if err := SetOption("  ", "x"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestDeleteOption(t *testing.T) {
	setupTestDB(t)

	if err := SetOption("lazy_load", "yes"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := DeleteOption("lazy_load"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := GetOption("lazy_load"); ok {
		t.Fatalf("expected key to be gone")
	}
}

func TestAllAndResetOptions(t *testing.T) {
	setupTestDB(t)

	_ = SetOption("columns", "3")
	_ = SetOption("show_title", "no")

	all, err := AllOptions()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 || all["columns"] != "3" || all["show_title"] != "no" {
		t.Fatalf("unexpected options map: %v", all)
	}

	total, err := CountOptions()
	if err != nil || total != 2 {
		t.Fatalf("expected count 2, got %d (err=%v)", total, err)
	}

	if err := ResetOptions(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	total, _ = CountOptions()
	if total != 0 {
		t.Fatalf("expected empty option store after reset, got %d", total)
	}
}
