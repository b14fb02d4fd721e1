package database

import (
	"context"
	"log"
	"testing"

	// Load env
	_ "github.com/joho/godotenv/autoload"
)

func TestMain(m *testing.M) {
	td, _, err := GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if td != nil && td(context.Background()) != nil {
		log.Fatalf("could not teardown postgres container: %v", err)
	}
}

func TestHealth(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}
	stats := db.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestSeededRecords(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}

	if TestTextShare.ShortKey != "seedTx" || TestTextShare.IsFile {
		t.Fatalf("unexpected seeded text record: %+v", TestTextShare)
	}
	if TestFileShare.ShortKey != "seedFl" || !TestFileShare.IsFile {
		t.Fatalf("unexpected seeded file record: %+v", TestFileShare)
	}

	var count int64
	if err := db.Table("shared_contents").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %s", err)
	}
	if count < 2 {
		t.Fatalf("expected at least 2 seeded records, got %d", count)
	}
}
