package database

import (
	"cafeapi/config"
	"cafeapi/model"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(config.Database{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "cafes.db")})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpenCreatesCafeTable(t *testing.T) {
	db := openTestDB(t)

	if !db.Migrator().HasTable("cafe") {
		t.Fatalf("expected cafe table to exist")
	}
	for _, column := range []string{"id", "name", "map_url", "img_url", "location", "seats", "has_toilet", "has_wifi", "has_sockets", "can_take_calls", "coffee_price"} {
		if !db.Migrator().HasColumn(&model.Cafe{}, column) {
			t.Errorf("expected column %s", column)
		}
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open(config.Database{Driver: "oracle", DSN: "x"}); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestDuplicateNameIsTranslated(t *testing.T) {
	db := openTestDB(t)

	first := model.Cafe{Name: "Twin", MapURL: "m", ImgURL: "i", Location: "Soho", Seats: "0-10"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.ID == 0 {
		t.Errorf("expected id to be assigned")
	}

	second := model.Cafe{Name: "Twin", MapURL: "m2", ImgURL: "i2", Location: "Hackney", Seats: "0-10"}
	err := db.Create(&second).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestFileBackedStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cafes.db")
	cfg := config.Database{Driver: "sqlite", DSN: path}

	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Create(&model.Cafe{Name: "Kept", MapURL: "m", ImgURL: "i", Location: "Soho", Seats: "1"}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := Close(db); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer Close(reopened)

	var cafe model.Cafe
	if err := reopened.Where("name = ?", "Kept").First(&cafe).Error; err != nil {
		t.Fatalf("expected row to survive reopen: %v", err)
	}
	if cafe.CoffeePrice != nil {
		t.Errorf("expected NULL coffee price, got %v", *cafe.CoffeePrice)
	}
}
