package usecase

import (
	"fmt"
	"testing"

	"github.com/brandlab/positioning-api/internal/model"
	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.Profile{},
		&model.Interview{},
		&model.InterviewMessage{},
		&model.BatchJob{},
		&model.BatchItem{},
	)
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}
