package repository

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"cloudreel/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Video{}); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return db
}

func newVideo(userID, title string, createdAt time.Time) *model.Video {
	return &model.Video{
		UserID:         userID,
		Title:          title,
		PublicID:       "video-uploads/" + title,
		OriginalSize:   "10485760",
		CompressedSize: "5242880",
		Duration:       30,
		CreatedAt:      createdAt,
	}
}

func TestCreate_GeneratesID(t *testing.T) {
	repo := NewVideoRepository(testDB(t))

	video := newVideo("u1", "demo", time.Now())
	if err := repo.Create(video); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if video.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestListByUser_NewestFirst(t *testing.T) {
	repo := NewVideoRepository(testDB(t))

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"first", "second", "third"} {
		v := newVideo("u1", title, base.Add(time.Duration(i)*time.Minute))
		if err := repo.Create(v); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}

	videos, err := repo.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("got %d videos, want 3", len(videos))
	}

	for i := 1; i < len(videos); i++ {
		if videos[i-1].CreatedAt.Before(videos[i].CreatedAt) {
			t.Fatalf("listing not in createdAt descending order: %v before %v",
				videos[i-1].CreatedAt, videos[i].CreatedAt)
		}
	}
	if videos[0].Title != "third" {
		t.Errorf("newest record first, got %s", videos[0].Title)
	}
}

func TestListByUser_OwnershipIsolation(t *testing.T) {
	repo := NewVideoRepository(testDB(t))

	if err := repo.Create(newVideo("u1", "mine", time.Now())); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(newVideo("u2", "theirs", time.Now())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	videos, err := repo.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	for _, v := range videos {
		if v.UserID != "u1" {
			t.Fatalf("record %s owned by %s leaked into u1's listing", v.ID, v.UserID)
		}
	}
	if len(videos) != 1 {
		t.Fatalf("got %d videos, want 1", len(videos))
	}
}

func TestListByUser_EmptyIsNotNil(t *testing.T) {
	repo := NewVideoRepository(testDB(t))

	videos, err := repo.ListByUser("nobody")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if videos == nil {
		t.Fatal("empty listing must serialize as [], not null")
	}
}

func TestGetByIDAndUser(t *testing.T) {
	repo := NewVideoRepository(testDB(t))

	video := newVideo("u1", "demo", time.Now())
	if err := repo.Create(video); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByIDAndUser(video.ID, "u1")
	if err != nil {
		t.Fatalf("GetByIDAndUser: %v", err)
	}
	if got.PublicID != video.PublicID {
		t.Errorf("public_id = %s", got.PublicID)
	}

	// 他人的记录不可见
	if _, err := repo.GetByIDAndUser(video.ID, "u2"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign owner, got %v", err)
	}
}
