package db

import (
	types "github.com/yungbote/discussions-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Discussion{},
		&types.Comment{},
		&types.CourseDiscussion{},
		&types.CourseComment{},
	)
}
