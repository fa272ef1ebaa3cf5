package models

import (
	"gorm.io/gorm"
)

// DB is the global database handle shared by the package-level controllers.
var DB *gorm.DB

// SetDB installs the global database connection.
func SetDB(db *gorm.DB) {
	DB = db
}
