package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Operator roles.
const (
	RoleAdmin   = "admin"   // full access, including operator management
	RoleEditor  = "editor"  // may manage the catalog
	RoleRegular = "regular" // read-only access to the admin surface
)

// User is an operator account for the administrative surface.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
	Email    string `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Role     string `json:"role" gorm:"type:varchar(20);default:'regular'"`
	Avatar   string `json:"avatar" gorm:"type:varchar(255)"`
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
