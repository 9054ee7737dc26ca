package entity

type User struct {
	Base
	Name           string `gorm:"unique"`
	Email          string `gorm:"unique"`
	HashedPassword string
	FirstName      string
	LastName       string
	ProfilePicture string
	Role           string `gorm:"default:USER"`
}

const (
	AdminRole = "ADMIN"
	UserRole  = "USER"
)
