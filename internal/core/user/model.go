package user

import (
	"gorm.io/gorm"
)

// User is a registered account. Password stores the bcrypt hash.
type User struct {
	gorm.Model
	Name     string
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}

// Public is the safe-to-return view of a user.
type Public struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToPublic strips credentials from the record.
func (u *User) ToPublic() Public {
	return Public{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
