package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

func (User) TableName() string {
	return "users"
}
