package entity

type User struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null;uniqueIndex"`
	Password    string `gorm:"not null"` // bcrypt hash, never serialized
	PhoneNumber *string
	Address     *string
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null"`
}
