package entity

type Exam struct {
	ID            int    `gorm:"primaryKey"`
	PetID         int    `gorm:"not null;index"` // References: pets(id)
	ExamType      string `gorm:"not null"`
	Date          string `gorm:"not null"` // calendar date, YYYY-MM-DD
	Result        *string
	Status        string `gorm:"not null"`
	PaymentMethod *string
	CreatedAt     int64 `gorm:"not null"`
	UpdatedAt     int64 `gorm:"not null"`

	// Relations
	Pet Pet `gorm:"foreignKey:PetID;references:ID"`
}

// ExamDetail is an exam row joined with the pet's display name.
type ExamDetail struct {
	Exam
	PetName string `gorm:"column:pet_name"`
}
