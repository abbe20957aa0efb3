package entity

type Appointment struct {
	ID            int    `gorm:"primaryKey"`
	UserID        int    `gorm:"not null;index"` // References: users(id)
	PetID         int    `gorm:"not null;index"` // References: pets(id)
	Date          string `gorm:"not null"`       // calendar date, YYYY-MM-DD
	Status        string `gorm:"not null"`
	PaymentMethod *string
	CreatedAt     int64 `gorm:"not null"`
	UpdatedAt     int64 `gorm:"not null"`

	// Relations
	Pet Pet `gorm:"foreignKey:PetID;references:ID"`
}

// AppointmentDetail is an appointment row joined with the pet's display name.
type AppointmentDetail struct {
	Appointment
	PetName string `gorm:"column:pet_name"`
}
