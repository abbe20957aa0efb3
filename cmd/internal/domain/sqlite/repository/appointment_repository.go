package repository

import (
	"errors"

	"vetclinic/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) FindByID(id int) (*entity.AppointmentDetail, error) {
	var appt entity.AppointmentDetail
	err := a.db.Model(&entity.Appointment{}).
		Select("appointments.*, pets.name AS pet_name").
		Joins("LEFT JOIN pets ON pets.id = appointments.pet_id").
		Where("appointments.id = ?", id).
		First(&appt).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appt, err
}

// FindByUserID returns the appointments of every pet owned by the given user,
// each joined with its pet's name.
func (a *DefaultAppointmentRepository) FindByUserID(userID int) ([]*entity.AppointmentDetail, error) {
	var appts []*entity.AppointmentDetail
	err := a.db.Model(&entity.Appointment{}).
		Select("appointments.*, pets.name AS pet_name").
		Joins("LEFT JOIN pets ON pets.id = appointments.pet_id").
		Where("appointments.pet_id IN (?)",
			a.db.Model(&entity.Pet{}).Select("id").Where("user_id = ?", userID)).
		Find(&appts).Error

	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (a *DefaultAppointmentRepository) Save(appointment *entity.Appointment) error {
	return a.db.Save(appointment).Error
}

// SaveWithPayment inserts the appointment and its payment inside one
// transaction. Either both rows exist afterwards or neither does.
func (a *DefaultAppointmentRepository) SaveWithPayment(appointment *entity.Appointment, payment *entity.Payment) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(appointment).Error; err != nil {
			return err
		}
		return tx.Save(payment).Error
	})
}

func (a *DefaultAppointmentRepository) DeleteByID(id int) (bool, error) {
	res := a.db.Delete(&entity.Appointment{}, id)
	return res.RowsAffected > 0, res.Error
}
