package repository

import (
	"errors"

	"vetclinic/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultExamRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) *DefaultExamRepository {
	return &DefaultExamRepository{db: db}
}

func (e *DefaultExamRepository) FindByID(id int) (*entity.ExamDetail, error) {
	var exam entity.ExamDetail
	err := e.db.Model(&entity.Exam{}).
		Select("exams.*, pets.name AS pet_name").
		Joins("LEFT JOIN pets ON pets.id = exams.pet_id").
		Where("exams.id = ?", id).
		First(&exam).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &exam, err
}

func (e *DefaultExamRepository) FindByUserID(userID int) ([]*entity.ExamDetail, error) {
	var exams []*entity.ExamDetail
	err := e.db.Model(&entity.Exam{}).
		Select("exams.*, pets.name AS pet_name").
		Joins("LEFT JOIN pets ON pets.id = exams.pet_id").
		Where("exams.pet_id IN (?)",
			e.db.Model(&entity.Pet{}).Select("id").Where("user_id = ?", userID)).
		Find(&exams).Error

	if err != nil {
		return nil, err
	}
	return exams, nil
}

func (e *DefaultExamRepository) Save(exam *entity.Exam) error {
	return e.db.Save(exam).Error
}

// SaveWithPayment inserts the exam and its payment inside one transaction.
func (e *DefaultExamRepository) SaveWithPayment(exam *entity.Exam, payment *entity.Payment) error {
	return e.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(exam).Error; err != nil {
			return err
		}
		return tx.Save(payment).Error
	})
}

func (e *DefaultExamRepository) DeleteByID(id int) (bool, error) {
	res := e.db.Delete(&entity.Exam{}, id)
	return res.RowsAffected > 0, res.Error
}
