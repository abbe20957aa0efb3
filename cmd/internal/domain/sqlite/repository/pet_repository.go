package repository

import (
	"errors"

	"vetclinic/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *DefaultPetRepository {
	return &DefaultPetRepository{db: db}
}

func (p *DefaultPetRepository) FindByID(id int) (*entity.Pet, error) {
	var pet entity.Pet
	err := p.db.First(&pet, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pet, err
}

func (p *DefaultPetRepository) FindByUserID(userID int) ([]*entity.Pet, error) {
	var pets []*entity.Pet
	err := p.db.Where("user_id = ?", userID).Find(&pets).Error
	return pets, err
}

func (p *DefaultPetRepository) Save(pet *entity.Pet) error {
	return p.db.Save(pet).Error
}

func (p *DefaultPetRepository) DeleteByID(id int) (bool, error) {
	res := p.db.Delete(&entity.Pet{}, id)
	return res.RowsAffected > 0, res.Error
}
