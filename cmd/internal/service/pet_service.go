package service

import (
	"strconv"

	"vetclinic/cmd/internal/domain/entity"
	"vetclinic/cmd/internal/utils"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PetRepository interface {
	FindByID(id int) (*entity.Pet, error)
	FindByUserID(userID int) ([]*entity.Pet, error)
	Save(pet *entity.Pet) error
	DeleteByID(id int) (bool, error)
}

type CreatePetRequest struct {
	UserID  int      `json:"user_id" validate:"required,gt=0"`
	Name    string   `json:"name" validate:"required,max=60"`
	Species string   `json:"species" validate:"required,max=60"`
	Breed   string   `json:"breed" validate:"required,max=60"`
	Age     *int     `json:"age" validate:"omitempty,min=0"`
	Weight  *float64 `json:"weight" validate:"omitempty,min=0"`
}

type UpdatePetRequest struct {
	UserID  *int     `json:"user_id" validate:"omitempty,gt=0"`
	Name    *string  `json:"name" validate:"omitempty,min=1,max=60"`
	Species *string  `json:"species" validate:"omitempty,min=1,max=60"`
	Breed   *string  `json:"breed" validate:"omitempty,min=1,max=60"`
	Age     *int     `json:"age" validate:"omitempty,min=0"`
	Weight  *float64 `json:"weight" validate:"omitempty,min=0"`
}

type PetResponse struct {
	ID        int      `json:"id"`
	UserID    int      `json:"user_id"`
	Name      string   `json:"name"`
	Species   string   `json:"species"`
	Breed     string   `json:"breed"`
	Age       *int     `json:"age,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type DefaultPetService struct {
	PetRepo  PetRepository
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewPetService(petRepo PetRepository, userRepo UserRepository, validate *validator.Validate) *DefaultPetService {
	return &DefaultPetService{PetRepo: petRepo, UserRepo: userRepo, Validate: validate}
}

func (p *DefaultPetService) CreatePet(req *CreatePetRequest) (*PetResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	owner, err := p.UserRepo.FindByID(req.UserID)
	if err != nil {
		log.Errorf("failed to find owner %d: %v", req.UserID, err)
		return nil, apierror.InternalServerError
	}
	if owner == nil {
		return nil, apierror.NewNotFoundError("User")
	}

	now := utils.NowUTC()
	pet := &entity.Pet{
		UserID:    req.UserID,
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Age:       req.Age,
		Weight:    req.Weight,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.PetRepo.Save(pet); err != nil {
		log.Errorf("failed to create pet: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPetResponse(pet), nil
}

func (p *DefaultPetService) GetPet(rawID string) (*PetResponse, apierror.ErrorResponse) {
	pet, apierr := p.fetchByID(rawID)
	if apierr != nil {
		return nil, apierr
	}
	if pet == nil {
		return nil, apierror.NewNotFoundError("Pet")
	}
	return toPetResponse(pet), nil
}

func (p *DefaultPetService) GetPetsByUser(rawUserID string) ([]*PetResponse, apierror.ErrorResponse) {
	userID, err := strconv.Atoi(rawUserID)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("userId", "int")
	}

	pets, err := p.PetRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to find pets for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*PetResponse, len(pets))
	for i, pet := range pets {
		resp[i] = toPetResponse(pet)
	}
	return resp, nil
}

func (p *DefaultPetService) UpdatePet(rawID string, req *UpdatePetRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	pet, apierr := p.fetchByID(rawID)
	if apierr != nil {
		return apierr
	}
	if pet == nil {
		return apierror.NewNotFoundError("Pet")
	}

	if req.UserID != nil && *req.UserID != pet.UserID {
		owner, err := p.UserRepo.FindByID(*req.UserID)
		if err != nil {
			log.Errorf("failed to find owner %d: %v", *req.UserID, err)
			return apierror.InternalServerError
		}
		if owner == nil {
			return apierror.NewNotFoundError("User")
		}
		pet.UserID = *req.UserID
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = *req.Species
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = req.Age
	}
	if req.Weight != nil {
		pet.Weight = req.Weight
	}
	pet.UpdatedAt = utils.NowUTC()

	if err := p.PetRepo.Save(pet); err != nil {
		log.Errorf("failed to update pet %d: %v", pet.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (p *DefaultPetService) DeletePet(rawID string) apierror.ErrorResponse {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return apierror.NewInvalidParamTypeError("id", "int")
	}

	deleted, err := p.PetRepo.DeleteByID(id)
	if err != nil {
		log.Errorf("failed to delete pet %d: %v", id, err)
		return apierror.InternalServerError
	}
	if !deleted {
		return apierror.NewNotFoundError("Pet")
	}
	return nil
}

func (p *DefaultPetService) fetchByID(rawID string) (*entity.Pet, apierror.ErrorResponse) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("id", "int")
	}

	pet, err := p.PetRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to find pet (%s) by id: %v", rawID, err)
		return nil, apierror.InternalServerError
	}
	return pet, nil
}

func toPetResponse(pet *entity.Pet) *PetResponse {
	return &PetResponse{
		ID:        pet.ID,
		UserID:    pet.UserID,
		Name:      pet.Name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		Age:       pet.Age,
		Weight:    pet.Weight,
		CreatedAt: utils.FormatEpoch(pet.CreatedAt),
		UpdatedAt: utils.FormatEpoch(pet.UpdatedAt),
	}
}
