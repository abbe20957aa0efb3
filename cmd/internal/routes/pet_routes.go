package routes

import (
	"net/http"

	"vetclinic/cmd/internal/service"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PetService interface {
	CreatePet(req *service.CreatePetRequest) (*service.PetResponse, apierror.ErrorResponse)
	GetPet(rawID string) (*service.PetResponse, apierror.ErrorResponse)
	GetPetsByUser(rawUserID string) ([]*service.PetResponse, apierror.ErrorResponse)
	UpdatePet(rawID string, req *service.UpdatePetRequest) apierror.ErrorResponse
	DeletePet(rawID string) apierror.ErrorResponse
}

type DefaultPetRoute struct {
	PetService PetService
}

func NewPetDefault(petService PetService) *DefaultPetRoute {
	return &DefaultPetRoute{PetService: petService}
}

func (p *DefaultPetRoute) CreatePet(c echo.Context) error {
	var req service.CreatePetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	pet, apierr := p.PetService.CreatePet(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, pet)
}

func (p *DefaultPetRoute) GetPet(c echo.Context) error {
	pet, apierr := p.PetService.GetPet(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pet)
}

func (p *DefaultPetRoute) GetPetsByUser(c echo.Context) error {
	pets, apierr := p.PetService.GetPetsByUser(c.Param("userId"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pets)
}

func (p *DefaultPetRoute) UpdatePet(c echo.Context) error {
	var req service.UpdatePetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	apierr := p.PetService.UpdatePet(c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Pet updated successfully"})
}

func (p *DefaultPetRoute) DeletePet(c echo.Context) error {
	apierr := p.PetService.DeletePet(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Pet deleted successfully"})
}
