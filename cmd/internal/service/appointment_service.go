package service

import (
	"strconv"

	"vetclinic/cmd/internal/domain/entity"
	"vetclinic/cmd/internal/utils"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AppointmentRepository interface {
	FindByID(id int) (*entity.AppointmentDetail, error)
	FindByUserID(userID int) ([]*entity.AppointmentDetail, error)
	Save(appointment *entity.Appointment) error
	SaveWithPayment(appointment *entity.Appointment, payment *entity.Payment) error
	DeleteByID(id int) (bool, error)
}

type AppointmentRequest struct {
	UserID        int     `json:"user_id" validate:"required,gt=0"`
	PetID         int     `json:"pet_id" validate:"required,gt=0"`
	Date          string  `json:"date" validate:"required,calendardate"`
	Status        string  `json:"status" validate:"required"`
	PaymentMethod *string `json:"payment_method"`
}

// ScheduleAppointmentRequest books an appointment and records its payment in
// one shot.
type ScheduleAppointmentRequest struct {
	AppointmentRequest
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type AppointmentResponse struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	PetID         int     `json:"pet_id"`
	PetName       string  `json:"pet_name,omitempty"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ScheduleAppointmentResponse struct {
	Appointment *AppointmentResponse `json:"appointment"`
	Payment     *PaymentResponse     `json:"payment"`
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	PetRepo         PetRepository
	UserRepo        UserRepository
	Validate        *validator.Validate
}

func NewAppointmentService(apptRepo AppointmentRepository, petRepo PetRepository, userRepo UserRepository, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{AppointmentRepo: apptRepo, PetRepo: petRepo, UserRepo: userRepo, Validate: validate}
}

func (a *DefaultAppointmentService) CreateAppointment(req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	pet, apierr := a.checkReferences(req)
	if apierr != nil {
		return nil, apierr
	}

	appt := a.buildAppointment(req)
	if err := a.AppointmentRepo.Save(appt); err != nil {
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toAppointmentResponse(appt)
	resp.PetName = pet.Name
	return resp, nil
}

// ScheduleAppointment books the appointment and records its payment inside a
// single transaction; a failure leaves neither row behind.
func (a *DefaultAppointmentService) ScheduleAppointment(req *ScheduleAppointmentRequest) (*ScheduleAppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	pet, apierr := a.checkReferences(&req.AppointmentRequest)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	appt := a.buildAppointment(&req.AppointmentRequest)
	payment := &entity.Payment{
		UserID:    req.UserID,
		Date:      now,
		Amount:    req.Amount,
		Status:    paymentStatusCompleted,
		CreatedAt: now,
	}

	if err := a.AppointmentRepo.SaveWithPayment(appt, payment); err != nil {
		log.Errorf("failed to schedule appointment with payment: %v", err)
		return nil, apierror.InternalServerError
	}

	apptResp := toAppointmentResponse(appt)
	apptResp.PetName = pet.Name
	return &ScheduleAppointmentResponse{
		Appointment: apptResp,
		Payment:     toPaymentResponse(payment),
	}, nil
}

func (a *DefaultAppointmentService) GetAppointment(rawID string) (*AppointmentResponse, apierror.ErrorResponse) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("id", "int")
	}

	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NewNotFoundError("Appointment")
	}
	return toAppointmentDetailResponse(appt), nil
}

func (a *DefaultAppointmentService) GetAppointmentsByUser(rawUserID string) ([]*AppointmentResponse, apierror.ErrorResponse) {
	userID, err := strconv.Atoi(rawUserID)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("userId", "int")
	}

	appts, err := a.AppointmentRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to find appointments for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		resp[i] = toAppointmentDetailResponse(appt)
	}
	return resp, nil
}

func (a *DefaultAppointmentService) DeleteAppointment(rawID string) apierror.ErrorResponse {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return apierror.NewInvalidParamTypeError("id", "int")
	}

	deleted, err := a.AppointmentRepo.DeleteByID(id)
	if err != nil {
		log.Errorf("failed to delete appointment %d: %v", id, err)
		return apierror.InternalServerError
	}
	if !deleted {
		return apierror.NewNotFoundError("Appointment")
	}
	return nil
}

// checkReferences enforces that the booking points at an existing user and
// pet instead of leaving the store to accept a dangling reference.
func (a *DefaultAppointmentService) checkReferences(req *AppointmentRequest) (*entity.Pet, apierror.ErrorResponse) {
	user, err := a.UserRepo.FindByID(req.UserID)
	if err != nil {
		log.Errorf("failed to find user %d: %v", req.UserID, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.NewNotFoundError("User")
	}

	pet, err := a.PetRepo.FindByID(req.PetID)
	if err != nil {
		log.Errorf("failed to find pet %d: %v", req.PetID, err)
		return nil, apierror.InternalServerError
	}
	if pet == nil {
		return nil, apierror.NewNotFoundError("Pet")
	}
	return pet, nil
}

func (a *DefaultAppointmentService) buildAppointment(req *AppointmentRequest) *entity.Appointment {
	now := utils.NowUTC()
	return &entity.Appointment{
		UserID:        req.UserID,
		PetID:         req.PetID,
		Date:          req.Date,
		Status:        req.Status,
		PaymentMethod: utils.EmptyToNil(req.PaymentMethod),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            appt.ID,
		UserID:        appt.UserID,
		PetID:         appt.PetID,
		Date:          appt.Date,
		Status:        appt.Status,
		PaymentMethod: appt.PaymentMethod,
		CreatedAt:     utils.FormatEpoch(appt.CreatedAt),
		UpdatedAt:     utils.FormatEpoch(appt.UpdatedAt),
	}
}

func toAppointmentDetailResponse(appt *entity.AppointmentDetail) *AppointmentResponse {
	resp := toAppointmentResponse(&appt.Appointment)
	resp.PetName = appt.PetName
	return resp
}
