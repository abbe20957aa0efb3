package service

import (
	"strconv"

	"vetclinic/cmd/internal/domain/entity"
	"vetclinic/cmd/internal/utils"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ExamRepository interface {
	FindByID(id int) (*entity.ExamDetail, error)
	FindByUserID(userID int) ([]*entity.ExamDetail, error)
	Save(exam *entity.Exam) error
	SaveWithPayment(exam *entity.Exam, payment *entity.Payment) error
	DeleteByID(id int) (bool, error)
}

type ExamRequest struct {
	PetID         int     `json:"pet_id" validate:"required,gt=0"`
	ExamType      string  `json:"exam_type" validate:"required"`
	Date          string  `json:"date" validate:"required,calendardate"`
	Result        *string `json:"result"`
	Status        string  `json:"status" validate:"required"`
	PaymentMethod *string `json:"payment_method"`
}

// ScheduleExamRequest books an exam and records its payment in one shot. The
// payment is charged to the pet's owner.
type ScheduleExamRequest struct {
	ExamRequest
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type ExamResponse struct {
	ID            int     `json:"id"`
	PetID         int     `json:"pet_id"`
	PetName       string  `json:"pet_name,omitempty"`
	ExamType      string  `json:"exam_type"`
	Date          string  `json:"date"`
	Result        *string `json:"result,omitempty"`
	Status        string  `json:"status"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ScheduleExamResponse struct {
	Exam    *ExamResponse    `json:"exam"`
	Payment *PaymentResponse `json:"payment"`
}

type DefaultExamService struct {
	ExamRepo ExamRepository
	PetRepo  PetRepository
	Validate *validator.Validate
}

func NewExamService(examRepo ExamRepository, petRepo PetRepository, validate *validator.Validate) *DefaultExamService {
	return &DefaultExamService{ExamRepo: examRepo, PetRepo: petRepo, Validate: validate}
}

func (e *DefaultExamService) CreateExam(req *ExamRequest) (*ExamResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := e.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	pet, apierr := e.fetchPet(req.PetID)
	if apierr != nil {
		return nil, apierr
	}

	exam := buildExam(req)
	if err := e.ExamRepo.Save(exam); err != nil {
		log.Errorf("failed to save exam: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toExamResponse(exam)
	resp.PetName = pet.Name
	return resp, nil
}

// ScheduleExam books the exam and records its payment inside a single
// transaction; a failure leaves neither row behind.
func (e *DefaultExamService) ScheduleExam(req *ScheduleExamRequest) (*ScheduleExamResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := e.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	pet, apierr := e.fetchPet(req.PetID)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	exam := buildExam(&req.ExamRequest)
	payment := &entity.Payment{
		UserID:    pet.UserID,
		Date:      now,
		Amount:    req.Amount,
		Status:    paymentStatusCompleted,
		CreatedAt: now,
	}

	if err := e.ExamRepo.SaveWithPayment(exam, payment); err != nil {
		log.Errorf("failed to schedule exam with payment: %v", err)
		return nil, apierror.InternalServerError
	}

	examResp := toExamResponse(exam)
	examResp.PetName = pet.Name
	return &ScheduleExamResponse{
		Exam:    examResp,
		Payment: toPaymentResponse(payment),
	}, nil
}

func (e *DefaultExamService) GetExam(rawID string) (*ExamResponse, apierror.ErrorResponse) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("id", "int")
	}

	exam, err := e.ExamRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch exam by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if exam == nil {
		return nil, apierror.NewNotFoundError("Exam")
	}
	return toExamDetailResponse(exam), nil
}

func (e *DefaultExamService) GetExamsByUser(rawUserID string) ([]*ExamResponse, apierror.ErrorResponse) {
	userID, err := strconv.Atoi(rawUserID)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("userId", "int")
	}

	exams, err := e.ExamRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to find exams for user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*ExamResponse, len(exams))
	for i, exam := range exams {
		resp[i] = toExamDetailResponse(exam)
	}
	return resp, nil
}

func (e *DefaultExamService) DeleteExam(rawID string) apierror.ErrorResponse {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return apierror.NewInvalidParamTypeError("id", "int")
	}

	deleted, err := e.ExamRepo.DeleteByID(id)
	if err != nil {
		log.Errorf("failed to delete exam %d: %v", id, err)
		return apierror.InternalServerError
	}
	if !deleted {
		return apierror.NewNotFoundError("Exam")
	}
	return nil
}

func (e *DefaultExamService) fetchPet(petID int) (*entity.Pet, apierror.ErrorResponse) {
	pet, err := e.PetRepo.FindByID(petID)
	if err != nil {
		log.Errorf("failed to find pet %d: %v", petID, err)
		return nil, apierror.InternalServerError
	}
	if pet == nil {
		return nil, apierror.NewNotFoundError("Pet")
	}
	return pet, nil
}

func buildExam(req *ExamRequest) *entity.Exam {
	now := utils.NowUTC()
	return &entity.Exam{
		PetID:         req.PetID,
		ExamType:      req.ExamType,
		Date:          req.Date,
		Result:        utils.EmptyToNil(req.Result),
		Status:        req.Status,
		PaymentMethod: utils.EmptyToNil(req.PaymentMethod),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func toExamResponse(exam *entity.Exam) *ExamResponse {
	return &ExamResponse{
		ID:            exam.ID,
		PetID:         exam.PetID,
		ExamType:      exam.ExamType,
		Date:          exam.Date,
		Result:        exam.Result,
		Status:        exam.Status,
		PaymentMethod: exam.PaymentMethod,
		CreatedAt:     utils.FormatEpoch(exam.CreatedAt),
		UpdatedAt:     utils.FormatEpoch(exam.UpdatedAt),
	}
}

func toExamDetailResponse(exam *entity.ExamDetail) *ExamResponse {
	resp := toExamResponse(&exam.Exam)
	resp.PetName = exam.PetName
	return resp
}
