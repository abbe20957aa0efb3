package service

import (
	"strconv"

	"vetclinic/cmd/internal/domain/entity"
	"vetclinic/cmd/internal/utils"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// paymentStatusCompleted is the status assigned to simulated payments; no
// real gateway sits behind this record.
const paymentStatusCompleted = "completed"

type PaymentRepository interface {
	FindByID(id int) (*entity.Payment, error)
	Save(payment *entity.Payment) error
}

type CreatePaymentRequest struct {
	UserID int     `json:"user_id" validate:"required,gt=0"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type PaymentResponse struct {
	ID        int     `json:"id"`
	UserID    int     `json:"user_id"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type DefaultPaymentService struct {
	PaymentRepo PaymentRepository
	UserRepo    UserRepository
	Validate    *validator.Validate
}

func NewPaymentService(paymentRepo PaymentRepository, userRepo UserRepository, validate *validator.Validate) *DefaultPaymentService {
	return &DefaultPaymentService{PaymentRepo: paymentRepo, UserRepo: userRepo, Validate: validate}
}

// CreatePayment records a simulated payment. Date and status are assigned by
// the server, never taken from the client.
func (p *DefaultPaymentService) CreatePayment(req *CreatePaymentRequest) (*PaymentResponse, apierror.ErrorResponse) {
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := p.UserRepo.FindByID(req.UserID)
	if err != nil {
		log.Errorf("failed to find user %d: %v", req.UserID, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.NewNotFoundError("User")
	}

	now := utils.NowUTC()
	payment := &entity.Payment{
		UserID:    req.UserID,
		Date:      now,
		Amount:    req.Amount,
		Status:    paymentStatusCompleted,
		CreatedAt: now,
	}

	if err := p.PaymentRepo.Save(payment); err != nil {
		log.Errorf("failed to save payment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPaymentResponse(payment), nil
}

func (p *DefaultPaymentService) GetPayment(rawID string) (*PaymentResponse, apierror.ErrorResponse) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("id", "int")
	}

	payment, err := p.PaymentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch payment by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if payment == nil {
		return nil, apierror.NewNotFoundError("Payment")
	}
	return toPaymentResponse(payment), nil
}

func toPaymentResponse(payment *entity.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        payment.ID,
		UserID:    payment.UserID,
		Date:      utils.FormatEpoch(payment.Date),
		Amount:    payment.Amount,
		Status:    payment.Status,
		CreatedAt: utils.FormatEpoch(payment.CreatedAt),
	}
}
