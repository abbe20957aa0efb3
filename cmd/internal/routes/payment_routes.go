package routes

import (
	"net/http"

	"vetclinic/cmd/internal/service"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PaymentService interface {
	CreatePayment(req *service.CreatePaymentRequest) (*service.PaymentResponse, apierror.ErrorResponse)
	GetPayment(rawID string) (*service.PaymentResponse, apierror.ErrorResponse)
}

type DefaultPaymentRoute struct {
	PaymentService PaymentService
}

func NewPaymentDefault(paymentService PaymentService) *DefaultPaymentRoute {
	return &DefaultPaymentRoute{PaymentService: paymentService}
}

func (p *DefaultPaymentRoute) CreatePayment(c echo.Context) error {
	var req service.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	payment, apierr := p.PaymentService.CreatePayment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, payment)
}

func (p *DefaultPaymentRoute) GetPayment(c echo.Context) error {
	payment, apierr := p.PaymentService.GetPayment(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, payment)
}
