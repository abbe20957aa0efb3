package routes

import (
	"net/http"

	"vetclinic/cmd/internal/service"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	CreateAppointment(req *service.AppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	ScheduleAppointment(req *service.ScheduleAppointmentRequest) (*service.ScheduleAppointmentResponse, apierror.ErrorResponse)
	GetAppointment(rawID string) (*service.AppointmentResponse, apierror.ErrorResponse)
	GetAppointmentsByUser(rawUserID string) ([]*service.AppointmentResponse, apierror.ErrorResponse)
	DeleteAppointment(rawID string) apierror.ErrorResponse
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.CreateAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (a *DefaultAppointmentRoute) ScheduleAppointment(c echo.Context) error {
	var req service.ScheduleAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	booked, apierr := a.AppointmentService.ScheduleAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, booked)
}

func (a *DefaultAppointmentRoute) GetAppointment(c echo.Context) error {
	appt, apierr := a.AppointmentService.GetAppointment(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) GetAppointmentsByUser(c echo.Context) error {
	appts, apierr := a.AppointmentService.GetAppointmentsByUser(c.Param("userId"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appts)
}

func (a *DefaultAppointmentRoute) DeleteAppointment(c echo.Context) error {
	apierr := a.AppointmentService.DeleteAppointment(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Appointment deleted"})
}
