package routes

import (
	"net/http"

	"vetclinic/cmd/internal/service"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ExamService interface {
	CreateExam(req *service.ExamRequest) (*service.ExamResponse, apierror.ErrorResponse)
	ScheduleExam(req *service.ScheduleExamRequest) (*service.ScheduleExamResponse, apierror.ErrorResponse)
	GetExam(rawID string) (*service.ExamResponse, apierror.ErrorResponse)
	GetExamsByUser(rawUserID string) ([]*service.ExamResponse, apierror.ErrorResponse)
	DeleteExam(rawID string) apierror.ErrorResponse
}

type DefaultExamRoute struct {
	ExamService ExamService
}

func NewExamDefault(examService ExamService) *DefaultExamRoute {
	return &DefaultExamRoute{ExamService: examService}
}

func (e *DefaultExamRoute) CreateExam(c echo.Context) error {
	var req service.ExamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	exam, apierr := e.ExamService.CreateExam(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, exam)
}

func (e *DefaultExamRoute) ScheduleExam(c echo.Context) error {
	var req service.ScheduleExamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	booked, apierr := e.ExamService.ScheduleExam(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, booked)
}

func (e *DefaultExamRoute) GetExam(c echo.Context) error {
	exam, apierr := e.ExamService.GetExam(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, exam)
}

func (e *DefaultExamRoute) GetExamsByUser(c echo.Context) error {
	exams, apierr := e.ExamService.GetExamsByUser(c.Param("userId"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, exams)
}

func (e *DefaultExamRoute) DeleteExam(c echo.Context) error {
	apierr := e.ExamService.DeleteExam(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Exam deleted"})
}
