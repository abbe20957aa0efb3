package routes

import (
	"net/http"
	"strings"

	"vetclinic/cmd/internal/auth"
	"vetclinic/cmd/internal/service"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(req *service.RegisterRequest) (*service.UserResponse, apierror.ErrorResponse)
	Login(req *service.LoginRequest) (string, apierror.ErrorResponse)
	Me(userID int) (*service.CurrentUserResponse, apierror.ErrorResponse)
	GetUser(rawID string) (*service.UserResponse, apierror.ErrorResponse)
	UpdateUser(rawID string, req *service.UpdateUserRequest) apierror.ErrorResponse
	DeleteUser(rawID string) apierror.ErrorResponse
}

type DefaultUserRoute struct {
	UserService   UserService
	SecureCookies bool
}

func NewUserDefault(userService UserService, secureCookies bool) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService, SecureCookies: secureCookies}
}

func (u *DefaultUserRoute) Register(c echo.Context) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := u.UserService.Register(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, user)
}

func (u *DefaultUserRoute) Login(c echo.Context) error {
	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	token, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.SetCookie(auth.NewSessionCookie(token, u.SecureCookies))
	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful"})
}

// Logout clears the session cookie. Safe to call repeatedly.
func (u *DefaultUserRoute) Logout(c echo.Context) error {
	c.SetCookie(auth.ClearSessionCookie(u.SecureCookies))
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

func (u *DefaultUserRoute) Me(c echo.Context) error {
	claims, err := auth.SessionFromCtx(c)
	if err != nil {
		return c.JSON(apierror.UnauthenticatedError.Code(), apierror.UnauthenticatedError)
	}

	user, apierr := u.UserService.Me(claims.UserID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

func (u *DefaultUserRoute) GetUser(c echo.Context) error {
	rawID := strings.TrimSpace(c.Param("id"))
	if rawID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	user, apierr := u.UserService.GetUser(rawID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

func (u *DefaultUserRoute) UpdateUser(c echo.Context) error {
	var req service.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	apierr := u.UserService.UpdateUser(c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully"})
}

func (u *DefaultUserRoute) DeleteUser(c echo.Context) error {
	apierr := u.UserService.DeleteUser(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
