package service

import (
	"strconv"

	"vetclinic/cmd/internal/auth"
	"vetclinic/cmd/internal/domain/entity"
	"vetclinic/cmd/internal/utils"
	"vetclinic/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindByID(id int) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *entity.User) error
	DeleteByID(id int) (bool, error)
}

type RegisterRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,min=6,max=100,email"`
	Password    string  `json:"password" validate:"required,min=8,max=100"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries the same rules as RegisterRequest with every
// field optional; absent fields leave the stored row untouched.
type UpdateUserRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email" validate:"omitempty,min=6,max=100,email"`
	Password    *string `json:"password" validate:"omitempty,min=8,max=100"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
}

type UserResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Address     *string `json:"address,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CurrentUserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DefaultUserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
	Tokens   *auth.TokenIssuer
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokens *auth.TokenIssuer) *DefaultUserService {
	return &DefaultUserService{UserRepo: userRepo, Validate: validate, Tokens: tokens}
}

func (u *DefaultUserService) Register(req *RegisterRequest) (*UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	found, err := u.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return nil, apierror.InternalServerError
	}
	if found {
		return nil, apierror.UserAlreadyExistsError
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	user := &entity.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		PhoneNumber: utils.EmptyToNil(req.PhoneNumber),
		Address:     utils.EmptyToNil(req.Address),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(user), nil
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password are deliberately indistinguishable.
func (u *DefaultUserService) Login(req *LoginRequest) (string, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return "", apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user by email: %v", err)
		return "", apierror.InternalServerError
	}

	if user == nil || !auth.CheckPassword(req.Password, user.Password) {
		return "", apierror.InvalidCredentialsError
	}

	token, err := u.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Errorf("failed to issue session token for user %d: %v", user.ID, err)
		return "", apierror.InternalServerError
	}
	return token, nil
}

// Me re-fetches the public profile of the authenticated user.
func (u *DefaultUserService) Me(userID int) (*CurrentUserResponse, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByID(userID)
	if err != nil {
		log.Errorf("failed to find user %d: %v", userID, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.NewNotFoundError("User")
	}
	return &CurrentUserResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (u *DefaultUserService) GetUser(rawID string) (*UserResponse, apierror.ErrorResponse) {
	user, apierr := u.fetchByID(rawID)
	if apierr != nil {
		return nil, apierr
	}
	if user == nil {
		return nil, apierror.NewNotFoundError("User")
	}
	return toUserResponse(user), nil
}

func (u *DefaultUserService) UpdateUser(rawID string, req *UpdateUserRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	user, apierr := u.fetchByID(rawID)
	if apierr != nil {
		return apierr
	}
	if user == nil {
		return apierror.NewNotFoundError("User")
	}

	if req.Email != nil && *req.Email != user.Email {
		found, err := u.UserRepo.ExistsByEmail(*req.Email)
		if err != nil {
			log.Errorf("failed to check if email is taken: %v", err)
			return apierror.InternalServerError
		}
		if found {
			return apierror.UserAlreadyExistsError
		}
		user.Email = *req.Email
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			log.Errorf("failed to hash password: %v", err)
			return apierror.InternalServerError
		}
		user.Password = hashed
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = utils.EmptyToNil(req.PhoneNumber)
	}
	if req.Address != nil {
		user.Address = utils.EmptyToNil(req.Address)
	}
	user.UpdatedAt = utils.NowUTC()

	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to update user %d: %v", user.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

// DeleteUser removes the row. Pets owned by the user are kept; there is no
// cascading delete.
func (u *DefaultUserService) DeleteUser(rawID string) apierror.ErrorResponse {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return apierror.NewInvalidParamTypeError("id", "int")
	}

	deleted, err := u.UserRepo.DeleteByID(id)
	if err != nil {
		log.Errorf("failed to delete user %d: %v", id, err)
		return apierror.InternalServerError
	}
	if !deleted {
		return apierror.NewNotFoundError("User")
	}
	return nil
}

func (u *DefaultUserService) fetchByID(rawID string) (*entity.User, apierror.ErrorResponse) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("id", "int")
	}

	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to find user (%s) by id: %v", rawID, err)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		CreatedAt:   utils.FormatEpoch(user.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(user.UpdatedAt),
	}
}
