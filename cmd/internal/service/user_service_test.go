package service

import (
	"encoding/json"
	"testing"

	"vetclinic/cmd/internal/auth"
	"vetclinic/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(repo *stubUserRepo) *DefaultUserService {
	return NewUserService(repo, newTestValidator(), auth.NewTokenIssuer("test-secret"))
}

func TestRegisterHashesPasswordAndOmitsItFromResponse(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	phone := "555-0101"
	resp, apierr := svc.Register(&RegisterRequest{
		Name:        "Ana",
		Email:       "ana@x.com",
		Password:    "longenough",
		PhoneNumber: &phone,
	})
	require.Nil(t, apierr)
	require.NotNil(t, resp)
	assert.Greater(t, resp.ID, 0)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "ana@x.com", resp.Email)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "longenough", stored.Password)
	assert.True(t, auth.CheckPassword("longenough", stored.Password))

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, apierr := svc.Register(&RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "longenough"})
	require.Nil(t, apierr)

	_, apierr = svc.Register(&RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "longenough"})
	require.NotNil(t, apierr)
	assert.Equal(t, 409, apierr.Code())
}

func TestRegisterReportsAllViolationsInOrder(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	_, apierr := svc.Register(&RegisterRequest{Name: "", Email: "bad", Password: "short"})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
	assert.Equal(t,
		"Name is required; Email must be at least 6 characters; Password must be at least 8 characters",
		apierr.Error())
}

func TestRegisterEmptyOptionalFieldsStoredAbsent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	empty := "   "
	resp, apierr := svc.Register(&RegisterRequest{
		Name:        "Ana",
		Email:       "ana@x.com",
		Password:    "longenough",
		PhoneNumber: &empty,
		Address:     nil,
	})
	require.Nil(t, apierr)

	stored := repo.users[resp.ID]
	assert.Nil(t, stored.PhoneNumber)
	assert.Nil(t, stored.Address)
}

func TestLoginFailsUniformly(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	_, apierr := svc.Register(&RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "longenough"})
	require.Nil(t, apierr)

	_, wrongPass := svc.Login(&LoginRequest{Email: "ana@x.com", Password: "wrongpass"})
	_, unknownEmail := svc.Login(&LoginRequest{Email: "nobody@x.com", Password: "longenough"})

	require.NotNil(t, wrongPass)
	require.NotNil(t, unknownEmail)
	assert.Equal(t, wrongPass.Code(), unknownEmail.Code())
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
	assert.Equal(t, 401, wrongPass.Code())
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newStubUserRepo()
	tokens := auth.NewTokenIssuer("test-secret")
	svc := NewUserService(repo, newTestValidator(), tokens)

	resp, apierr := svc.Register(&RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "longenough"})
	require.Nil(t, apierr)

	token, apierr := svc.Login(&LoginRequest{Email: "ana@x.com", Password: "longenough"})
	require.Nil(t, apierr)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
}

func TestMeReturnsPublicProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	resp, apierr := svc.Register(&RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "longenough"})
	require.Nil(t, apierr)

	me, apierr := svc.Me(resp.ID)
	require.Nil(t, apierr)
	assert.Equal(t, &CurrentUserResponse{ID: resp.ID, Name: "Ana", Email: "ana@x.com"}, me)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	name := "Bea"
	apierr := svc.UpdateUser("42", &UpdateUserRequest{Name: &name})
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}

func TestUpdateUserRejectsEmptyName(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	resp, apierr := svc.Register(&RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "longenough"})
	require.Nil(t, apierr)

	empty := ""
	apierr = svc.UpdateUser("1", &UpdateUserRequest{Name: &empty})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
	assert.Equal(t, "Name is required", apierr.Error())
	assert.Equal(t, "Ana", repo.users[resp.ID].Name) // row untouched
}

func TestUpdateUserRehashesSuppliedPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	resp, apierr := svc.Register(&RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "longenough"})
	require.Nil(t, apierr)
	oldHash := repo.users[resp.ID].Password

	newPass := "evenlonger"
	apierr = svc.UpdateUser("1", &UpdateUserRequest{Password: &newPass})
	require.Nil(t, apierr)

	stored := repo.users[resp.ID]
	assert.NotEqual(t, oldHash, stored.Password)
	assert.True(t, auth.CheckPassword("evenlonger", stored.Password))
	assert.Equal(t, "Ana", stored.Name) // untouched fields survive
}

func TestDeleteUserSecondCallNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)
	repo.users[1] = &entity.User{ID: 1, Name: "Ana", Email: "ana@x.com"}

	require.Nil(t, svc.DeleteUser("1"))

	apierr := svc.DeleteUser("1")
	require.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}

func TestGetUserRejectsNonNumericID(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	_, apierr := svc.GetUser("abc")
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}
