package service

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"vetclinic/cmd/internal/domain/entity"
	"vetclinic/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
)

func newTestValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("calendardate", validators.IsCalendarDate)
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

var errStub = errors.New("stub failure")

type stubUserRepo struct {
	users  map[int]*entity.User
	nextID int
	err    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[int]*entity.User{}}
}

func (s *stubUserRepo) FindByID(id int) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

func (s *stubUserRepo) FindByEmail(email string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) ExistsByEmail(email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	u, _ := s.FindByEmail(email)
	return u != nil, nil
}

func (s *stubUserRepo) Save(user *entity.User) error {
	if s.err != nil {
		return s.err
	}
	if user.ID == 0 {
		s.nextID++
		user.ID = s.nextID
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) DeleteByID(id int) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

type stubPetRepo struct {
	pets   map[int]*entity.Pet
	nextID int
	err    error
}

func newStubPetRepo() *stubPetRepo {
	return &stubPetRepo{pets: map[int]*entity.Pet{}}
}

func (s *stubPetRepo) FindByID(id int) (*entity.Pet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pets[id], nil
}

func (s *stubPetRepo) FindByUserID(userID int) ([]*entity.Pet, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Pet
	for _, p := range s.pets {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubPetRepo) Save(pet *entity.Pet) error {
	if s.err != nil {
		return s.err
	}
	if pet.ID == 0 {
		s.nextID++
		pet.ID = s.nextID
	}
	s.pets[pet.ID] = pet
	return nil
}

func (s *stubPetRepo) DeleteByID(id int) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.pets[id]; !ok {
		return false, nil
	}
	delete(s.pets, id)
	return true, nil
}

type stubAppointmentRepo struct {
	appts    map[int]*entity.Appointment
	payments []*entity.Payment
	pets     *stubPetRepo
	nextID   int
	err      error
	txErr    error
}

func newStubAppointmentRepo(pets *stubPetRepo) *stubAppointmentRepo {
	return &stubAppointmentRepo{appts: map[int]*entity.Appointment{}, pets: pets}
}

func (s *stubAppointmentRepo) FindByID(id int) (*entity.AppointmentDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	appt, ok := s.appts[id]
	if !ok {
		return nil, nil
	}
	return s.toDetail(appt), nil
}

func (s *stubAppointmentRepo) FindByUserID(userID int) ([]*entity.AppointmentDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.AppointmentDetail
	for _, appt := range s.appts {
		if pet := s.pets.pets[appt.PetID]; pet != nil && pet.UserID == userID {
			out = append(out, s.toDetail(appt))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubAppointmentRepo) Save(appointment *entity.Appointment) error {
	if s.err != nil {
		return s.err
	}
	if appointment.ID == 0 {
		s.nextID++
		appointment.ID = s.nextID
	}
	s.appts[appointment.ID] = appointment
	return nil
}

func (s *stubAppointmentRepo) SaveWithPayment(appointment *entity.Appointment, payment *entity.Payment) error {
	if s.txErr != nil {
		return s.txErr
	}
	if err := s.Save(appointment); err != nil {
		return err
	}
	payment.ID = len(s.payments) + 1
	s.payments = append(s.payments, payment)
	return nil
}

func (s *stubAppointmentRepo) DeleteByID(id int) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.appts[id]; !ok {
		return false, nil
	}
	delete(s.appts, id)
	return true, nil
}

func (s *stubAppointmentRepo) toDetail(appt *entity.Appointment) *entity.AppointmentDetail {
	detail := &entity.AppointmentDetail{Appointment: *appt}
	if pet := s.pets.pets[appt.PetID]; pet != nil {
		detail.PetName = pet.Name
	}
	return detail
}

type stubExamRepo struct {
	exams    map[int]*entity.Exam
	payments []*entity.Payment
	pets     *stubPetRepo
	nextID   int
	err      error
	txErr    error
}

func newStubExamRepo(pets *stubPetRepo) *stubExamRepo {
	return &stubExamRepo{exams: map[int]*entity.Exam{}, pets: pets}
}

func (s *stubExamRepo) FindByID(id int) (*entity.ExamDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	exam, ok := s.exams[id]
	if !ok {
		return nil, nil
	}
	return s.toDetail(exam), nil
}

func (s *stubExamRepo) FindByUserID(userID int) ([]*entity.ExamDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.ExamDetail
	for _, exam := range s.exams {
		if pet := s.pets.pets[exam.PetID]; pet != nil && pet.UserID == userID {
			out = append(out, s.toDetail(exam))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubExamRepo) Save(exam *entity.Exam) error {
	if s.err != nil {
		return s.err
	}
	if exam.ID == 0 {
		s.nextID++
		exam.ID = s.nextID
	}
	s.exams[exam.ID] = exam
	return nil
}

func (s *stubExamRepo) SaveWithPayment(exam *entity.Exam, payment *entity.Payment) error {
	if s.txErr != nil {
		return s.txErr
	}
	if err := s.Save(exam); err != nil {
		return err
	}
	payment.ID = len(s.payments) + 1
	s.payments = append(s.payments, payment)
	return nil
}

func (s *stubExamRepo) DeleteByID(id int) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.exams[id]; !ok {
		return false, nil
	}
	delete(s.exams, id)
	return true, nil
}

func (s *stubExamRepo) toDetail(exam *entity.Exam) *entity.ExamDetail {
	detail := &entity.ExamDetail{Exam: *exam}
	if pet := s.pets.pets[exam.PetID]; pet != nil {
		detail.PetName = pet.Name
	}
	return detail
}

type stubPaymentRepo struct {
	payments map[int]*entity.Payment
	nextID   int
	err      error
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: map[int]*entity.Payment{}}
}

func (s *stubPaymentRepo) FindByID(id int) (*entity.Payment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.payments[id], nil
}

func (s *stubPaymentRepo) Save(payment *entity.Payment) error {
	if s.err != nil {
		return s.err
	}
	if payment.ID == 0 {
		s.nextID++
		payment.ID = s.nextID
	}
	s.payments[payment.ID] = payment
	return nil
}
