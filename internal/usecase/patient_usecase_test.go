package usecase

import (
	"context"
	"testing"

	"schedula/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.FatalLevel)
	return log
}

func TestRegisterPatient_ResolvesByNaturalKey(t *testing.T) {
	repo := newMockPatientRepository()
	uc := NewPatientUsecase(newTestLogger(), repo)

	registered, err := uc.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:    "Alice Wonderland",
		DOB:     "1992-03-25",
		Contact: "a@x.com",
	})
	assert.NoError(t, err)
	assert.NotNil(t, registered)

	found, err := uc.SearchPatient(context.Background(), "Alice Wonderland", "1992-03-25")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, found.ID)
	assert.Equal(t, "1992-03-25", found.DOB)
	assert.Equal(t, "a@x.com", found.Contact)
}

func TestRegisterPatient_DuplicateRejected(t *testing.T) {
	repo := newMockPatientRepository()
	uc := NewPatientUsecase(newTestLogger(), repo)

	req := &dto.RegisterPatientRequest{Name: "Bob", DOB: "1980-01-01", Contact: "b@x.com"}
	_, err := uc.RegisterPatient(context.Background(), req)
	assert.NoError(t, err)

	_, err = uc.RegisterPatient(context.Background(), req)
	assert.ErrorIs(t, err, ErrPatientExists)
	assert.Len(t, repo.patients, 1)
}

func TestRegisterPatient_SameNameDifferentDOBAllowed(t *testing.T) {
	repo := newMockPatientRepository()
	uc := NewPatientUsecase(newTestLogger(), repo)

	_, err := uc.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{Name: "Bob", DOB: "1980-01-01", Contact: "b@x.com"})
	assert.NoError(t, err)

	_, err = uc.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{Name: "Bob", DOB: "1985-06-15", Contact: "b2@x.com"})
	assert.NoError(t, err)
	assert.Len(t, repo.patients, 2)
}

func TestRegisterPatient_InvalidDOB(t *testing.T) {
	uc := NewPatientUsecase(newTestLogger(), newMockPatientRepository())

	_, err := uc.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:    "Carol",
		DOB:     "25-03-1992",
		Contact: "c@x.com",
	})
	assert.ErrorIs(t, err, ErrInvalidDateOfBirth)
}

func TestSearchPatient_NotFound(t *testing.T) {
	uc := NewPatientUsecase(newTestLogger(), newMockPatientRepository())

	_, err := uc.SearchPatient(context.Background(), "Nobody", "1990-01-01")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestSearchPatient_InvalidDOB(t *testing.T) {
	uc := NewPatientUsecase(newTestLogger(), newMockPatientRepository())

	_, err := uc.SearchPatient(context.Background(), "Nobody", "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDateOfBirth)
}
