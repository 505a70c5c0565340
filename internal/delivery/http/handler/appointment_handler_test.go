package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"schedula/internal/delivery/dto"
	"schedula/internal/usecase"
	"schedula/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

var _ usecase.AppointmentUsecase = (*mockAppointmentUsecase)(nil)

type mockAppointmentUsecase struct {
	BookFunc       func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	RescheduleFunc func(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelFunc     func(ctx context.Context, id uuid.UUID) error
	ForPatientFunc func(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	ForDoctorFunc  func(ctx context.Context, doctorID string, date string) (*dto.AppointmentListResponse, error)
}

func (m *mockAppointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.BookFunc(ctx, req)
}

func (m *mockAppointmentUsecase) RescheduleAppointment(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.RescheduleFunc(ctx, id, req)
}

func (m *mockAppointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) error {
	return m.CancelFunc(ctx, id)
}

func (m *mockAppointmentUsecase) GetAppointmentsForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return m.ForPatientFunc(ctx, patientID)
}

func (m *mockAppointmentUsecase) GetAppointmentsForDoctorOnDate(ctx context.Context, doctorID string, date string) (*dto.AppointmentListResponse, error) {
	return m.ForDoctorFunc(ctx, doctorID, date)
}

func newAppointmentRouter(uc usecase.AppointmentUsecase) *mux.Router {
	h := NewAppointmentHandler(uc, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/appointments/book", h.BookAppointment).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}/reschedule", h.RescheduleAppointment).Methods(http.MethodPut)
	r.HandleFunc("/appointments/{id}", h.CancelAppointment).Methods(http.MethodDelete)
	r.HandleFunc("/doctors/{id}/appointments", h.GetDoctorAppointments).Methods(http.MethodGet)
	return r
}

func TestBookAppointment_Created(t *testing.T) {
	uc := &mockAppointmentUsecase{
		BookFunc: func(_ context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			assert.Equal(t, "Dr. Jones", req.DoctorName)
			return &dto.AppointmentResponse{ID: uuid.New(), Status: "booked"}, nil
		},
	}
	router := newAppointmentRouter(uc)

	body, _ := json.Marshal(dto.BookAppointmentRequest{
		PatientName: "Alice Wonderland",
		PatientDOB:  "1992-03-25",
		DoctorName:  "Dr. Jones",
		Date:        "2025-09-01",
		Time:        "09:00:00",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/appointments/book", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBookAppointment_MissingFields(t *testing.T) {
	router := newAppointmentRouter(&mockAppointmentUsecase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/appointments/book", bytes.NewReader([]byte(`{}`))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestBookAppointment_DoctorNotFound(t *testing.T) {
	uc := &mockAppointmentUsecase{
		BookFunc: func(_ context.Context, _ *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrDoctorNotFound
		},
	}
	router := newAppointmentRouter(uc)

	body, _ := json.Marshal(dto.BookAppointmentRequest{
		PatientName: "Alice Wonderland",
		PatientDOB:  "1992-03-25",
		DoctorName:  "Dr. Nobody",
		Date:        "2025-09-01",
		Time:        "09:00:00",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/appointments/book", bytes.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRescheduleAppointment_CancelledConflict(t *testing.T) {
	uc := &mockAppointmentUsecase{
		RescheduleFunc: func(_ context.Context, _ uuid.UUID, _ *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentCancelled
		},
	}
	router := newAppointmentRouter(uc)

	body, _ := json.Marshal(dto.RescheduleAppointmentRequest{Date: "2025-09-03", Time: "10:00:00"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/appointments/"+uuid.NewString()+"/reschedule", bytes.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelAppointment_InvalidID(t *testing.T) {
	router := newAppointmentRouter(&mockAppointmentUsecase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/appointments/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDoctorAppointments_RequiresDate(t *testing.T) {
	router := newAppointmentRouter(&mockAppointmentUsecase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors/dr-1/appointments", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDoctorAppointments_PassesParams(t *testing.T) {
	uc := &mockAppointmentUsecase{
		ForDoctorFunc: func(_ context.Context, doctorID string, date string) (*dto.AppointmentListResponse, error) {
			assert.Equal(t, "dr-1", doctorID)
			assert.Equal(t, "2025-09-01", date)
			return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}, Total: 0}, nil
		},
	}
	router := newAppointmentRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors/dr-1/appointments?date=2025-09-01", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
