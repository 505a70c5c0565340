package usecase

import (
	"context"
	"errors"
	"time"

	"schedula/internal/converter"
	"schedula/internal/delivery/dto"
	"schedula/internal/domain/entity"
	"schedula/internal/domain/repository"
	"schedula/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentCancelled   = errors.New("appointment is already cancelled")
	ErrInvalidAppointmentDate = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidAppointmentTime = errors.New("invalid time format, use HH:MM:SS")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	GetAppointmentsForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAppointmentsForDoctorOnDate(ctx context.Context, doctorID string, date string) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	resolver        service.IdentityResolver
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	resolver service.IdentityResolver,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		resolver:        resolver,
		appointmentRepo: appointmentRepo,
	}
}

// BookAppointment resolves the patient (name, dob) and doctor (name) to
// stored records, then creates the appointment in booked state. Nothing is
// persisted when either resolution misses.
//
// No check is made against the doctor's timing windows or existing
// appointments: the same doctor can be booked twice for the same slot.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	dateOfBirth, err := time.Parse("2006-01-02", req.PatientDOB)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if _, err := time.Parse("15:04:05", req.Time); err != nil {
		return nil, ErrInvalidAppointmentTime
	}

	patient, err := u.resolver.ResolvePatient(ctx, req.PatientName, dateOfBirth)
	if err != nil {
		u.log.Warnf("Failed to resolve patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.resolver.ResolveDoctor(ctx, req.DoctorName)
	if err != nil {
		u.log.Warnf("Failed to resolve doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      date,
		Time:      req.Time,
		Notes:     req.Notes,
		Status:    entity.AppointmentStatusBooked,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, patient=%s, doctor=%s, date=%s %s",
		appointment.ID, patient.ID, doctor.ID, req.Date, req.Time)
	return converter.AppointmentToResponse(appointment), nil
}

// RescheduleAppointment moves an appointment to a new date and time. The
// identifier, notes and status stay as they were. Cancelled appointments are
// terminal and cannot be moved.
func (u *appointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if _, err := time.Parse("15:04:05", req.Time); err != nil {
		return nil, ErrInvalidAppointmentTime
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	if err := u.appointmentRepo.UpdateSchedule(ctx, appointmentID, date, req.Time); err != nil {
		u.log.Warnf("Failed to reschedule appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	appointment.Date = date
	appointment.Time = req.Time

	u.log.Infof("Appointment rescheduled: id=%s, date=%s %s", appointmentID, req.Date, req.Time)
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment transitions the appointment to cancelled. The record is
// kept. Cancelling twice is rejected, not a no-op.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affectedRows, err := u.appointmentRepo.CancelByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if affectedRows == 0 {
		// Lost a race or the record was already cancelled at read time
		return ErrAppointmentCancelled
	}

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return nil
}

func (u *appointmentUsecase) GetAppointmentsForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsForDoctorOnDate(ctx context.Context, doctorID string, date string) (*dto.AppointmentListResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndDate(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
