package usecase

import (
	"context"
	"sort"
	"time"

	"schedula/internal/domain/entity"
	"schedula/internal/domain/repository"
	"schedula/internal/service"

	"github.com/google/uuid"
)

// Compile-time checks
var (
	_ repository.PatientRepository     = (*mockPatientRepository)(nil)
	_ repository.DoctorRepository      = (*mockDoctorRepository)(nil)
	_ repository.AppointmentRepository = (*mockAppointmentRepository)(nil)
	_ service.DoctorCache              = (*stubDoctorCache)(nil)
)

// --- mockPatientRepository ---

type mockPatientRepository struct {
	patients  map[uuid.UUID]*entity.Patient
	seq       int
	CreateErr error
	FindErr   error
}

func newMockPatientRepository() *mockPatientRepository {
	return &mockPatientRepository{patients: make(map[uuid.UUID]*entity.Patient)}
}

func (m *mockPatientRepository) Create(_ context.Context, patient *entity.Patient) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	m.seq++
	patient.CreatedAt = time.Unix(int64(m.seq), 0)
	stored := *patient
	m.patients[patient.ID] = &stored
	return nil
}

func (m *mockPatientRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	patient, ok := m.patients[id]
	if !ok {
		return nil, nil
	}
	found := *patient
	return &found, nil
}

func (m *mockPatientRepository) FindByNameAndDOB(_ context.Context, name string, dob time.Time) (*entity.Patient, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var match *entity.Patient
	for _, patient := range m.patients {
		if patient.Name != name || !patient.DateOfBirth.Equal(dob) {
			continue
		}
		if match == nil || patient.CreatedAt.Before(match.CreatedAt) {
			match = patient
		}
	}
	if match == nil {
		return nil, nil
	}
	found := *match
	return &found, nil
}

// --- mockDoctorRepository ---

type mockDoctorRepository struct {
	doctors   map[string]*entity.Doctor
	seq       int
	CreateErr error
	FindErr   error
}

func newMockDoctorRepository() *mockDoctorRepository {
	return &mockDoctorRepository{doctors: make(map[string]*entity.Doctor)}
}

func (m *mockDoctorRepository) Create(_ context.Context, doctor *entity.Doctor) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.seq++
	doctor.CreatedAt = time.Unix(int64(m.seq), 0)
	stored := *doctor
	m.doctors[doctor.ID] = &stored
	return nil
}

func (m *mockDoctorRepository) FindByID(_ context.Context, id string) (*entity.Doctor, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	doctor, ok := m.doctors[id]
	if !ok {
		return nil, nil
	}
	found := *doctor
	return &found, nil
}

func (m *mockDoctorRepository) FindByName(_ context.Context, name string) (*entity.Doctor, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var match *entity.Doctor
	for _, doctor := range m.doctors {
		if doctor.Name != name {
			continue
		}
		if match == nil || doctor.CreatedAt.Before(match.CreatedAt) {
			match = doctor
		}
	}
	if match == nil {
		return nil, nil
	}
	found := *match
	return &found, nil
}

func (m *mockDoctorRepository) FindAll(_ context.Context) ([]entity.Doctor, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	doctors := make([]entity.Doctor, 0, len(m.doctors))
	for _, doctor := range m.doctors {
		doctors = append(doctors, *doctor)
	}
	sort.Slice(doctors, func(i, j int) bool {
		return doctors[i].CreatedAt.Before(doctors[j].CreatedAt)
	})
	return doctors, nil
}

func (m *mockDoctorRepository) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.doctors[id]; !ok {
		return 0, nil
	}
	delete(m.doctors, id)
	return 1, nil
}

func (m *mockDoctorRepository) Count(_ context.Context) (int64, error) {
	return int64(len(m.doctors)), nil
}

// --- mockAppointmentRepository ---

type mockAppointmentRepository struct {
	appointments map[uuid.UUID]*entity.Appointment
	seq          int
	CreateErr    error
	FindErr      error
}

func newMockAppointmentRepository() *mockAppointmentRepository {
	return &mockAppointmentRepository{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (m *mockAppointmentRepository) Create(_ context.Context, appointment *entity.Appointment) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	m.seq++
	appointment.CreatedAt = time.Unix(int64(m.seq), 0)
	stored := *appointment
	m.appointments[appointment.ID] = &stored
	return nil
}

func (m *mockAppointmentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	appointment, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	found := *appointment
	return &found, nil
}

func (m *mockAppointmentRepository) FindByPatientID(_ context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var appointments []entity.Appointment
	for _, appointment := range m.appointments {
		if appointment.PatientID == patientID {
			appointments = append(appointments, *appointment)
		}
	}
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})
	return appointments, nil
}

func (m *mockAppointmentRepository) FindByDoctorAndDate(_ context.Context, doctorID string, date time.Time) ([]entity.Appointment, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var appointments []entity.Appointment
	for _, appointment := range m.appointments {
		if appointment.DoctorID == doctorID && appointment.Date.Equal(date) && !appointment.IsCancelled() {
			appointments = append(appointments, *appointment)
		}
	}
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].Time < appointments[j].Time
	})
	return appointments, nil
}

func (m *mockAppointmentRepository) UpdateSchedule(_ context.Context, id uuid.UUID, date time.Time, timeOfDay string) error {
	appointment, ok := m.appointments[id]
	if !ok {
		return nil
	}
	appointment.Date = date
	appointment.Time = timeOfDay
	return nil
}

func (m *mockAppointmentRepository) CancelByID(_ context.Context, id uuid.UUID) (int64, error) {
	appointment, ok := m.appointments[id]
	if !ok || appointment.IsCancelled() {
		return 0, nil
	}
	appointment.Cancel()
	return 1, nil
}

// --- stubDoctorCache ---

type stubDoctorCache struct {
	cached      []entity.Doctor
	Invalidated int
	GetErr      error
	SetErr      error
	DelErr      error
}

func newStubDoctorCache() *stubDoctorCache {
	return &stubDoctorCache{}
}

func (c *stubDoctorCache) GetAll(_ context.Context) ([]entity.Doctor, error) {
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	return c.cached, nil
}

func (c *stubDoctorCache) SetAll(_ context.Context, doctors []entity.Doctor) error {
	if c.SetErr != nil {
		return c.SetErr
	}
	c.cached = doctors
	return nil
}

func (c *stubDoctorCache) Invalidate(_ context.Context) error {
	c.Invalidated++
	if c.DelErr != nil {
		return c.DelErr
	}
	c.cached = nil
	return nil
}
