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
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrInvalidTimingFormat = errors.New("invalid timing format, use HH:MM:SS")
)

type DoctorUsecase interface {
	AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
}

type doctorUsecase struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	doctorCache service.DoctorCache
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository, doctorCache service.DoctorCache) DoctorUsecase {
	return &doctorUsecase{
		log:         log,
		doctorRepo:  doctorRepo,
		doctorCache: doctorCache,
	}
}

func (u *doctorUsecase) AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	timings := make([]entity.DoctorTiming, len(req.Timings))
	for i, timing := range req.Timings {
		if _, err := time.Parse("15:04:05", timing.StartTime); err != nil {
			return nil, ErrInvalidTimingFormat
		}
		if _, err := time.Parse("15:04:05", timing.EndTime); err != nil {
			return nil, ErrInvalidTimingFormat
		}
		timings[i] = entity.DoctorTiming{
			Day:       timing.Day,
			StartTime: timing.StartTime,
			EndTime:   timing.EndTime,
		}
	}

	doctorID := req.ID
	if doctorID == "" {
		doctorID = uuid.NewString()
	}

	doctor := &entity.Doctor{
		ID:            doctorID,
		Name:          req.Name,
		Department:    req.Department,
		Experience:    req.Experience,
		SuccessRate:   req.SuccessRate,
		Qualification: req.Qualification,
		Room:          req.Room,
		Timings:       timings,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	// Cache errors never fail the write; the TTL catches stragglers
	if err := u.doctorCache.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate doctor cache (non-fatal): %+v", err)
	}

	u.log.Infof("Doctor added: id=%s, name=%s", doctor.ID, doctor.Name)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	cached, err := u.doctorCache.GetAll(ctx)
	if err != nil {
		u.log.Warnf("Doctor cache read failed, falling back to database: %+v", err)
	}
	if cached != nil {
		return &dto.DoctorListResponse{
			Doctors: converter.DoctorsToResponses(cached),
			Total:   len(cached),
		}, nil
	}

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	if err := u.doctorCache.SetAll(ctx, doctors); err != nil {
		u.log.Warnf("Failed to populate doctor cache (non-fatal): %+v", err)
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// DeleteDoctor removes the doctor and its timing rows. Appointments that
// reference the doctor are left untouched.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	affectedRows, err := u.doctorRepo.Delete(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	if err := u.doctorCache.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate doctor cache (non-fatal): %+v", err)
	}

	u.log.Infof("Doctor deleted: id=%s", doctorID)
	return nil
}
