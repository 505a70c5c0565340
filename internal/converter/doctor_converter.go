package converter

import (
	"schedula/internal/delivery/dto"
	"schedula/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	timings := make([]dto.DoctorTimingResponse, len(doctor.Timings))
	for i, timing := range doctor.Timings {
		timings[i] = dto.DoctorTimingResponse{
			Day:       timing.Day,
			StartTime: timing.StartTime,
			EndTime:   timing.EndTime,
		}
	}

	return &dto.DoctorResponse{
		ID:            doctor.ID,
		Name:          doctor.Name,
		Department:    doctor.Department,
		Experience:    doctor.Experience,
		SuccessRate:   doctor.SuccessRate,
		Qualification: doctor.Qualification,
		Room:          doctor.Room,
		Timings:       timings,
		CreatedAt:     doctor.CreatedAt,
		UpdatedAt:     doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
