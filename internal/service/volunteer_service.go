package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"net/http"
	"strings"

	// Registered decoders for upload validation.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"wecare/internal/models"
	"wecare/internal/repository"
	"wecare/internal/storage"
)

const maxImageBytes = 5 << 20 // 5 MiB

type VolunteerService struct {
	volunteerRepo repository.VolunteerRepository
	files         storage.FileStore
}

func NewVolunteerService(volunteerRepo repository.VolunteerRepository, files storage.FileStore) *VolunteerService {
	return &VolunteerService{volunteerRepo: volunteerRepo, files: files}
}

type CreateVolunteerInput struct {
	Name          string
	Role          string
	Bio           string
	ImageFilename string
	ImageData     []byte
}

// CreateVolunteer adds a directory entry. All fields including the photo are
// mandatory; the photo is validated as a decodable image before storage.
func (s *VolunteerService) CreateVolunteer(ctx context.Context, in CreateVolunteerInput) (*models.Volunteer, error) {
	name := strings.TrimSpace(in.Name)
	role := strings.TrimSpace(in.Role)
	bio := strings.TrimSpace(in.Bio)
	if name == "" || role == "" || bio == "" {
		return nil, models.NewValidationError("Name, role, and bio are all required")
	}
	if len(in.ImageData) == 0 {
		return nil, models.NewValidationError("A profile image is required")
	}
	if err := validateImage(in.ImageData); err != nil {
		return nil, err
	}

	handle, err := s.files.Store(in.ImageFilename, in.ImageData)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	volunteer := &models.Volunteer{
		Name:     name,
		Role:     role,
		Bio:      bio,
		ImageRef: handle,
	}
	if err := s.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, err
	}
	return volunteer, nil
}

func (s *VolunteerService) ListVolunteers(ctx context.Context, limit, offset int) ([]*models.Volunteer, error) {
	return s.volunteerRepo.List(ctx, limit, offset)
}

func (s *VolunteerService) GetVolunteer(ctx context.Context, id uint) (*models.Volunteer, error) {
	return s.volunteerRepo.GetByID(ctx, id)
}

// ResolveImage returns the volunteer's photo bytes and content type. A
// dangling image reference degrades to the placeholder instead of an error.
func (s *VolunteerService) ResolveImage(ctx context.Context, id uint) ([]byte, string, error) {
	volunteer, err := s.volunteerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, err := s.files.Resolve(volunteer.ImageRef)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			slog.WarnContext(ctx, "volunteer image missing, serving placeholder",
				slog.Uint64("volunteer_id", uint64(id)),
				slog.String("image_ref", volunteer.ImageRef),
			)
			return storage.PlaceholderImage(), "image/png", nil
		}
		return nil, "", models.NewInternalError(err)
	}
	return data, http.DetectContentType(data), nil
}

// validateImage rejects uploads that are not real images. DetectContentType
// is a cheap first gate; the full decode catches truncated files.
func validateImage(data []byte) error {
	if len(data) > maxImageBytes {
		return models.NewValidationError("Image is too large (max 5 MB)")
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return models.NewValidationError("File is not a recognized image")
	}
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return models.NewValidationError("Image could not be decoded")
	}
	return nil
}
