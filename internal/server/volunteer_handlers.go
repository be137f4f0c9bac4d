package server

import (
	"io"

	"wecare/internal/models"
	"wecare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetVolunteers handles GET /api/volunteers
func (s *Server) GetVolunteers(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	volunteers, err := s.volunteerService.ListVolunteers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(volunteers)
}

// CreateVolunteer handles POST /api/admin/volunteers. The request is
// multipart: text fields plus a mandatory image file.
func (s *Server) CreateVolunteer(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A profile image file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read the uploaded image"))
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read the uploaded image"))
	}

	volunteer, svcErr := s.volunteerService.CreateVolunteer(c.Context(), service.CreateVolunteerInput{
		Name:          c.FormValue("name"),
		Role:          c.FormValue("role"),
		Bio:           c.FormValue("bio"),
		ImageFilename: fileHeader.Filename,
		ImageData:     data,
	})
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.Status(fiber.StatusCreated).JSON(volunteer)
}

// GetVolunteerImage handles GET /api/volunteers/:id/image. A missing stored
// file serves the placeholder rather than an error.
func (s *Server) GetVolunteerImage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	data, contentType, svcErr := s.volunteerService.ResolveImage(c.Context(), id)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}
