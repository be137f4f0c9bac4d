package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"wecare/internal/models"
	"wecare/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tinyPNG returns a valid 1x1 PNG for upload tests.
func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return buf.Bytes()
}

func passthroughFileStore() *fileStoreStub {
	return &fileStoreStub{
		storeFn:   func(filename string, _ []byte) (string, error) { return filename, nil },
		resolveFn: func(_ string) ([]byte, error) { return nil, storage.ErrNotFound },
	}
}

func TestVolunteerService_CreateVolunteer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var created *models.Volunteer
		repo := noopVolunteerRepo()
		repo.createFn = func(_ context.Context, v *models.Volunteer) error {
			created = v
			return nil
		}
		svc := NewVolunteerService(repo, passthroughFileStore())

		v, err := svc.CreateVolunteer(ctx, CreateVolunteerInput{
			Name:          "Dr. Achieng",
			Role:          "Psychologist",
			Bio:           "Ten years of community practice.",
			ImageFilename: "achieng.png",
			ImageData:     tinyPNG(t),
		})
		require.NoError(t, err)
		assert.Equal(t, "achieng.png", v.ImageRef)
		require.NotNil(t, created)
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()
		svc := NewVolunteerService(noopVolunteerRepo(), passthroughFileStore())
		_, err := svc.CreateVolunteer(ctx, CreateVolunteerInput{
			Name:      "Dr. Achieng",
			Role:      "  ",
			Bio:       "bio",
			ImageData: tinyPNG(t),
		})
		assertValidationError(t, err)
	})

	t.Run("missing image", func(t *testing.T) {
		t.Parallel()
		svc := NewVolunteerService(noopVolunteerRepo(), passthroughFileStore())
		_, err := svc.CreateVolunteer(ctx, CreateVolunteerInput{
			Name: "Dr. Achieng", Role: "Psychologist", Bio: "bio",
		})
		assertValidationError(t, err)
	})

	t.Run("non-image payload rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewVolunteerService(noopVolunteerRepo(), passthroughFileStore())
		_, err := svc.CreateVolunteer(ctx, CreateVolunteerInput{
			Name: "Dr. Achieng", Role: "Psychologist", Bio: "bio",
			ImageFilename: "notes.txt",
			ImageData:     []byte("just some text, not pixels"),
		})
		assertValidationError(t, err)
	})

	t.Run("truncated image rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewVolunteerService(noopVolunteerRepo(), passthroughFileStore())
		data := tinyPNG(t)
		_, err := svc.CreateVolunteer(ctx, CreateVolunteerInput{
			Name: "Dr. Achieng", Role: "Psychologist", Bio: "bio",
			ImageFilename: "broken.png",
			ImageData:     data[:12],
		})
		assertValidationError(t, err)
	})
}

func TestVolunteerService_ResolveImage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("serves stored bytes with detected type", func(t *testing.T) {
		t.Parallel()
		img := tinyPNG(t)
		repo := noopVolunteerRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Volunteer, error) {
			return &models.Volunteer{ID: id, ImageRef: "a.png"}, nil
		}
		files := &fileStoreStub{
			storeFn:   func(filename string, _ []byte) (string, error) { return filename, nil },
			resolveFn: func(_ string) ([]byte, error) { return img, nil },
		}
		svc := NewVolunteerService(repo, files)

		data, contentType, err := svc.ResolveImage(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, img, data)
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("dangling reference degrades to placeholder", func(t *testing.T) {
		t.Parallel()
		repo := noopVolunteerRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Volunteer, error) {
			return &models.Volunteer{ID: id, ImageRef: "gone.png"}, nil
		}
		svc := NewVolunteerService(repo, passthroughFileStore())

		data, contentType, err := svc.ResolveImage(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, storage.PlaceholderImage(), data)
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("unknown volunteer", func(t *testing.T) {
		t.Parallel()
		repo := noopVolunteerRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Volunteer, error) {
			return nil, models.NewNotFoundError("Volunteer", id)
		}
		svc := NewVolunteerService(repo, passthroughFileStore())

		_, _, err := svc.ResolveImage(ctx, 42)
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}
