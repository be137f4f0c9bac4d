// Package seed provides database seeding utilities for development and
// demo environments.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"wecare/internal/auth"
	"wecare/internal/models"
	"wecare/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DemoPassword is the shared password for every seeded account.
const DemoPassword = "password123"

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with demo data. Seeded content is written
// through GORM directly; it is curated to be supportive, so it does not go
// through the moderation gate.
type Seeder struct {
	db    *gorm.DB
	files storage.FileStore
	rand  *rand.Rand
}

// NewSeeder creates a Seeder bound to the given database and file store.
func NewSeeder(db *gorm.DB, files storage.FileStore) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:    db,
		files: files,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes a full seeding pass: admin account, members, forum content
// and the volunteer directory.
func (s *Seeder) Run(opts Options) error {
	slog.Info("starting database seeding",
		slog.Int("users", opts.NumUsers),
		slog.Int("posts", opts.NumPosts),
	)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			slog.Warn("could not clear existing data, continuing anyway",
				slog.String("error", err.Error()))
		}
	}

	if _, err := s.EnsureAdmin(); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	users, err := s.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	slog.Info("seeded members", slog.Int("count", len(users)))

	posts, err := s.CreatePosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	slog.Info("seeded posts", slog.Int("count", len(posts)))

	if err := s.CreateComments(users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	volunteers, err := s.CreateVolunteers()
	if err != nil {
		return fmt.Errorf("failed to create volunteers: %w", err)
	}
	slog.Info("seeded volunteer directory", slog.Int("count", len(volunteers)))

	slog.Info("database seeding completed")
	return nil
}

// ClearAll removes all seedable rows. Table order respects foreign keys.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.Comment{}, &models.Post{}, &models.Volunteer{}, &models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// EnsureAdmin creates the demo admin account if it does not exist yet.
func (s *Seeder) EnsureAdmin() (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	digest, err := auth.HashSecret(DemoPassword)
	if err != nil {
		return nil, err
	}
	admin := &models.User{Username: "admin", Password: digest, Role: models.RoleAdmin}
	if err := s.db.Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

// CreateUsers persists n member accounts with generated usernames. The
// password digest is computed once; bcrypt per user would dominate the run.
func (s *Seeder) CreateUsers(n int) ([]*models.User, error) {
	digest, err := auth.HashSecret(DemoPassword)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Password: digest,
			Role:     models.RoleUser,
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreatePosts spreads n forum posts across the given members with realistic
// creation times over the past weeks. Roughly one post in five is anonymous.
func (s *Seeder) CreatePosts(users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		post := &models.Post{
			Content:   s.postContent(),
			UserID:    author.ID,
			Anonymous: s.rand.Intn(5) == 0,
			CreatedAt: s.pastTime(45),
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// CreateComments adds zero to three replies per post, dated after the post.
func (s *Seeder) CreateComments(users []*models.User, posts []*models.Post) error {
	if len(users) == 0 {
		return nil
	}
	for _, post := range posts {
		for i := 0; i < s.rand.Intn(4); i++ {
			author := users[s.rand.Intn(len(users))]
			comment := &models.Comment{
				Content:   replyTemplates[s.rand.Intn(len(replyTemplates))],
				PostID:    post.ID,
				UserID:    author.ID,
				CreatedAt: post.CreatedAt.Add(time.Duration(1+s.rand.Intn(72)) * time.Hour),
			}
			if err := s.db.Create(comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateVolunteers fills the directory with the demo roster. Each entry gets
// the placeholder image stored as its profile picture.
func (s *Seeder) CreateVolunteers() ([]*models.Volunteer, error) {
	volunteers := make([]*models.Volunteer, 0, len(volunteerRoles))
	for _, role := range volunteerRoles {
		name := gofakeit.Name()
		ref, err := s.files.Store(fmt.Sprintf("%s.png", gofakeit.UUID()), storage.PlaceholderImage())
		if err != nil {
			return nil, err
		}
		volunteer := &models.Volunteer{
			Name:     name,
			Role:     role,
			Bio:      fmt.Sprintf("%s has supported the community as a %s for %d years.", name, role, 1+s.rand.Intn(12)),
			ImageRef: ref,
		}
		if err := s.db.Create(volunteer).Error; err != nil {
			return nil, err
		}
		volunteers = append(volunteers, volunteer)
	}
	return volunteers, nil
}

func (s *Seeder) postContent() string {
	template := postTemplates[s.rand.Intn(len(postTemplates))]
	return fmt.Sprintf(template, postTopics[s.rand.Intn(len(postTopics))])
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	back := time.Duration(s.rand.Intn(maxDays*24*60)) * time.Minute
	return time.Now().Add(-back)
}

// Seeded forum content stays within the moderation rules on purpose; the
// demo environment should look like a healthy community.
var (
	postTopics = []string{
		"exam pressure", "a difficult week at work", "trouble sleeping",
		"feeling lonely", "managing my budget", "a family disagreement",
		"starting therapy", "moving to a new city", "burnout",
	}

	postTemplates = []string{
		"I've been dealing with %s lately and wanted to share how it's going.",
		"Does anyone have advice on coping with %s? Talking here has helped before.",
		"Small win today: I took a first step towards handling %s.",
		"Grateful for this community. Opening up about %s was easier than I expected.",
		"Struggling a bit with %s this week, but taking it one day at a time.",
	}

	replyTemplates = []string{
		"Thank you for sharing this, it takes courage.",
		"I went through something similar. It does get better.",
		"Sending support your way. Have you tried the breathing exercises from the hub?",
		"You're not alone in this. Keep us posted.",
		"That small step matters more than you think. Well done.",
	}

	volunteerRoles = []string{
		"Counselor", "Psychologist", "Peer Mentor", "Social Worker",
		"Crisis Responder", "Community Health Worker",
	}
)
