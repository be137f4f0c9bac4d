package server

import (
	"os"
	"path/filepath"

	"wecare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Article is a curated educational-hub entry. Content is editorial, not
// user-generated, so it ships with the binary.
type Article struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Link    string   `json:"link,omitempty"`
	Tips    []string `json:"tips,omitempty"`
}

var hubArticles = []Article{
	{
		Title:   "Self-Care Tips",
		Summary: "Small daily habits that protect your well-being.",
		Tips: []string{
			"Breathe deeply for 2 minutes when feeling overwhelmed.",
			"Take breaks: 5-minute walks every hour help refresh your mind.",
			"Sleep matters: aim for 7-9 hours per night.",
			"Journaling: write down your emotions to gain clarity.",
			"Mindful eating: pay attention to your food and how it makes you feel.",
		},
	},
	{
		Title: "Understanding Anxiety",
		Summary: "Anxiety is a natural response to stress, but excessive worry can disrupt daily life. " +
			"Learn to recognize symptoms like racing thoughts, restlessness, and tension. " +
			"Practice grounding techniques and seek help when needed.",
		Link: "https://www.mayoclinic.org/diseases-conditions/anxiety/symptoms-causes/syc-20350961",
	},
	{
		Title: "Depression: What You Should Know",
		Summary: "Depression is more than sadness; it affects sleep, appetite, and motivation. " +
			"Early support can prevent worsening. Talking to someone and seeking help is brave.",
		Link: "https://www.who.int/news-room/fact-sheets/detail/depression",
	},
	{
		Title: "Stress Management Strategies",
		Summary: "Not all stress is bad, but chronic stress can weaken your immune system. " +
			"Tips include deep breathing, stretching, reducing caffeine, and healthy boundaries. " +
			"Try this quick exercise: name 3 things you can see, hear, and feel right now.",
		Link: "https://www.apa.org/topics/stress",
	},
	{
		Title:   "Trusted Mental Health Resources",
		Summary: "External organizations offering screening tools, helplines, and therapist directories.",
		Link:    "https://www.who.int/mental_health/en/",
	},
}

// GetArticles handles GET /api/hub/articles
func (s *Server) GetArticles(c *fiber.Ctx) error {
	return c.JSON(hubArticles)
}

// DownloadGuide handles GET /api/hub/guide. The guide PDF is optional
// deployment content; its absence is a 404, not a server fault.
func (s *Server) DownloadGuide(c *fiber.Ctx) error {
	path := filepath.Join(s.config.ResourceDir, "self-care-guide.pdf")
	if _, err := os.Stat(path); err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Self-care guide", "self-care-guide.pdf"))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="self-care-guide.pdf"`)
	return c.SendFile(path)
}
