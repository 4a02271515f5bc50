package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqs = []FAQ{
	{
		Question: "How do I book a venue?",
		Answer:   "Browse through our venues, select your preferred date, and click the \"Book Now\" button. You'll need to be logged in to complete the booking.",
	},
	{
		Question: "Can I cancel my booking?",
		Answer:   "Yes, you can cancel your booking through your dashboard. Please check the venue's cancellation policy for any applicable fees.",
	},
	{
		Question: "What payment methods are accepted?",
		Answer:   "We currently accept major credit cards and bank transfers. More payment options will be added soon.",
	},
}

func GetFAQs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"faqs": faqs,
		"contact": fiber.Map{
			"email": "support@venuebook.com",
			"phone": "1-800-VENUE-BOOK",
			"hours": "Monday - Friday, 9 AM - 6 PM EST",
		},
	})
}
