package memory

import (
	"time"

	"github.com/asenlucky9/ikoha-community/internal/models"
)

// seed.go — стартовый набор данных сайта сообщества Ikoha.
// Набор фиксирован: операций создания/изменения статей в сервисе нет.

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t.UTC()
}

// SeedArticles возвращает стартовый набор новостных статей.
func SeedArticles() []models.Article {
	return []models.Article{
		{
			ID:      "1",
			Title:   "Ikoha Community Development Initiative Launched",
			Slug:    "ikoha-community-development-initiative-launched",
			Excerpt: "A new development initiative has been launched to improve infrastructure and community services in Ikoha.",
			Content: `<h2>Ikoha Community Development Initiative</h2>
<p>We are excited to announce the launch of a comprehensive development initiative aimed at improving infrastructure and community services throughout Ikoha Community.</p>
<p>This initiative focuses on several key areas including road construction, water supply, healthcare facilities, and educational infrastructure. The project is expected to significantly enhance the quality of life for all residents.</p>
<ul>
<li>Improve road connectivity within and around the community</li>
<li>Enhance water supply systems</li>
<li>Upgrade healthcare facilities</li>
<li>Support educational development</li>
</ul>`,
			Category:    models.CategoryDevelopment,
			IsPublished: true,
			PublishedAt: mustTime("2024-12-15T10:00:00Z"),
			ViewsCount:  245,
			CreatedAt:   mustTime("2024-12-15T10:00:00Z"),
			UpdatedAt:   mustTime("2024-12-15T10:00:00Z"),
		},
		{
			ID:      "2",
			Title:   "Mineral Resource Survey Completed",
			Slug:    "mineral-resource-survey-completed",
			Excerpt: "Comprehensive survey of mineral resources in Ikoha has been completed, revealing significant potential.",
			Content: `<h2>Mineral Resource Survey Results</h2>
<p>A comprehensive geological survey of Ikoha Community has been completed, revealing significant mineral resource potential.</p>
<p>The survey identified several valuable mineral deposits including limestone, granite, and other construction materials. These resources present opportunities for sustainable economic development while ensuring environmental protection.</p>
<ul>
<li>Detailed mapping of mineral deposits</li>
<li>Assessment of extraction feasibility</li>
<li>Environmental impact considerations</li>
</ul>`,
			Category:    models.CategoryMinerals,
			IsPublished: true,
			PublishedAt: mustTime("2024-12-10T14:30:00Z"),
			ViewsCount:  189,
			CreatedAt:   mustTime("2024-12-10T14:30:00Z"),
			UpdatedAt:   mustTime("2024-12-10T14:30:00Z"),
		},
		{
			ID:      "3",
			Title:   "Annual Festival Preparations Underway",
			Slug:    "annual-festival-preparations-underway",
			Excerpt: "Preparations for the Ikoha Annual Festival in January are in full swing.",
			Content: `<h2>Ikoha Annual Festival 2025</h2>
<p>Preparations for the Ikoha Annual Festival are in full swing! The festival, scheduled for January 1st, 2025, promises to be a grand celebration of our culture, traditions, and community spirit.</p>
<p>This year's festival will feature traditional performances, cultural displays, local cuisine, and various entertainment activities for all ages.</p>
<ul>
<li>Traditional dance performances</li>
<li>Cultural exhibitions</li>
<li>Local food vendors</li>
<li>Musical performances</li>
</ul>`,
			Category:    models.CategoryEvents,
			IsPublished: true,
			PublishedAt: mustTime("2024-12-05T09:15:00Z"),
			ViewsCount:  312,
			CreatedAt:   mustTime("2024-12-05T09:15:00Z"),
			UpdatedAt:   mustTime("2024-12-05T09:15:00Z"),
		},
		{
			ID:      "4",
			Title:   "New Road Construction Project Approved",
			Slug:    "new-road-construction-project-approved",
			Excerpt: "The community has approved a new road construction project to improve connectivity.",
			Content: `<h2>Road Construction Project Approved</h2>
<p>The Ikoha Community Council has approved a major road construction project that will significantly improve connectivity within and around the community.</p>
<ul>
<li>Construction of 5km of new roads</li>
<li>Rehabilitation of existing road networks</li>
<li>Installation of proper drainage systems</li>
<li>Road signage and safety measures</li>
</ul>
<p>Construction is expected to begin in the coming months and will be completed in phases to minimize disruption to daily activities.</p>`,
			Category:    models.CategoryDevelopment,
			IsPublished: true,
			PublishedAt: mustTime("2024-11-28T11:00:00Z"),
			ViewsCount:  156,
			CreatedAt:   mustTime("2024-11-28T11:00:00Z"),
			UpdatedAt:   mustTime("2024-11-28T11:00:00Z"),
		},
		{
			ID:      "5",
			Title:   "Community Meeting Scheduled",
			Slug:    "community-meeting-scheduled",
			Excerpt: "A general community meeting has been scheduled to discuss upcoming projects and initiatives.",
			Content: `<h2>Community Meeting Announcement</h2>
<p>A general community meeting has been scheduled to discuss upcoming projects, initiatives, and community development plans.</p>
<ul>
<li>Review of ongoing projects</li>
<li>Discussion of new initiatives</li>
<li>Community concerns and suggestions</li>
<li>Budget and resource allocation</li>
</ul>`,
			Category:    models.CategoryAnnouncements,
			IsPublished: true,
			PublishedAt: mustTime("2024-11-20T08:00:00Z"),
			ViewsCount:  278,
			CreatedAt:   mustTime("2024-11-20T08:00:00Z"),
			UpdatedAt:   mustTime("2024-11-20T08:00:00Z"),
		},
		{
			ID:      "6",
			Title:   "Agricultural Program Expansion",
			Slug:    "agricultural-program-expansion",
			Excerpt: "The agricultural support program is expanding to include more farmers and new crops.",
			Content: `<h2>Agricultural Program Expansion</h2>
<p>The Ikoha Community Agricultural Support Program is expanding to include more farmers and support for new crop varieties.</p>
<p>This expansion aims to increase agricultural productivity, support local farmers, and enhance food security in the community.</p>
<ul>
<li>Training and capacity building for farmers</li>
<li>Access to improved seeds and farming inputs</li>
<li>Market linkage support</li>
</ul>`,
			Category:    models.CategoryGeneral,
			IsPublished: true,
			PublishedAt: mustTime("2024-11-15T13:45:00Z"),
			ViewsCount:  201,
			CreatedAt:   mustTime("2024-11-15T13:45:00Z"),
			UpdatedAt:   mustTime("2024-11-15T13:45:00Z"),
		},
	}
}

// SeedEvents возвращает стартовый набор событий сообщества.
func SeedEvents() []models.Event {
	return []models.Event{
		{
			ID:              "1",
			Title:           "Ikoha Annual Festival 2025",
			Description:     "Ikoha Community celebrates its annual cultural festival every January, with the main celebration held on the 1st of January each year.",
			StartsAt:        mustTime("2025-01-01T09:00:00Z"),
			EndsAt:          mustTime("2025-01-01T18:00:00Z"),
			Location:        "Ikoha Community, Ovia South-West, Edo State",
			Type:            models.EventTypeFestival,
			Organizer:       "Festival Committee",
			Capacity:        500,
			RegisteredCount: 234,
			ImageURL:        "/images/logo/communitypicwithpeople.png",
		},
		{
			ID:              "2",
			Title:           "Community Development Meeting",
			Description:     "Monthly community development meeting to discuss ongoing projects and new initiatives.",
			StartsAt:        mustTime("2025-01-15T10:00:00Z"),
			EndsAt:          mustTime("2025-01-15T12:00:00Z"),
			Location:        "Community Hall, Ikoha",
			Type:            models.EventTypeMeeting,
			Organizer:       "Community Council",
			Capacity:        100,
			RegisteredCount: 45,
		},
		{
			ID:              "3",
			Title:           "Agricultural Workshop",
			Description:     "Workshop on modern farming techniques and sustainable agriculture practices.",
			StartsAt:        mustTime("2025-02-05T09:00:00Z"),
			EndsAt:          mustTime("2025-02-05T16:00:00Z"),
			Location:        "Agricultural Center, Ikoha",
			Type:            models.EventTypeWorkshop,
			Organizer:       "Agriculture Department",
			Capacity:        50,
			RegisteredCount: 32,
		},
		{
			ID:              "4",
			Title:           "Youth Empowerment Program",
			Description:     "Program focused on empowering young people through skills training and mentorship.",
			StartsAt:        mustTime("2025-02-20T10:00:00Z"),
			EndsAt:          mustTime("2025-02-20T15:00:00Z"),
			Location:        "Youth Center, Ikoha",
			Type:            models.EventTypeWorkshop,
			Organizer:       "Youth Development Committee",
			Capacity:        75,
			RegisteredCount: 28,
		},
	}
}
