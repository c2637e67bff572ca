package seed

import (
	"fmt"

	"murmur/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInGroup is a permanent system group.
type BuiltInGroup struct {
	Title       string
	Slug        string
	Description string
}

// BuiltInGroups defines the permanent system groups every environment gets.
var BuiltInGroups = []BuiltInGroup{
	{Title: "The Commons", Slug: "commons", Description: "General conversation for Murmur."},
	{Title: "Announcements", Slug: "announcements", Description: "Platform news and updates."},
	{Title: "Field Notes", Slug: "field-notes", Description: "Observations from daily life."},
	{Title: "The Reading Room", Slug: "reading-room", Description: "Books, essays, and long reads."},
	{Title: "The Darkroom", Slug: "darkroom", Description: "Photography and visual posts."},
	{Title: "Night Shift", Slug: "night-shift", Description: "For the insomniacs and late writers."},
	{Title: "The Kitchen Table", Slug: "kitchen-table", Description: "Food, cooking, and recipes."},
	{Title: "Trailheads", Slug: "trailheads", Description: "Travel logs and outdoor writing."},
}

// Groups seeds the permanent built-in groups. Existing rows are refreshed in
// place keyed on slug, so the seeder is safe to run repeatedly.
func Groups(db *gorm.DB) error {
	for _, item := range BuiltInGroups {
		group := models.Group{
			Title:       item.Title,
			Slug:        item.Slug,
			Description: item.Description,
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "updated_at"}),
		}).Create(&group).Error
		if err != nil {
			return fmt.Errorf("seed built-in group %s: %w", item.Slug, err)
		}
	}

	return nil
}
