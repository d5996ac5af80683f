package store

import "ticketpub/internal/models"

// DemoDrafts returns the four events the storefront ships with.
func DemoDrafts() []models.EventDraft {
	return []models.EventDraft{
		{
			Title:            "Granite Riff Night",
			ShortDescription: "Classic rock evening with three live bands",
			FullDescription:  "Three bands, one stage, riffs until the small hours. Doors open at eight, support acts from nine.",
			Genre:            "Rock",
			GenreColor:       models.ColorBlue,
			Intensity:        models.IntensityChill,
		},
		{
			Title:            "Neon Pop Parade",
			ShortDescription: "Open-air pop showcase for the whole family",
			FullDescription:  "An open-air afternoon of pop acts, food stalls and a confetti finale. Family friendly, rain or shine.",
			Genre:            "Pop",
			GenreColor:       models.ColorGreen,
			Intensity:        models.IntensityChill,
		},
		{
			Title:            "Basement Junglist Session",
			ShortDescription: "Drum & bass all-nighter in the old brewery cellar",
			FullDescription:  "Rolling breaks downstairs, liquid sets in the side room. Two floors, six DJs, strictly vinyl until midnight.",
			Genre:            "Drum & Bass",
			GenreColor:       models.ColorPurple,
			Intensity:        models.IntensityMixed,
		},
		{
			Title:            "Warehouse Techno Marathon",
			ShortDescription: "Twelve hours of techno across two warehouse floors",
			FullDescription:  "Noon to midnight, no breaks, industrial sound system. Earplugs available at the door, re-entry allowed.",
			Genre:            "Techno",
			GenreColor:       models.ColorYellow,
			Intensity:        models.IntensityHardcore,
		},
	}
}

// SeedDemo adds the demo events to the catalog.
func SeedDemo(catalog *Catalog) error {
	for _, draft := range DemoDrafts() {
		if _, err := catalog.Add(draft); err != nil {
			return err
		}
	}
	return nil
}
