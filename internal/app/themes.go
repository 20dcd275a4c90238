package app

import "retrospace/internal/models"

// PresetThemes are the built-in profile looks. New accounts get the first
// one; CycleTheme steps through the list in order.
var PresetThemes = []models.UserTheme{
	{
		BackgroundColor: "#0d0d2b",
		FontFamily:      "Verdana, sans-serif",
		TextColor:       "#e0e0ff",
		HeaderColor:     "#ff00cc",
		PanelColor:      "#1a1a3e",
	},
	{
		BackgroundColor: "#f0e6d2",
		FontFamily:      "Georgia, serif",
		TextColor:       "#3b2f2f",
		HeaderColor:     "#8b4513",
		PanelColor:      "#fff8e7",
	},
	{
		BackgroundColor: "#000000",
		FontFamily:      "Courier New, monospace",
		TextColor:       "#00ff41",
		HeaderColor:     "#008f11",
		PanelColor:      "#0a0a0a",
	},
	{
		BackgroundColor: "#ffd1dc",
		FontFamily:      "Comic Sans MS, cursive",
		TextColor:       "#5d1049",
		HeaderColor:     "#ff69b4",
		PanelColor:      "#fff0f5",
	},
}

// nextTheme returns the preset after current, or the first preset when
// current is customized beyond recognition.
func nextTheme(current models.UserTheme) models.UserTheme {
	for i := range PresetThemes {
		if PresetThemes[i] == current {
			return PresetThemes[(i+1)%len(PresetThemes)]
		}
	}
	return PresetThemes[0]
}
