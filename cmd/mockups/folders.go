package main

import (
	"github.com/uimock/uimock"
	"github.com/uimock/uimock/scene"
)

// libraryFolders is the folder-organization concept: browse, folder
// detail, and the move sheet, with shared notes below.
func libraryFolders(pal *scene.Palette) *scene.Scene {
	s := scene.NewScene(1460, 900, pal)
	c := s.Canvas()

	c.SetFont(pal.Title)
	c.SetColor(pal.Ink)
	c.DrawStringTopLeft("Library folders", 40, 16)

	folders := []struct {
		name  string
		count string
	}{
		{"Field notes", "24"},
		{"Site photos", "118"},
		{"Interviews", "9"},
		{"Archive", "203"},
		{"Shared with me", "31"},
	}

	// Frame 1: folder list.
	f1 := scene.PhoneFrame(c, pal, 40, 88, 420, 700, "Folders")
	scene.TabGroup{Labels: []string{"All", "Recent", "Shared"}, Selected: 0}.
		Draw(c, pal, f1.X+24, f1.Y+104, 110, 32, 10)

	scene.RowSeries(f1, 160, 92, len(folders), func(i int, y float64) {
		row := uimock.XYWH(f1.X+24, y, 372, 78)
		scene.Card(c, pal, row, 14)

		// Folder glyph.
		c.SetColor(pal.Accent)
		c.DrawRoundedRectangle(row.X0+16, y+24, 30, 24, 5)
		c.Fill()
		c.DrawRoundedRectangle(row.X0+16, y+20, 14, 8, 3)
		c.Fill()

		c.SetFont(pal.Body)
		c.SetColor(pal.Ink)
		c.DrawStringTopLeft(folders[i].name, row.X0+62, y+18)
		c.SetFont(pal.Caption)
		c.SetColor(pal.Muted)
		c.DrawStringTopLeft(folders[i].count+" items", row.X0+62, y+42)
	})

	// Frame 2: one folder opened, with quick stats.
	f2 := scene.PhoneFrame(c, pal, 520, 88, 420, 700, "Field notes")
	scene.ColumnSeries(f2, 24, 126, 3, func(i int, x float64) {
		labels := [3]string{"Notes", "This week", "Flagged"}
		values := [3]string{"24", "6", "2"}
		colors := [3]uimock.RGBA{pal.Ink, pal.OK, pal.Warn}
		scene.StatPill(c, pal, uimock.XYWH(x, f2.Y+104, 114, 64), labels[i], values[i], colors[i])
	})

	notes := []struct {
		title string
		meta  string
	}{
		{"North wall survey", "Edited 2h ago"},
		{"Drainage follow-up", "Edited yesterday"},
		{"Roof access sketch", "Edited Mon"},
		{"Contractor quotes", "Edited Aug 14"},
		{"Permit checklist", "Edited Aug 9"},
	}
	scene.RowSeries(f2, 196, 84, len(notes), func(i int, y float64) {
		row := uimock.XYWH(f2.X+24, y, 372, 70)
		scene.Card(c, pal, row, 14)
		c.SetFont(pal.Body)
		c.SetColor(pal.Ink)
		c.DrawStringTopLeft(notes[i].title, row.X0+16, y+14)
		c.SetFont(pal.Caption)
		c.SetColor(pal.Muted)
		c.DrawStringTopLeft(notes[i].meta, row.X0+16, y+38)
	})

	// Frame 3: move sheet over a dimmed list.
	f3 := scene.PhoneFrame(c, pal, 1000, 88, 420, 700, "")
	c.SetColor(pal.Border)
	c.DrawRoundedRectangle(f3.X+24, f3.Y+104, 372, 240, 14)
	c.Fill()

	sheet := f3.Rect(12, 300, 396, 388)
	scene.Panel{
		Rect:         sheet,
		Radius:       22,
		Fill:         pal.Surface,
		Outline:      pal.Border,
		OutlineWidth: 2,
	}.Draw(c)
	c.SetFont(pal.Heading)
	c.SetColor(pal.Ink)
	c.DrawStringTopLeft("Move \"North wall survey\" to…", sheet.X0+20, sheet.Y0+20)

	scene.RowSeries(f3, 360, 62, len(folders), func(i int, y float64) {
		if i == 1 {
			c.SetColor(pal.Accent)
			c.DrawRoundedRectangle(sheet.X0+12, y, 372, 52, 12)
			c.Fill()
		}
		c.SetFont(pal.Body)
		if i == 1 {
			c.SetColor(pal.AccentText)
		} else {
			c.SetColor(pal.Ink)
		}
		c.DrawStringTopLeft(folders[i].name, sheet.X0+32, y+15)
	})

	scene.AnnotationPanel(c, pal,
		uimock.R(40, 800, 1420, 884),
		"Concept notes",
		[]string{"Folders are flat, not nested. Moving a note is a single sheet action; counts update in place."},
		24)

	return s
}
