package main

import (
	"github.com/uimock/uimock"
	"github.com/uimock/uimock/scene"
)

// teamDirectory is the people concept: the directory list, one profile,
// and the invite flow, with the connected-UX notes below.
func teamDirectory(pal *scene.Palette) *scene.Scene {
	s := scene.NewScene(1460, 900, pal)
	c := s.Canvas()

	c.SetFont(pal.Title)
	c.SetColor(pal.Ink)
	c.DrawStringTopLeft("Team directory", 40, 16)

	people := []struct {
		name string
		role string
	}{
		{"Mara Voss", "Site lead"},
		{"Jonah Petty", "Surveyor"},
		{"Ines Calder", "Structures"},
		{"Theo Brandt", "Drainage"},
		{"Lena Okafor", "Permits"},
	}

	initial := func(name string) string { return name[:1] }

	// Frame 1: people list with avatar initials.
	f1 := scene.PhoneFrame(c, pal, 40, 88, 420, 700, "People")
	scene.RowSeries(f1, 110, 92, len(people), func(i int, y float64) {
		row := uimock.XYWH(f1.X+24, y, 372, 78)
		scene.Card(c, pal, row, 14)

		c.SetColor(pal.Accent)
		c.DrawCircle(row.X0+40, y+39, 22)
		c.Fill()
		c.SetFont(pal.Heading)
		c.SetColor(pal.AccentText)
		c.DrawStringAnchored(initial(people[i].name), row.X0+40, y+39, 0.5, 0.5)

		c.SetFont(pal.Body)
		c.SetColor(pal.Ink)
		c.DrawStringTopLeft(people[i].name, row.X0+76, y+16)
		c.SetFont(pal.Caption)
		c.SetColor(pal.Muted)
		c.DrawStringTopLeft(people[i].role, row.X0+76, y+42)
	})

	// Frame 2: Mara's profile.
	f2 := scene.PhoneFrame(c, pal, 520, 88, 420, 700, "")
	c.SetColor(pal.Accent)
	c.DrawCircle(f2.CenterX(), f2.Y+170, 52)
	c.Fill()
	c.SetFont(pal.Title)
	c.SetColor(pal.AccentText)
	c.DrawStringAnchored("M", f2.CenterX(), f2.Y+170, 0.5, 0.5)

	c.SetFont(pal.Heading)
	c.SetColor(pal.Ink)
	c.DrawStringAnchored("Mara Voss", f2.CenterX(), f2.Y+252, 0.5, 0.5)
	c.SetFont(pal.Caption)
	c.SetColor(pal.Muted)
	c.DrawStringAnchored("Site lead · Harbor district", f2.CenterX(), f2.Y+280, 0.5, 0.5)

	scene.ColumnSeries(f2, 24, 126, 3, func(i int, x float64) {
		labels := [3]string{"Visits", "Notes", "Open"}
		values := [3]string{"58", "214", "3"}
		scene.StatPill(c, pal, uimock.XYWH(x, f2.Y+320, 114, 64), labels[i], values[i], pal.Ink)
	})

	actions := []string{"Message", "Assign visit", "Share folder"}
	scene.RowSeries(f2, 420, 68, len(actions), func(i int, y float64) {
		row := uimock.XYWH(f2.X+24, y, 372, 52)
		scene.Card(c, pal, row, 26)
		c.SetFont(pal.Body)
		c.SetColor(pal.Ink)
		c.DrawStringAnchored(actions[i], row.Center().X, row.Center().Y, 0.5, 0.5)
	})

	// Frame 3: invite flow.
	f3 := scene.PhoneFrame(c, pal, 1000, 88, 420, 700, "Invite")
	scene.Card(c, pal, f3.Rect(24, 120, 372, 76), 14)
	c.SetFont(pal.Caption)
	c.SetColor(pal.Muted)
	c.DrawStringTopLeft("Email", f3.X+40, f3.Y+132)
	c.SetFont(pal.Body)
	c.SetColor(pal.Ink)
	c.DrawStringTopLeft("name@example.com", f3.X+40, f3.Y+158)

	c.SetFont(pal.Caption)
	c.SetColor(pal.Muted)
	c.DrawStringTopLeft("Role", f3.X+24, f3.Y+224)
	scene.TabGroup{Labels: []string{"Viewer", "Editor", "Lead"}, Selected: 1}.
		Draw(c, pal, f3.X+24, f3.Y+248, 110, 32, 10)

	scene.Card(c, pal, f3.Rect(24, 320, 372, 120), 14)
	c.SetFont(pal.Caption)
	c.SetColor(pal.Muted)
	c.DrawStringTopLeft("Editors can", f3.X+40, f3.Y+334)
	c.SetFont(pal.Body)
	c.SetColor(pal.Ink)
	c.DrawStringTopLeft("Add notes and photos", f3.X+40, f3.Y+360)
	c.DrawStringTopLeft("Plan and reorder visits", f3.X+40, f3.Y+388)

	c.SetColor(pal.Accent)
	c.DrawRoundedRectangle(f3.X+24, f3.Y+600, 372, 52, 26)
	c.Fill()
	c.SetFont(pal.Heading)
	c.SetColor(pal.AccentText)
	c.DrawStringAnchored("Send invite", f3.CenterX(), f3.Y+626, 0.5, 0.5)

	scene.AnnotationPanel(c, pal,
		uimock.R(40, 800, 1420, 884),
		"Connected UX",
		[]string{"Profiles, visits, and folders share one people model — assigning a visit from a profile deep-links into the planner."},
		24)

	return s
}
