package main

import (
	"github.com/uimock/uimock"
	"github.com/uimock/uimock/scene"
)

// dailyAgenda is the four-frame scheduling concept: the day list, one item
// opened, the add form, and the week overview.
func dailyAgenda(pal *scene.Palette) *scene.Scene {
	s := scene.NewScene(1880, 860, pal)
	c := s.Canvas()

	c.SetFont(pal.Title)
	c.SetColor(pal.Ink)
	c.DrawStringTopLeft("Daily agenda", 40, 16)

	items := []struct {
		time string
		name string
		done bool
	}{
		{"07:30", "Morning run", true},
		{"09:00", "Standup + triage", true},
		{"11:00", "Deep work block", false},
		{"14:00", "1:1 with Sam", false},
		{"16:30", "Review sketches", false},
		{"19:00", "Climbing gym", false},
	}

	// Frame 1: the day, struck-through where done.
	f1 := scene.PhoneFrame(c, pal, 40, 88, 420, 700, "Tuesday")
	scene.TabGroup{Labels: []string{"Day", "Week", "Month"}, Selected: 0}.
		Draw(c, pal, f1.X+24, f1.Y+104, 110, 32, 10)

	scene.RowSeries(f1, 160, 84, len(items), func(i int, y float64) {
		row := uimock.XYWH(f1.X+24, y, 372, 70)
		scene.Card(c, pal, row, 14)

		c.SetFont(pal.Caption)
		c.SetColor(pal.Muted)
		c.DrawStringTopLeft(items[i].time, row.X0+16, y+26)

		c.SetFont(pal.Body)
		if items[i].done {
			c.SetColor(pal.Muted)
		} else {
			c.SetColor(pal.Ink)
		}
		c.DrawStringTopLeft(items[i].name, row.X0+76, y+24)
		if items[i].done {
			w, _ := c.MeasureString(items[i].name)
			c.SetLineWidth(1.5)
			c.DrawLine(row.X0+76, y+35, row.X0+76+w, y+35)
			c.Stroke()
		}
	})

	// Frame 2: one item opened.
	f2 := scene.PhoneFrame(c, pal, 500, 88, 420, 700, "Deep work block")
	c.SetFont(pal.Title)
	c.SetColor(pal.Ink)
	c.DrawStringAnchored("11:00 – 13:00", f2.CenterX(), f2.Y+150, 0.5, 0.5)

	scene.ColumnSeries(f2, 24, 126, 3, func(i int, x float64) {
		labels := [3]string{"Streak", "This week", "Focus"}
		values := [3]string{"8 days", "6 h", "92%"}
		scene.StatPill(c, pal, uimock.XYWH(x, f2.Y+200, 114, 64), labels[i], values[i], pal.Ink)
	})

	scene.Card(c, pal, f2.Rect(24, 300, 372, 180), 14)
	c.SetFont(pal.Caption)
	c.SetColor(pal.Muted)
	c.DrawStringTopLeft("Notes", f2.X+40, f2.Y+316)
	c.SetFont(pal.Body)
	c.SetColor(pal.Ink)
	c.DrawStringTopLeft("Ship the rasterizer cleanup.", f2.X+40, f2.Y+344)
	c.DrawStringTopLeft("No meetings, phone in drawer.", f2.X+40, f2.Y+372)

	c.SetColor(pal.Accent)
	c.DrawRoundedRectangle(f2.X+24, f2.Y+600, 372, 52, 26)
	c.Fill()
	c.SetFont(pal.Heading)
	c.SetColor(pal.AccentText)
	c.DrawStringAnchored("Start timer", f2.CenterX(), f2.Y+626, 0.5, 0.5)

	// Frame 3: add item form.
	f3 := scene.PhoneFrame(c, pal, 960, 88, 420, 700, "New item")
	fields := []struct {
		label string
		value string
	}{
		{"Title", "Physio appointment"},
		{"When", "Thu 08:15"},
		{"Repeat", "Weekly"},
		{"Remind", "30 min before"},
	}
	scene.RowSeries(f3, 120, 92, len(fields), func(i int, y float64) {
		row := uimock.XYWH(f3.X+24, y, 372, 76)
		scene.Card(c, pal, row, 14)
		c.SetFont(pal.Caption)
		c.SetColor(pal.Muted)
		c.DrawStringTopLeft(fields[i].label, row.X0+16, y+12)
		c.SetFont(pal.Body)
		c.SetColor(pal.Ink)
		c.DrawStringTopLeft(fields[i].value, row.X0+16, y+38)
	})

	c.SetColor(pal.Accent)
	c.DrawRoundedRectangle(f3.X+24, f3.Y+600, 372, 52, 26)
	c.Fill()
	c.SetFont(pal.Heading)
	c.SetColor(pal.AccentText)
	c.DrawStringAnchored("Add to Tuesday", f3.CenterX(), f3.Y+626, 0.5, 0.5)

	// Frame 4: week overview with authored bar heights.
	f4 := scene.PhoneFrame(c, pal, 1420, 88, 420, 700, "This week")
	scene.TabGroup{Labels: []string{"Day", "Week", "Month"}, Selected: 1}.
		Draw(c, pal, f4.X+24, f4.Y+104, 110, 32, 10)

	days := [7]string{"M", "T", "W", "T", "F", "S", "S"}
	bars := [7]float64{180, 240, 140, 200, 90, 40, 120}
	baseY := f4.Y + 470
	scene.ColumnSeries(f4, 36, 52, 7, func(i int, x float64) {
		if i == 1 {
			c.SetColor(pal.Accent)
		} else {
			c.SetColor(pal.Border)
		}
		c.DrawRoundedRectangle(x, baseY-bars[i], 32, bars[i], 8)
		c.Fill()
		c.SetFont(pal.Caption)
		c.SetColor(pal.Muted)
		c.DrawStringAnchored(days[i], x+16, baseY+18, 0.5, 0.5)
	})

	scene.StatPill(c, pal, f4.Rect(24, 540, 174, 64), "Planned", "31 h", pal.Ink)
	scene.StatPill(c, pal, f4.Rect(222, 540, 174, 64), "Kept", "26 h", pal.OK)

	return s
}
