package main

import (
	"github.com/uimock/uimock"
	"github.com/uimock/uimock/scene"
)

// visitPlanner is the site-visit flow: today's list, one visit opened,
// and the route view, connected by flow arrows.
func visitPlanner(pal *scene.Palette) *scene.Scene {
	s := scene.NewScene(1460, 840, pal)
	c := s.Canvas()

	c.SetFont(pal.Title)
	c.SetColor(pal.Ink)
	c.DrawStringTopLeft("Visit planner", 40, 16)

	visits := []struct {
		time  string
		place string
		meta  string
		tint  uimock.RGBA
	}{
		{"08:30", "Harbor warehouse", "Confirmed", pal.OK},
		{"10:15", "Mill St. rooftop", "Awaiting keys", pal.Warn},
		{"13:00", "Eastgate depot", "Confirmed", pal.OK},
		{"15:45", "Canal pump house", "Reschedule?", pal.Warn},
	}

	// Frame 1: today's visits.
	f1 := scene.PhoneFrame(c, pal, 40, 88, 420, 700, "Today")
	scene.RowSeries(f1, 104, 112, len(visits), func(i int, y float64) {
		row := uimock.XYWH(f1.X+24, y, 372, 96)
		scene.Card(c, pal, row, 14)

		c.SetFont(pal.Heading)
		c.SetColor(pal.Ink)
		c.DrawStringTopLeft(visits[i].time, row.X0+16, y+16)
		c.SetFont(pal.Body)
		c.DrawStringTopLeft(visits[i].place, row.X0+86, y+18)

		c.SetColor(visits[i].tint)
		c.DrawCircle(row.X0+92, y+66, 4)
		c.Fill()
		c.SetFont(pal.Caption)
		c.SetColor(pal.Muted)
		c.DrawStringTopLeft(visits[i].meta, row.X0+104, y+57)
	})

	// Frame 2: the 10:15 visit opened.
	f2 := scene.PhoneFrame(c, pal, 520, 88, 420, 700, "Mill St. rooftop")
	c.SetFont(pal.Title)
	c.SetColor(pal.Ink)
	c.DrawStringAnchored("10:15", f2.CenterX(), f2.Y+140, 0.5, 0.5)
	c.SetFont(pal.Caption)
	c.SetColor(pal.Muted)
	c.DrawStringAnchored("45 min on site", f2.CenterX(), f2.Y+172, 0.5, 0.5)

	details := []struct {
		label string
		value string
	}{
		{"Contact", "R. Alvarez — 555 0143"},
		{"Access", "Side gate, code 7741"},
		{"Bring", "Moisture meter, ladder"},
		{"Last visit", "Aug 12 — leak traced"},
	}
	scene.RowSeries(f2, 210, 86, len(details), func(i int, y float64) {
		row := uimock.XYWH(f2.X+24, y, 372, 72)
		scene.Card(c, pal, row, 14)
		c.SetFont(pal.Caption)
		c.SetColor(pal.Muted)
		c.DrawStringTopLeft(details[i].label, row.X0+16, y+12)
		c.SetFont(pal.Body)
		c.SetColor(pal.Ink)
		c.DrawStringTopLeft(details[i].value, row.X0+16, y+34)
	})

	// Frame 3: route with ordered stops.
	f3 := scene.PhoneFrame(c, pal, 1000, 88, 420, 700, "Route")
	lineX, _ := f3.At(70, 0)
	c.SetColor(pal.Border)
	c.SetLineWidth(4)
	c.DrawLine(lineX, f3.Y+150, lineX, f3.Y+150+float64(len(visits)-1)*130)
	c.Stroke()

	scene.RowSeries(f3, 150, 130, len(visits), func(i int, y float64) {
		c.SetColor(pal.Accent)
		c.DrawCircle(lineX, y, 11)
		c.Fill()
		c.SetColor(pal.Surface)
		c.DrawCircle(lineX, y, 5)
		c.Fill()

		c.SetFont(pal.Body)
		c.SetColor(pal.Ink)
		c.DrawStringTopLeft(visits[i].place, lineX+34, y-20)
		c.SetFont(pal.Caption)
		c.SetColor(pal.Muted)
		c.DrawStringTopLeft(visits[i].time+" · 12 min drive", lineX+34, y+4)
	})

	scene.StatPill(c, pal, f3.Rect(24, 604, 174, 64), "Total drive", "48 min", pal.Ink)
	scene.StatPill(c, pal, f3.Rect(222, 604, 174, 64), "Stops", "4", pal.Ink)

	// Flow: list -> detail -> route.
	scene.ConnectorArrow(c, pal, 466, 438, 514, 438)
	scene.ConnectorArrow(c, pal, 946, 438, 994, 438)

	return s
}
