package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/homeboard/homeboard/internal/model"
)

// calendarPanel renders a month grid with per-day memos. Days carrying a memo
// are highlighted; selecting a day loads its memo into the editor below.
type calendarPanel struct {
	root *RootUI

	month      time.Time
	selected   string
	monthLabel *widget.Label
	days       *fyne.Container
	dayLabel   *widget.Label
	memo       *widget.Entry
	saveBtn    *widget.Button
	todayBtn   *widget.Button
	now        func() time.Time
}

func newCalendarPanel(r *RootUI) *calendarPanel {
	c := &calendarPanel{
		root: r,
		now:  time.Now,
	}

	today := c.now()
	c.month = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local)
	c.selected = model.DateKey(today)

	c.monthLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	c.days = container.NewGridWithColumns(7)

	c.dayLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	c.memo = widget.NewMultiLineEntry()
	c.memo.Wrapping = fyne.TextWrapWord
	c.memo.SetPlaceHolder(r.tr(KeyMemo))

	c.saveBtn = widget.NewButtonWithIcon(r.tr(KeySave), theme.DocumentSaveIcon(), c.save)
	c.todayBtn = widget.NewButton(r.tr(KeyToday), c.goToday)
	c.todayBtn.Importance = widget.LowImportance

	return c
}

func (c *calendarPanel) object() fyne.CanvasObject {
	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { c.shiftMonth(-1) })
	prev.Importance = widget.LowImportance
	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { c.shiftMonth(1) })
	next.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, prev, container.NewHBox(c.todayBtn, next), c.monthLabel)
	memoArea := container.NewBorder(c.dayLabel, c.saveBtn, nil, nil, c.memo)

	grid := container.NewVBox(header, c.days)
	split := container.NewVSplit(grid, memoArea)
	split.SetOffset(0.6)
	return split
}

func (c *calendarPanel) shiftMonth(delta int) {
	c.month = c.month.AddDate(0, delta, 0)
	c.refresh()
}

func (c *calendarPanel) goToday() {
	today := c.now()
	c.month = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local)
	c.selectDay(model.DateKey(today))
}

func (c *calendarPanel) selectDay(key string) {
	c.selected = key
	if memo, ok := c.root.store.CalendarMemo(key); ok {
		c.memo.SetText(memo)
	} else {
		c.memo.SetText("")
	}
	c.refresh()
}

func (c *calendarPanel) save() {
	if c.selected == "" {
		return
	}
	c.root.store.UpdateCalendarMemo(c.selected, c.memo.Text)
}

func (c *calendarPanel) refresh() {
	r := c.root
	c.saveBtn.SetText(r.tr(KeySave))
	c.todayBtn.SetText(r.tr(KeyToday))
	c.memo.SetPlaceHolder(r.tr(KeyMemo))
	c.monthLabel.SetText(c.month.Format("January 2006"))
	c.dayLabel.SetText(c.selected)

	memos := r.store.CalendarMemos()
	todayKey := model.DateKey(c.now())

	c.days.RemoveAll()
	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		h := widget.NewLabelWithStyle(wd, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		c.days.Add(h)
	}

	for i := 0; i < int(c.month.Weekday()); i++ {
		c.days.Add(widget.NewLabel(""))
	}

	last := c.month.AddDate(0, 1, -1).Day()
	for day := 1; day <= last; day++ {
		date := time.Date(c.month.Year(), c.month.Month(), day, 0, 0, 0, 0, time.Local)
		key := model.DateKey(date)

		btn := widget.NewButton(fmt.Sprintf("%d", day), func() {
			c.selectDay(key)
		})
		switch {
		case key == c.selected:
			btn.Importance = widget.HighImportance
		case memos[key] != "":
			btn.Importance = widget.SuccessImportance
		case key == todayKey:
			btn.Importance = widget.MediumImportance
		default:
			btn.Importance = widget.LowImportance
		}
		c.days.Add(btn)
	}
	c.days.Refresh()
}
