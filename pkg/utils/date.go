package utils

import "time"

// StartOfDay trunca o horário mantendo a data de calendário no fuso de t
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
