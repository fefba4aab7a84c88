package reports

// NextDay returns the sequence number for a new report given the owner's
// existing reports: one past the highest day seen so far, starting at 1.
// Owner edits can leave gaps or duplicates in the stored days, so this
// scans rather than counting rows.
func NextDay(existing []Report) int {
	highest := 0
	for _, report := range existing {
		if report.Day > highest {
			highest = report.Day
		}
	}
	return highest + 1
}
