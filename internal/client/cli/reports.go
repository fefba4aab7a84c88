package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Members lists everyone in the group directory.
func (a *App) Members(ctx context.Context) error {
	users, err := a.client.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("No members yet")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%s  %s <%s>\n", u.ID, u.Name, u.Email)
	}
	return nil
}

// Reports lists a member's reports in day order.
func (a *App) Reports(ctx context.Context, userID string) error {
	reports, err := a.client.ReportsFor(ctx, userID)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("No reports for this member")
		return nil
	}
	for _, r := range reports {
		fmt.Printf("%s  day %-3d %s\n", r.ID, r.Day, r.Date)
	}
	return nil
}

// Show prints a single report. Whether editing is offered is decided by
// comparing the held identity against the report's owner, but that is a
// display convenience only; the server re-checks on update.
func (a *App) Show(ctx context.Context, reportID string) error {
	report, err := a.client.Report(ctx, reportID)
	if err != nil {
		return err
	}

	fmt.Printf("Day %d - %s\n", report.Day, report.Date)
	if report.Content == "" {
		fmt.Println("(no content yet)")
	} else {
		fmt.Println(report.Content)
	}
	if a.isLoggedIn() && report.UserID == a.currentUserID() {
		fmt.Println("This is your report; use 'edit " + report.ID + "' to change it")
	}
	return nil
}

// Add creates a new report for the logged-in member. The server assigns
// the day number.
func (a *App) Add(ctx context.Context) error {
	today := time.Now().Format("2006-01-02")
	date, err := GetSimpleText(a.reader, "Report date (blank for "+today+")", os.Stdout)
	if err != nil {
		return err
	}
	if date == "" {
		date = today
	}

	report, err := a.client.CreateReport(ctx, a.currentUserID(), date)
	if err != nil {
		return err
	}

	fmt.Printf("Created report %s for day %d\n", report.ID, report.Day)
	return nil
}

// Edit rewrites a report's content (and optionally its day). Non-owners are
// shown the read-only view instead.
func (a *App) Edit(ctx context.Context, reportID string) error {
	report, err := a.client.Report(ctx, reportID)
	if err != nil {
		return err
	}

	if report.UserID != a.currentUserID() {
		fmt.Println("You can only edit your own reports; showing it read-only instead")
		return a.Show(ctx, reportID)
	}

	content, err := GetMultiline(a.reader, "New content", os.Stdout)
	if err != nil {
		return err
	}

	dayText, err := GetSimpleText(a.reader, fmt.Sprintf("Day number (blank to keep %d)", report.Day), os.Stdout)
	if err != nil {
		return err
	}
	var day *int
	if dayText != "" {
		n, err := strconv.Atoi(dayText)
		if err != nil || n < 1 {
			return fmt.Errorf("day must be a positive integer, got %q", dayText)
		}
		day = &n
	}

	updated, err := a.client.UpdateReport(ctx, reportID, content, day)
	if err != nil {
		return err
	}

	fmt.Printf("Updated report %s (day %d)\n", updated.ID, updated.Day)
	return nil
}
