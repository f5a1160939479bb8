package cli

import (
	"context"
	"fmt"
)

// renderAnalytics fetches the three aggregate projections and prints them.
// Reads only; nothing here touches a collection store.
func (a *App) renderAnalytics(ctx context.Context) error {
	usage, err := a.api.PlatformUsage(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	skills, err := a.api.PopularSkills(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	earnings, err := a.api.InstructorEarnings(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}

	printlnFn("Platform usage:")
	for _, row := range usage {
		printlnFn(fmt.Sprintf("  %-24s %d", row.ActivityType, row.Count))
	}

	printlnFn("Popular skills:")
	for _, row := range skills {
		printlnFn(fmt.Sprintf("  %-24s %d", row.Skill, row.Count))
	}

	printlnFn("Instructor earnings:")
	for _, row := range earnings {
		printlnFn(fmt.Sprintf("  %-24s %.2f", row.Instructor, row.Total))
	}
	return nil
}
