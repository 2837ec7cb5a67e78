package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opshr/rosterkit/internal/domain/roster"
	"github.com/opshr/rosterkit/internal/render"
)

var (
	listActiveOnly  bool
	searchKeyword   string
	probationWithin int
	probationRef    string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print headline roster statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		svc := roster.NewService(logger)
		summary := svc.Summarize(r, time.Time{})
		fmt.Print(render.Summary(summary, render.DefaultStyles()))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the employee table",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		svc := roster.NewService(logger)
		records := svc.List(r, roster.ListOptions{ActiveOnly: listActiveOnly})
		if len(records) == 0 {
			fmt.Println("No employees to show.")
			return nil
		}
		fmt.Print(render.RecordTable(records, render.DefaultStyles()))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find employees by name, team or title",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(searchKeyword) == "" {
			return roster.ErrEmptyKeyword
		}
		r, err := loadRoster()
		if err != nil {
			return err
		}
		svc := roster.NewService(logger)
		matches := svc.Search(r, searchKeyword)
		if len(matches) == 0 {
			fmt.Printf("No employees match %q.\n", searchKeyword)
			return nil
		}
		fmt.Printf("%d match(es)\n", len(matches))
		fmt.Print(render.RecordTable(matches, render.DefaultStyles()))
		return nil
	},
}

var probationCmd = &cobra.Command{
	Use:   "probation",
	Short: "List upcoming probation end dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		var ref time.Time
		if probationRef != "" {
			parsed, err := time.Parse("2006-01-02", probationRef)
			if err != nil {
				return fmt.Errorf("%w: reference date must be YYYY-MM-DD, got %q", roster.ErrInvalidParameter, probationRef)
			}
			ref = parsed
		}
		within := probationWithin
		if !cmd.Flags().Changed("within") {
			within = cfg.Probation.WithinDays
		}

		r, err := loadRoster()
		if err != nil {
			return err
		}
		svc := roster.NewService(logger)
		results, err := svc.ProbationEnding(r, roster.ProbationOptions{
			WithinDays:    within,
			ReferenceDate: ref,
		})
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No probation periods end within the window.")
			return nil
		}
		if ref.IsZero() {
			ref = time.Now()
		}
		fmt.Print(render.Probation(results, ref, render.DefaultStyles()))
		return nil
	},
}
