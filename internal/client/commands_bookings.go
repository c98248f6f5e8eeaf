// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/internal/service"
	"github.com/MKhiriev/go-av-booking/models"
	"github.com/spf13/cobra"
)

// refreshAs loads the booking cache for the signed-in user. Every command
// starts from a fresh cache since nothing but the identity is kept between
// runs.
func (a *App) refreshAs(ctx context.Context) (models.User, error) {
	user, err := a.currentUser()
	if err != nil {
		return models.User{}, err
	}
	return user, a.deps.Bookings.Refresh(ctx, false)
}

func (a *App) bookingsCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List bookings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.refreshAs(cmd.Context()); err != nil {
				return err
			}

			list := a.deps.Bookings.Active()
			if all {
				list = a.deps.Bookings.Bookings()
			}
			renderBookings(cmd.OutOrStdout(), a.deps.Calendar, list)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include returned and cancelled bookings")
	return cmd
}

func (a *App) bookCommand() *cobra.Command {
	var (
		draft     models.BookingDraft
		program   string
		equipment []string
		borrow    bool
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a classroom period and equipment",
		Example: `  avbook book --classroom "P.2A TP" --period 3 --date 2024-07-22 -e Projector -e Speaker
  avbook book --classroom Hall --period 1 -e Microphone --borrow`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.refreshAs(cmd.Context())
			if err != nil {
				return err
			}

			draft.Program = models.Program(program)
			if draft.Program == "" {
				draft.Program, _ = booking.ProgramOf(draft.Classroom)
			}
			if draft.TeacherName == "" {
				draft.TeacherName = user.Name
			}
			if draft.Date == "" {
				draft.Date = a.deps.Calendar.Today()
			}
			draft.Equipment = models.NormalizeEquipment(equipment)
			draft.Kind = models.KindBook
			if borrow {
				draft.Kind = models.KindBorrow
			}

			created, err := a.deps.Bookings.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Booking #%d: %s, period %d on %s (%s).\n",
				created.ID, created.Classroom, created.Period, displayDay(a.deps.Calendar, created.Date), created.Status.Label())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&draft.Classroom, "classroom", "", "Classroom name")
	f.IntVarP(&draft.Period, "period", "p", 0, "Period, 1 to 6")
	f.StringVar(&draft.Date, "date", "", "Usage day YYYY-MM-DD (default today)")
	f.StringVar(&program, "program", "", "Program TP, EP or SR (default: the classroom's)")
	f.StringVar(&draft.TeacherName, "teacher", "", "Teacher name, admins only (default: you)")
	f.StringVar(&draft.UnitNumber, "unit-number", "", "Unit number")
	f.StringVar(&draft.UnitName, "unit-name", "", "Unit name")
	f.StringVar(&draft.LessonPlan, "lesson-plan", "", "Lesson plan")
	f.StringSliceVarP(&equipment, "equipment", "e", nil, "Equipment item, repeatable or comma separated")
	f.BoolVar(&borrow, "borrow", false, "Take the equipment now instead of reserving it")
	return cmd
}

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a booking to another status",
		Long: `Move a booking along its lifecycle:

	Booked -> In Use -> Awaiting Return -> Returned

Any active booking may be Cancelled. Teachers may cancel their own bookings
and hand equipment back (In Use -> Awaiting Return); admins may do the rest.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := parseStatus(args[1])
			if err != nil {
				return err
			}
			if _, err = a.refreshAs(cmd.Context()); err != nil {
				return err
			}

			updated, err := a.deps.Bookings.SetStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Booking #%d is now %s.\n", updated.ID, updated.Status.Label())
			return nil
		},
	}
}

func (a *App) cancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err = a.refreshAs(cmd.Context()); err != nil {
				return err
			}

			if _, err = a.deps.Bookings.Cancel(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Booking #%d cancelled.\n", id)
			return nil
		},
	}
}

func (a *App) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a booking permanently (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err = a.refreshAs(cmd.Context()); err != nil {
				return err
			}

			if err = a.deps.Bookings.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Booking #%d deleted.\n", id)
			return nil
		},
	}
}

func (a *App) scheduleCommand() *cobra.Command {
	var program string

	cmd := &cobra.Command{
		Use:   "schedule [date]",
		Short: "Show which classroom periods are taken on a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := a.deps.Calendar.Today()
			if len(args) == 1 {
				var ok bool
				if day, ok = a.deps.Calendar.Day(args[0]); !ok {
					return argErrorf("invalid date %q, want YYYY-MM-DD", args[0])
				}
			}
			classrooms, err := classroomsOf(program)
			if err != nil {
				return err
			}
			if _, err = a.refreshAs(cmd.Context()); err != nil {
				return err
			}

			renderSchedule(cmd.OutOrStdout(), day, a.deps.Bookings.Schedule(day), classrooms)
			return nil
		},
	}
	cmd.Flags().StringVar(&program, "program", "", "Only show classrooms of this program (TP, EP, SR)")
	return cmd
}

func classroomsOf(program string) ([]string, error) {
	if program == "" {
		return booking.Classrooms(), nil
	}
	if !booking.ValidProgram(models.Program(program)) {
		return nil, argErrorf("unknown program %q", program)
	}
	return booking.ClassroomsFor(models.Program(program)), nil
}

func (a *App) reportCommand() *cobra.Command {
	var (
		filter models.ReportFilter
		status string
		export bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Filter bookings for the usage report, optionally exporting xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if status != "" {
				s, err := parseStatus(status)
				if err != nil {
					return err
				}
				filter.Status = s
			}
			if err := a.reportBounds(&filter); err != nil {
				return err
			}
			user, err := a.refreshAs(cmd.Context())
			if err != nil {
				return err
			}
			if export && !user.IsAdmin() {
				return service.ErrForbidden
			}

			rows := a.deps.Bookings.Report(filter)
			renderBookings(cmd.OutOrStdout(), a.deps.Calendar, rows)
			if !export {
				return nil
			}

			path, err := a.deps.Exporter.Export(rows)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookings to %s\n", len(rows), path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&status, "status", "", "Only this status")
	f.StringVar(&filter.From, "from", "", "First usage day, inclusive")
	f.StringVar(&filter.To, "to", "", "Last usage day, inclusive")
	f.StringVarP(&filter.Query, "query", "q", "", "Text to find in teacher, equipment, classroom or lesson plan")
	f.BoolVar(&export, "export", false, "Also write the report to an xlsx file (admin)")
	return cmd
}

// reportBounds rewrites --from and --to as school days. An unreadable bound
// is an error rather than no bound.
func (a *App) reportBounds(filter *models.ReportFilter) error {
	for _, bound := range []*string{&filter.From, &filter.To} {
		if *bound == "" {
			continue
		}
		day, ok := a.deps.Calendar.Day(*bound)
		if !ok {
			return argErrorf("invalid date %q, want YYYY-MM-DD", *bound)
		}
		*bound = day
	}
	if filter.From != "" && filter.To != "" && filter.From > filter.To {
		return argErrorf("--from %s is after --to %s", filter.From, filter.To)
	}
	return nil
}

func (a *App) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep today's schedule on screen, refreshing in the background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, err := a.refreshAs(ctx); err != nil {
				return err
			}

			interval := a.deps.RefreshInterval
			if interval <= 0 {
				interval = time.Minute
			}

			a.deps.Workers.Start(ctx)
			defer a.deps.Workers.Stop()

			out := cmd.OutOrStdout()
			a.renderWatch(out)

			t := time.NewTicker(interval)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-t.C:
					a.renderWatch(out)
				}
			}
		},
	}
}

func (a *App) renderWatch(w io.Writer) {
	day := a.deps.Calendar.Today()
	renderSchedule(w, day, a.deps.Bookings.Schedule(day), booking.Classrooms())

	refreshed := a.deps.Bookings.LastRefresh()
	fmt.Fprintln(w, helpStyle.Render(fmt.Sprintf("Last refreshed %s. Ctrl+C to quit.",
		refreshed.In(a.deps.Calendar.Location()).Format("15:04:05"))))
}
