// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-av-booking/internal/adapter"
	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/internal/config"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/internal/mock"
	"github.com/MKhiriev/go-av-booking/internal/service"
	"github.com/MKhiriev/go-av-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminUser   = models.User{ID: 1, Name: "Admin", Username: "admin", Role: models.RoleAdmin}
	teacherChan = models.User{ID: 2, Name: "Ms Chan", Username: "chan", Role: models.RoleTeacher}
)

// fakeExporter запоминает переданные строки отчёта.
type fakeExporter struct {
	got  []models.Booking
	path string
	err  error
}

func (f *fakeExporter) Export(bookings []models.Booking) (string, error) {
	f.got = bookings
	return f.path, f.err
}

type fakeWorkers struct {
	started, stopped int
}

func (f *fakeWorkers) Start(context.Context) { f.started++ }
func (f *fakeWorkers) Stop()                 { f.stopped++ }

type testEnv struct {
	session  *mock.MockSessionService
	bookings *mock.MockBookingService
	users    *mock.MockUserService
	exporter *fakeExporter
	workers  *fakeWorkers
	closed   int

	stdin *strings.Reader
	out   *bytes.Buffer
	app   *App
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		session:  mock.NewMockSessionService(ctrl),
		bookings: mock.NewMockBookingService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		exporter: &fakeExporter{path: "/tmp/bookings-report-2024-07-22.xlsx"},
		workers:  &fakeWorkers{},
		stdin:    strings.NewReader(""),
		out:      &bytes.Buffer{},
	}

	cal := booking.MustCalendar(booking.DefaultTimezone).
		WithClock(func() time.Time { return time.Date(2024, 7, 22, 1, 0, 0, 0, time.UTC) })

	bootstrap := func(context.Context, *config.StructuredConfig) (*Deps, error) {
		return &Deps{
			Session:         env.session,
			Bookings:        env.bookings,
			Users:           env.users,
			Exporter:        env.exporter,
			Workers:         env.workers,
			RefreshInterval: 5 * time.Millisecond,
			Calendar:        cal,
			Logger:          logger.Nop(),
			Close: func() error {
				env.closed++
				return nil
			},
		}, nil
	}
	env.app = NewApp(models.NewAppBuildInfo("v1.2.0", "", ""), bootstrap, env.stdin, env.out)
	return env
}

// signedIn expects a session restore that yields user.
func (e *testEnv) signedIn(user *models.User) {
	e.session.EXPECT().Restore(gomock.Any())
	if user == nil {
		e.session.EXPECT().CurrentUser().Return(models.User{}, false).AnyTimes()
		return
	}
	e.session.EXPECT().CurrentUser().Return(*user, true).AnyTimes()
}

func (e *testEnv) run(args ...string) error {
	return e.app.Execute(context.Background(), args)
}

func sampleBooking(id int64, status models.Status) models.Booking {
	return models.Booking{
		ID: id, TeacherName: "Ms Chan", Program: models.ProgramTP, Classroom: "P.2A TP",
		Period: 3, Date: "2024-07-22", Equipment: models.Equipment{"Projector", "Speaker"},
		Kind: models.KindBook, Status: status,
	}
}

// ── version / session ────────────────────────────────────────────────────────

func TestApp_Version_SkipsBootstrap(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.run("version"))

	assert.Contains(t, env.out.String(), "Build version: v1.2.0")
	assert.Contains(t, env.out.String(), "Build date: N/A")
	assert.Zero(t, env.closed)
}

func TestApp_Login(t *testing.T) {
	env := newTestEnv(t)
	env.stdin.Reset("s3cret\n")

	env.session.EXPECT().Restore(gomock.Any())
	env.session.EXPECT().Login(gomock.Any(), "chan", "s3cret").Return(true)
	env.session.EXPECT().CurrentUser().Return(teacherChan, true)

	require.NoError(t, env.run("login", "chan"))

	assert.Equal(t, "Signed in as Ms Chan (Teacher).\n", env.out.String())
	assert.Equal(t, 1, env.closed, "local storage is released after the command")
}

func TestApp_Login_Refused(t *testing.T) {
	env := newTestEnv(t)
	env.stdin.Reset("wrong")

	env.session.EXPECT().Restore(gomock.Any())
	env.session.EXPECT().Login(gomock.Any(), "chan", "wrong").Return(false)

	err := env.run("login", "chan")
	assert.ErrorIs(t, err, service.ErrLoginRefused)
}

func TestApp_Login_NoPassword(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Restore(gomock.Any())

	err := env.run("login", "chan")

	require.Error(t, err)
	assert.Equal(t, "password must be given on stdin", describe(err))
}

func TestApp_LogoutAndWhoami(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Restore(gomock.Any())
	env.session.EXPECT().Logout(gomock.Any())

	require.NoError(t, env.run("logout"))
	assert.Equal(t, "Signed out.\n", env.out.String())

	env = newTestEnv(t)
	env.signedIn(&adminUser)
	require.NoError(t, env.run("whoami"))
	assert.Equal(t, "Admin (admin), Administrator\n", env.out.String())

	env = newTestEnv(t)
	env.signedIn(nil)
	assert.ErrorIs(t, env.run("whoami"), service.ErrNotAuthenticated)
}

// ── bookings ─────────────────────────────────────────────────────────────────

func TestApp_Bookings(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&teacherChan)
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)
	env.bookings.EXPECT().Active().Return([]models.Booking{sampleBooking(12, models.StatusInUse)})

	require.NoError(t, env.run("bookings"))

	out := env.out.String()
	for _, want := range []string{"12", "P.2A TP", "Ms Chan", "Projector, Speaker", "Reservation", "In use"} {
		assert.Contains(t, out, want)
	}
}

func TestApp_Bookings_All(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&teacherChan)
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)
	env.bookings.EXPECT().Bookings().Return(nil)

	require.NoError(t, env.run("bookings", "--all"))
	assert.Contains(t, env.out.String(), "No bookings.")
}

func TestApp_Bookings_RequiresSession(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(nil)

	assert.ErrorIs(t, env.run("bookings"), service.ErrNotAuthenticated)
}

func TestApp_Bookings_RefreshFails(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&teacherChan)
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(&adapter.TransportError{Action: "getBookings", Err: errors.New("dial tcp")})

	err := env.run("bookings")
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestApp_Book(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&teacherChan)
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)
	env.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d models.BookingDraft) (models.Booking, error) {
			assert.Equal(t, models.BookingDraft{
				TeacherName: "Ms Chan",
				Program:     models.ProgramTP,
				Classroom:   "P.2A TP",
				Period:      3,
				Date:        "2024-07-22",
				LessonPlan:  "Fractions",
				Equipment:   models.Equipment{"Projector", "Speaker"},
				Kind:        models.KindBorrow,
			}, d)
			return d.Booking(40, models.StatusInUse, time.Now()), nil
		},
	)

	err := env.run("book", "--classroom", "P.2A TP", "-p", "3", "-e", "Projector, Speaker", "--lesson-plan", "Fractions", "--borrow")

	require.NoError(t, err)
	assert.Equal(t, "Booking #40: P.2A TP, period 3 on 2024-07-22 (In use).\n", env.out.String())
}

func TestApp_Book_Conflict(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&adminUser)
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)
	env.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Booking{}, &booking.ConflictError{
		Kind: booking.ClassroomConflict,
		With: sampleBooking(3, models.StatusBooked),
	})

	err := env.run("book", "--classroom", "P.2A TP", "-p", "3", "--date", "2024-07-23", "-e", "TV", "--teacher", "Mr Lee")

	require.ErrorIs(t, err, booking.ErrClassroomConflict)
	assert.Equal(t, "Classroom already booked: P.2A TP, period 3 (by Ms Chan).", describe(err))
}

func TestApp_Status(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&adminUser)
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)
	env.bookings.EXPECT().SetStatus(gomock.Any(), int64(7), models.StatusAwaitingReturn).
		Return(sampleBooking(7, models.StatusAwaitingReturn), nil)

	require.NoError(t, env.run("status", "7", "awaiting-return"))
	assert.Equal(t, "Booking #7 is now Awaiting return.\n", env.out.String())
}

func TestApp_Status_BadArguments(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Restore(gomock.Any()).Times(2)

	err := env.run("status", "abc", "returned")
	assert.Equal(t, `invalid id "abc"`, describe(err))

	err = env.run("status", "7", "lost")
	assert.Equal(t, `unknown status "lost"`, describe(err))
}

func TestApp_CancelAndDelete(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&adminUser)
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil).Times(2)
	env.bookings.EXPECT().Cancel(gomock.Any(), int64(5)).Return(sampleBooking(5, models.StatusCancelled), nil)
	env.bookings.EXPECT().Delete(gomock.Any(), int64(6)).Return(service.ErrForbidden)
	env.session.EXPECT().Restore(gomock.Any())

	require.NoError(t, env.run("cancel", "5"))
	assert.Equal(t, "Booking #5 cancelled.\n", env.out.String())

	err := env.run("delete", "6")
	assert.ErrorIs(t, err, service.ErrForbidden)
}

// ── schedule / report / watch ────────────────────────────────────────────────

func TestApp_Schedule(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&teacherChan)

	cal := booking.MustCalendar(booking.DefaultTimezone)
	grid := booking.Project(cal, []models.Booking{sampleBooking(1, models.StatusBooked)}, "2024-07-22")
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)
	env.bookings.EXPECT().Schedule("2024-07-22").Return(grid)

	require.NoError(t, env.run("schedule", "--program", "TP"))

	out := env.out.String()
	assert.Contains(t, out, "Schedule for 2024-07-22")
	assert.Contains(t, out, "P.2A TP")
	assert.Contains(t, out, "Ms Chan")
	assert.NotContains(t, out, "Hall", "only TP classrooms")
}

func TestApp_Schedule_BadInput(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Restore(gomock.Any()).Times(2)

	assert.Equal(t, `invalid date "someday", want YYYY-MM-DD`, describe(env.run("schedule", "someday")))
	assert.Equal(t, `unknown program "XX"`, describe(env.run("schedule", "--program", "XX")))
}

func TestApp_Report(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&adminUser)

	rows := []models.Booking{sampleBooking(9, models.StatusReturned)}
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)
	env.bookings.EXPECT().
		Report(models.ReportFilter{Status: models.StatusReturned, From: "2024-07-01", Query: "projector"}).
		Return(rows)

	require.NoError(t, env.run("report", "--status", "returned", "--from", "2024-07-01", "-q", "projector", "--export"))

	assert.Equal(t, rows, env.exporter.got)
	assert.Contains(t, env.out.String(), "Exported 1 bookings to /tmp/bookings-report-2024-07-22.xlsx")
}

func TestApp_Report_ExportIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&teacherChan)
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)

	assert.ErrorIs(t, env.run("report", "--export"), service.ErrForbidden)
	assert.Nil(t, env.exporter.got)
}

func TestApp_Report_BadBounds(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad from", args: []string{"report", "--from", "2024-13-01"}, want: `invalid date "2024-13-01", want YYYY-MM-DD`},
		{name: "bad to", args: []string{"report", "--to", "next week"}, want: `invalid date "next week", want YYYY-MM-DD`},
		{name: "reversed", args: []string{"report", "--from", "2024-07-22", "--to", "2024-07-01"}, want: "--from 2024-07-22 is after --to 2024-07-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.session.EXPECT().Restore(gomock.Any())

			// ни обновления, ни отчёта
			assert.Equal(t, tt.want, describe(env.run(tt.args...)))
		})
	}
}

func TestApp_Report_BoundsNormalized(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&teacherChan)

	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)
	env.bookings.EXPECT().
		Report(models.ReportFilter{From: "2024-07-22", To: "2024-07-23"}).
		Return(nil)

	require.NoError(t, env.run("report", "--from", "2024-07-21T17:00:00Z", "--to", " 2024-07-23 "))
}

func TestApp_Watch_StopsWithContext(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(&teacherChan)
	env.bookings.EXPECT().Refresh(gomock.Any(), false).Return(nil)
	env.bookings.EXPECT().Schedule("2024-07-22").Return(booking.Grid{}).MinTimes(1)
	env.bookings.EXPECT().LastRefresh().Return(time.Date(2024, 7, 22, 1, 0, 0, 0, time.UTC)).MinTimes(1)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	require.NoError(t, env.app.Execute(ctx, []string{"watch"}))

	assert.Equal(t, 1, env.workers.started)
	assert.Equal(t, 1, env.workers.stopped)
	assert.Contains(t, env.out.String(), "Last refreshed 08:00:00")
}

// ── users ────────────────────────────────────────────────────────────────────

func TestApp_Users(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Restore(gomock.Any()).Times(4)

	env.users.EXPECT().List(gomock.Any()).Return([]models.User{adminUser, teacherChan}, nil)
	require.NoError(t, env.run("users", "list"))
	assert.Contains(t, env.out.String(), "chan")
	assert.Contains(t, env.out.String(), "Administrator")

	env.out.Reset()
	env.stdin.Reset("initial\n")
	env.users.EXPECT().
		Add(gomock.Any(), models.NewUser{Name: "Mr Lee", Username: "lee", Role: models.RoleTeacher, Password: "initial"}).
		Return(models.User{ID: 3, Name: "Mr Lee", Username: "lee", Role: models.RoleTeacher}, nil)
	require.NoError(t, env.run("users", "add", "--name", "Mr Lee", "--username", "lee"))
	assert.Equal(t, "Added user #3 lee (Teacher).\n", env.out.String())

	env.out.Reset()
	env.users.EXPECT().
		Update(gomock.Any(), models.UserUpdate{ID: 3, Name: "Mr Lee", Role: models.RoleAdmin}).
		Return(models.User{ID: 3, Name: "Mr Lee", Username: "lee", Role: models.RoleAdmin}, nil)
	require.NoError(t, env.run("users", "update", "3", "--name", "Mr Lee", "--role", "admin"))
	assert.Equal(t, "Updated user #3: Mr Lee (Administrator).\n", env.out.String())

	env.users.EXPECT().Delete(gomock.Any(), int64(3)).Return(service.ErrForbidden)
	assert.ErrorIs(t, env.run("users", "delete", "3"), service.ErrForbidden)
}

// ── Run / describe ───────────────────────────────────────────────────────────

func TestRun_PrintsDescribedError(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn(nil)

	var stderr bytes.Buffer
	code := Run(context.Background(), env.app, []string{"whoami"}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "You are not signed in.")
}

func TestRun_Success(t *testing.T) {
	env := newTestEnv(t)

	var stderr bytes.Buffer
	assert.Equal(t, 0, Run(context.Background(), env.app, []string{"version"}, &stderr))
	assert.Empty(t, stderr.String())
}

func TestApp_BootstrapFailure(t *testing.T) {
	bootErr := errors.New("invalid storage configs")
	a := NewApp(models.AppBuildInfo{}, func(context.Context, *config.StructuredConfig) (*Deps, error) {
		return nil, bootErr
	}, nil, &bytes.Buffer{})

	err := a.Execute(context.Background(), []string{"whoami"})

	assert.ErrorIs(t, err, bootErr)
	assert.Equal(t, "start client: invalid storage configs", describe(err))
}

func TestParseStatus(t *testing.T) {
	for raw, want := range map[string]models.Status{
		"Booked":          models.StatusBooked,
		"in use":          models.StatusInUse,
		"IN_USE":          models.StatusInUse,
		"awaiting-return": models.StatusAwaitingReturn,
		" Returned ":      models.StatusReturned,
		"cancelled":       models.StatusCancelled,
	} {
		got, err := parseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}
