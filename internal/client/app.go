// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-av-booking/internal/app"
	"github.com/MKhiriev/go-av-booking/internal/config"
	"github.com/MKhiriev/go-av-booking/internal/service"
	"github.com/MKhiriev/go-av-booking/models"
	"github.com/spf13/cobra"
)

// skipBootstrap marks commands that run without services.
const skipBootstrap = "skip-bootstrap"

type App struct {
	info      models.AppBuildInfo
	bootstrap Bootstrap
	in        io.Reader
	out       io.Writer

	flags *config.StructuredConfig
	deps  *Deps
}

// NewApp returns the client application. Commands read secrets from in and
// print to out.
func NewApp(info models.AppBuildInfo, bootstrap Bootstrap, in io.Reader, out io.Writer) *App {
	return &App{info: info, bootstrap: bootstrap, in: in, out: out}
}

// Execute runs args against a fresh command tree and releases local storage
// afterwards.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)
	defer a.close()

	return root.ExecuteContext(ctx)
}

// Command builds the command tree.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:               "avbook",
		Short:             "Book classrooms and AV equipment",
		Long:              "avbook talks to the school booking service: sign in, book classrooms and equipment, follow their status and export usage reports.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.out)
	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.versionCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.bookingsCommand(),
		a.bookCommand(),
		a.statusCommand(),
		a.cancelCommand(),
		a.deleteCommand(),
		a.scheduleCommand(),
		a.reportCommand(),
		a.usersCommand(),
		a.watchCommand(),
	)
	return root
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if _, skip := cmd.Annotations[skipBootstrap]; skip {
		return nil
	}

	deps, err := a.bootstrap(cmd.Context(), a.flags)
	if err != nil {
		return fmt.Errorf("start client: %w", err)
	}
	a.deps = deps
	a.deps.Session.Restore(cmd.Context())
	return nil
}

func (a *App) close() {
	if a.deps == nil || a.deps.Close == nil {
		return
	}
	if err := a.deps.Close(); err != nil && a.deps.Logger != nil {
		a.deps.Logger.Warn().Err(err).Msg("closing local storage")
	}
	a.deps = nil
}

func (a *App) currentUser() (models.User, error) {
	user, ok := a.deps.Session.CurrentUser()
	if !ok {
		return models.User{}, service.ErrNotAuthenticated
	}
	return user, nil
}

// Run executes args and prints a failure the way the user should read it.
// It returns the process exit code.
func Run(ctx context.Context, c Client, args []string, stderr io.Writer) int {
	err := c.Execute(ctx, args)
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, errorStyle.Render("Error:"), describe(err))
	return 1
}

// describe falls back to the raw error text for failures without a
// dedicated message, such as flag parsing errors.
func describe(err error) string {
	var argErr *argumentError
	if errors.As(err, &argErr) {
		return argErr.Error()
	}
	if msg := app.Describe(err); msg != app.MsgUnexpected {
		return msg
	}
	return err.Error()
}
