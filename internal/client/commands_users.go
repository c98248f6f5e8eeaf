// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-av-booking/models"
	"github.com/spf13/cobra"
)

func (a *App) usersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage portal accounts (admin)",
	}
	cmd.AddCommand(
		a.usersListCommand(),
		a.usersAddCommand(),
		a.usersUpdateCommand(),
		a.usersDeleteCommand(),
	)
	return cmd
}

func (a *App) usersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := a.deps.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			renderUsers(cmd.OutOrStdout(), users)
			return nil
		},
	}
}

func (a *App) usersAddCommand() *cobra.Command {
	var (
		user models.NewUser
		role string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account; the initial password is read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readSecret(cmd.InOrStdin())
			if err != nil {
				return err
			}
			user.Password = password
			user.Role = models.Role(role)

			created, err := a.deps.Users.Add(cmd.Context(), user)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added user #%d %s (%s).\n", created.ID, created.Username, created.Role.Label())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&user.Name, "name", "", "Display name; bookings are matched by it")
	f.StringVar(&user.Username, "username", "", "Login name")
	f.StringVar(&role, "role", string(models.RoleTeacher), "admin or teacher")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func (a *App) usersUpdateCommand() *cobra.Command {
	var update models.UserUpdate
	var role string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an account's name and role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			update.ID = id
			update.Role = models.Role(role)

			updated, err := a.deps.Users.Update(cmd.Context(), update)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated user #%d: %s (%s).\n", updated.ID, updated.Name, updated.Role.Label())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&update.Name, "name", "", "Display name")
	f.StringVar(&role, "role", "", "admin or teacher")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func (a *App) usersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err = a.deps.Users.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user #%d.\n", id)
			return nil
		},
	}
}
