// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// tokenEnv holds the bearer token for commands that need one.
const tokenEnv = "USER_KEEPER_TOKEN"

var errUsage = errors.New("usage: client [flags] login <handle> <password> | users | change-password <current> <new> | version")

func main() {
	log := logger.NewClientLogger("user-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(os.Getenv(tokenEnv))

	if err = run(context.Background(), serverAdapter, flag.Args(), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return errUsage
		}
		resp, err := a.Login(ctx, models.LoginRequest{Handle: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\nexport %s=%s\n", resp.Message, tokenEnv, resp.Token)
		return err

	case "users":
		users, err := a.ListUsers(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tACTIVE")
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Username, u.Email, u.Role, u.IsActive)
		}
		return tw.Flush()

	case "change-password":
		if len(args) != 3 {
			return errUsage
		}
		err := a.ChangePassword(ctx, models.PasswordChangeRequest{CurrentPassword: args[1], NewPassword: args[2]})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, "password updated")
		return err

	case "version":
		serverVersion, err := a.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%sServer version: %s\n", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), serverVersion)
		return err
	}

	return errUsage
}
