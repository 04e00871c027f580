// Command client is a small CLI consumer of the attendance server's HTTP
// API. The first positional argument selects the operation; authenticated
// operations read the session token from the ATTENDANCE_TOKEN environment
// variable, which `client login` prints for export.
//
// Usage:
//
//	client [-s http://host:port] login <username> <password>
//	client mark
//	client me
//	client dashboard
//	client create-user <username> <password>
//	client reset-password <username> <new-password>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
)

const tokenEnvVar = "ATTENDANCE_TOKEN"

func main() {
	log := logger.Nop()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fail("error getting configs: %v", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg, log)
	if err != nil {
		fail("error creating server adapter: %v", err)
	}
	serverAdapter.SetToken(os.Getenv(tokenEnvVar))

	args := os.Args[1:]
	for len(args) > 0 && args[0][0] == '-' {
		// flags were already consumed by GetClientConfig; skip them and
		// their values to reach the positional command
		if args[0] == "-s" || args[0] == "-request-timeout" {
			args = args[2:]
			continue
		}
		args = args[1:]
	}
	if len(args) == 0 {
		fail("no command given; expected login, mark, me, dashboard, create-user or reset-password")
	}

	ctx := context.Background()

	switch command := args[0]; command {
	case "login":
		requireArgs(args, 3, "login <username> <password>")
		resp, err := serverAdapter.Login(ctx, args[1], args[2])
		if err != nil {
			fail("login failed: %v", err)
		}
		fmt.Printf("logged in as %s (%s)\n", args[1], resp.Role)
		fmt.Printf("export %s=%s\n", tokenEnvVar, resp.Token)

	case "mark":
		message, err := serverAdapter.MarkAttendance(ctx)
		if err != nil {
			fail("mark failed: %v", err)
		}
		fmt.Println(message)

	case "me":
		records, err := serverAdapter.MyAttendance(ctx)
		if err != nil {
			fail("listing attendance failed: %v", err)
		}
		for _, record := range records {
			fmt.Printf("%s\t%s\n", record.Date, record.Status)
		}
		fmt.Printf("%d day(s) present\n", len(records))

	case "dashboard":
		rows, err := serverAdapter.Dashboard(ctx)
		if err != nil {
			fail("dashboard failed: %v", err)
		}
		for _, row := range rows {
			fmt.Printf("%s\t%d day(s)\t%s%%\n", row.Username, row.PresentDays, row.AttendancePercentage)
		}

	case "create-user":
		requireArgs(args, 3, "create-user <username> <password>")
		message, err := serverAdapter.CreateUser(ctx, args[1], args[2])
		if err != nil {
			fail("user creation failed: %v", err)
		}
		fmt.Println(message)

	case "reset-password":
		requireArgs(args, 3, "reset-password <username> <new-password>")
		message, err := serverAdapter.ResetPassword(ctx, args[1], args[2])
		if err != nil {
			fail("password reset failed: %v", err)
		}
		fmt.Println(message)

	default:
		fail("unknown command %q", command)
	}
}

func requireArgs(args []string, n int, usage string) {
	if len(args) != n {
		fail("usage: client %s", usage)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
