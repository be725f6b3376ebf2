package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"scholartrack/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	Session() *models.Session

	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Logout(ctx context.Context) error

	ListScholarships(ctx context.Context) error
	SearchScholarships(ctx context.Context) error
	Apply(ctx context.Context) error
	MyApplications(ctx context.Context) error

	Notifications(ctx context.Context) error
	ReadNotification(ctx context.Context) error
	ReadAllNotifications(ctx context.Context) error

	AddScholarship(ctx context.Context) error
	EditScholarship(ctx context.Context) error
	DeleteScholarship(ctx context.Context) error
	Review(ctx context.Context) error
	Approve(ctx context.Context) error
	Reject(ctx context.Context) error
	Users(ctx context.Context) error
	CreateAdmin(ctx context.Context) error
	SetUserRole(ctx context.Context) error
	DeleteUser(ctx context.Context) error
}

// runREPL starts a read-eval-print loop. It reads a line from the
// scanner, parses the first token as the command, and dispatches to
// methods on a. Commands outside the active role's set are reported as
// unknown; the loop exits on scanner EOF or "exit"/"quit".
//
// Command sets:
//
//	Guest:
//	  - help, login, signup, exit | quit
//
//	Student:
//	  - scholarships, search, apply, applications, notifications,
//	    read, readall, logout, help, exit | quit
//
//	Admin:
//	  - addsch, editsch, delsch, review, approve, reject,
//	    users, createadmin, setrole, deluser, notifications,
//	    read, readall, logout, help, exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("st> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			return
		}

		session := a.Session()
		switch {
		case session == nil:
			if !dispatchGuest(ctx, a, cmd) {
				printlnFn("Unknown command. Available: login, signup, help, exit")
			}
		case session.Role == models.RoleAdmin:
			if !dispatchAdmin(ctx, a, cmd) {
				printlnFn("Unknown command (type help)")
			}
		default:
			if !dispatchStudent(ctx, a, cmd) {
				printlnFn("Unknown command (type help)")
			}
		}
	}
}

func dispatchGuest(ctx context.Context, a execIface, cmd string) bool {
	switch cmd {
	case "help":
		printlnFn("Available commands: login, signup, exit")
	case "login":
		_ = a.Login(ctx)
	case "signup":
		_ = a.SignUp(ctx)
	default:
		return false
	}
	return true
}

func dispatchStudent(ctx context.Context, a execIface, cmd string) bool {
	switch cmd {
	case "help":
		printlnFn("Available commands: scholarships, search, apply, applications, notifications, read, readall, logout, exit")
	case "scholarships":
		_ = a.ListScholarships(ctx)
	case "search":
		_ = a.SearchScholarships(ctx)
	case "apply":
		_ = a.Apply(ctx)
	case "applications":
		_ = a.MyApplications(ctx)
	case "notifications":
		_ = a.Notifications(ctx)
	case "read":
		_ = a.ReadNotification(ctx)
	case "readall":
		_ = a.ReadAllNotifications(ctx)
	case "logout":
		_ = a.Logout(ctx)
	default:
		return false
	}
	return true
}

func dispatchAdmin(ctx context.Context, a execIface, cmd string) bool {
	switch cmd {
	case "help":
		printlnFn("Available commands: addsch, editsch, delsch, review, approve, reject, users, createadmin, setrole, deluser, notifications, read, readall, logout, exit")
	case "addsch":
		_ = a.AddScholarship(ctx)
	case "editsch":
		_ = a.EditScholarship(ctx)
	case "delsch":
		_ = a.DeleteScholarship(ctx)
	case "review":
		_ = a.Review(ctx)
	case "approve":
		_ = a.Approve(ctx)
	case "reject":
		_ = a.Reject(ctx)
	case "users":
		_ = a.Users(ctx)
	case "createadmin":
		_ = a.CreateAdmin(ctx)
	case "setrole":
		_ = a.SetUserRole(ctx)
	case "deluser":
		_ = a.DeleteUser(ctx)
	case "notifications":
		_ = a.Notifications(ctx)
	case "read":
		_ = a.ReadNotification(ctx)
	case "readall":
		_ = a.ReadAllNotifications(ctx)
	case "logout":
		_ = a.Logout(ctx)
	default:
		return false
	}
	return true
}
