package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. The real
// App satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout() error
	Whoami() error
	Members(ctx context.Context) error
	Reports(ctx context.Context, userID string) error
	Show(ctx context.Context, reportID string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, reportID string) error
}

// runREPL reads commands line by line and dispatches them. It exits on EOF
// or when the user types "exit" or "quit". Handler errors are printed and
// the loop continues; a failed request needs an explicit re-run.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mt> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: members, reports <userId>, show <reportId>, add, edit <reportId>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: members, reports <userId>, show <reportId>, register, login, exit")
			}
		case "members":
			cmdErr = a.Members(ctx)
		case "reports":
			if arg == "" {
				printlnFn("Usage: reports <userId>")
				continue
			}
			cmdErr = a.Reports(ctx, arg)
		case "show":
			if arg == "" {
				printlnFn("Usage: show <reportId>")
				continue
			}
			cmdErr = a.Show(ctx, arg)
		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in; logout first")
				continue
			}
			cmdErr = a.Register(ctx)
		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in; logout first")
				continue
			}
			cmdErr = a.Login(ctx)
		case "add":
			if !a.isLoggedIn() {
				printlnFn("Log in first")
				continue
			}
			cmdErr = a.Add(ctx)
		case "edit":
			if !a.isLoggedIn() {
				printlnFn("Log in first")
				continue
			}
			if arg == "" {
				printlnFn("Usage: edit <reportId>")
				continue
			}
			cmdErr = a.Edit(ctx, arg)
		case "whoami":
			cmdErr = a.Whoami()
		case "logout":
			cmdErr = a.Logout()
		case "exit", "quit":
			return
		default:
			printlnFn("Unknown command: " + cmd + " (try help)")
		}

		if cmdErr != nil {
			printlnFn("Error: " + cmdErr.Error())
		}
	}
}
