package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Open(ctx context.Context, target string) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Command handlers report their own errors; the loop ignores the returned
// values to stay resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sa> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: open <users|skills|bookings|analytics>, (l)ist, search <term>, add, edit <id>, del <id>, approve <id>, reject <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, open <screen>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <users|skills|bookings|analytics>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <term>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "del", "delete":
			if len(args) == 0 {
				printlnFn("Usage: del <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "approve":
			if len(args) == 0 {
				printlnFn("Usage: approve <id>")
				continue
			}
			_ = a.Approve(ctx, args[0])

		case "reject":
			if len(args) == 0 {
				printlnFn("Usage: reject <id>")
				continue
			}
			_ = a.Reject(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
