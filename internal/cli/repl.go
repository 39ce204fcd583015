package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Watch(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Sort(ctx context.Context, mode string) error
	Toggle(ctx context.Context, id string) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Open(ctx context.Context, ref string) error
	Link(ctx context.Context, id string) error
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) error
}

const (
	helpLoggedOut = "Available commands: signup, login, exit"
	helpLoggedIn  = "Available commands: add, (l)ist, watch, search <text>, sort <mode>, toggle <id>, " +
		"edit <id>, delete <id>, open <id|link>, link <id>, export <file>, import <file>, whoami, logout, exit"
)

// needsLogin lists the commands that only make sense with a session.
var needsLogin = map[string]bool{
	"add": true, "l": true, "list": true, "watch": true, "search": true, "sort": true,
	"toggle": true, "edit": true, "delete": true, "open": true, "link": true,
	"export": true, "import": true, "whoami": true, "logout": true,
}

// runREPL starts a simple read–eval–print loop for the countdown CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help              - show available commands
//	  - signup            - create an account
//	  - login             - authenticate
//	  - exit | quit       - leave the program
//
//	Logged in:
//	  - help              - show available commands
//	  - add               - add an event
//	  - l | list          - render the event list
//	  - watch             - live countdowns until Enter
//	  - search <text>     - filter by title; no text clears the filter
//	  - sort <mode>       - time-asc, time-desc, alpha-asc, alpha-desc
//	  - toggle <id>       - expand or collapse a row
//	  - edit <id>         - change title and target time
//	  - delete <id>       - delete after confirmation
//	  - open <id|link>    - focused countdown for one event
//	  - link <id>         - print the shareable link
//	  - export <file>     - write all events to an iCalendar file
//	  - import <file>     - add the events of an iCalendar file
//	  - whoami            - show the logged-in account
//	  - logout            - log out
//	  - exit | quit       - leave the program
//
// Errors returned by handlers are reported and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("countdown%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]
		arg := strings.Join(args, " ")

		if needsLogin[cmd] && !a.isLoggedIn() {
			printlnFn("Please login or signup first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "signup":
			report(a.Signup(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "whoami":
			report(a.WhoAmI(ctx))

		case "add":
			report(a.Add(ctx))

		case "l", "list":
			report(a.List(ctx))

		case "watch":
			report(a.Watch(ctx))

		case "search":
			report(a.Search(ctx, arg))

		case "sort", "toggle", "edit", "delete", "open", "link", "export", "import":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <%s>", cmd, usageArg(cmd)))
				continue
			}
			report(dispatchWithArg(ctx, a, cmd, args[0]))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func dispatchWithArg(ctx context.Context, a execIface, cmd, arg string) error {
	switch cmd {
	case "sort":
		return a.Sort(ctx, arg)
	case "toggle":
		return a.Toggle(ctx, arg)
	case "edit":
		return a.Edit(ctx, arg)
	case "delete":
		return a.Delete(ctx, arg)
	case "open":
		return a.Open(ctx, arg)
	case "link":
		return a.Link(ctx, arg)
	case "export":
		return a.Export(ctx, arg)
	case "import":
		return a.Import(ctx, arg)
	}
	return nil
}

func usageArg(cmd string) string {
	switch cmd {
	case "sort":
		return "mode"
	case "open":
		return "id|link"
	case "export", "import":
		return "file"
	}
	return "id"
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", userMessage(err))
	}
}
