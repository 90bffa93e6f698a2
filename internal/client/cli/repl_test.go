package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) record(name, arg string) error {
	if arg != "" {
		name += " " + arg
	}
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", "") }
func (f *fakeExec) Login(ctx context.Context) error    { return f.record("login", "") }
func (f *fakeExec) WhoAmI(ctx context.Context) error   { return f.record("whoami", "") }
func (f *fakeExec) Add(ctx context.Context) error      { return f.record("add", "") }
func (f *fakeExec) List(ctx context.Context) error     { return f.record("list", "") }
func (f *fakeExec) Logout(ctx context.Context) error   { return f.record("logout", "") }

func (f *fakeExec) Show(ctx context.Context, arg string) error   { return f.record("show", arg) }
func (f *fakeExec) Done(ctx context.Context, arg string) error   { return f.record("done", arg) }
func (f *fakeExec) Remove(ctx context.Context, arg string) error { return f.record("rm", arg) }

func runWithInput(t *testing.T, f *fakeExec, input string) []string {
	t.Helper()

	oldPrintln := printlnFn
	defer func() { printlnFn = oldPrintln }()
	var printed []string
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), f, func() string { return "test" }, scanner)
	return printed
}

func TestREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runWithInput(t, f, "list\nadd\ndone 5\nrm 7\nshow 3\nwhoami\nlogout\nexit\n")

	want := []string{"list", "add", "done 5", "rm 7", "show 3", "whoami", "logout"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, f.calls[i], want[i])
		}
	}
}

func TestREPL_UnknownCommand(t *testing.T) {
	f := &fakeExec{}
	printed := runWithInput(t, f, "frobnicate\nquit\n")

	found := false
	for _, s := range printed {
		if strings.Contains(s, "Unknown command") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unknown-command notice, printed: %v", printed)
	}
	if len(f.calls) != 0 {
		t.Fatalf("no commands should run, got %v", f.calls)
	}
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	f := &fakeExec{}
	runWithInput(t, f, "")
	// Reaching here without hanging is the assertion.
}
