// Package testsupport provides shared fakes for pipeline tests.
package testsupport

import (
	"context"
	"sync"
)

// Call records one external command invocation seen by FakeExecutor.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// FakeExecutor implements executor.Executor without spawning processes.
// Handler, when set, decides the result per call; otherwise every call
// succeeds with empty output.
type FakeExecutor struct {
	mu      sync.Mutex
	calls   []Call
	Handler func(ctx context.Context, dir, name string, args []string) (string, error)
}

func (f *FakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.record(ctx, "", name, args)
}

func (f *FakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.record(ctx, dir, name, args)
}

func (f *FakeExecutor) record(ctx context.Context, dir, name string, args []string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Dir: dir, Name: name, Args: args})
	f.mu.Unlock()

	if f.Handler != nil {
		return f.Handler(ctx, dir, name, args)
	}
	return "", nil
}

// Calls returns a copy of all recorded invocations.
func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount reports how many times a command with the given name ran.
// An empty name counts every invocation.
func (f *FakeExecutor) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if name == "" || c.Name == name {
			n++
		}
	}
	return n
}

// Arg returns the value following the given flag in a call's argument
// list, or "" when absent.
func (c Call) Arg(flag string) string {
	for i, a := range c.Args {
		if a == flag && i+1 < len(c.Args) {
			return c.Args[i+1]
		}
	}
	return ""
}
