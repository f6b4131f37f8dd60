package scaffold

import "testing"

type fakeCopier struct {
	ok     bool
	copied []string
}

func (f *fakeCopier) Copy(text string) bool {
	f.copied = append(f.copied, text)
	return f.ok
}

type fakeNotifier struct {
	success, failure []string
}

func (f *fakeNotifier) NotifySuccess(msg string) { f.success = append(f.success, msg) }
func (f *fakeNotifier) NotifyError(msg string)   { f.failure = append(f.failure, msg) }

func TestBuilderRecomputesOnEveryMutation(t *testing.T) {
	b := NewBuilder()
	if got := b.Command(); got != "Scaffold-DbContext" {
		t.Fatalf("initial command = %q", got)
	}

	b.SetString(ConnectionString, "Host=x")
	b.SetBool(UseForce, true)
	if got, want := b.Command(), `Scaffold-DbContext "Host=x" -Force`; got != want {
		t.Errorf("command = %q, want %q", got, want)
	}

	b.SetTool(CLI)
	if got, want := b.Command(), `dotnet ef dbcontext scaffold "Host=x" -f`; got != want {
		t.Errorf("command = %q, want %q", got, want)
	}

	first := b.Recompute()
	if second := b.Recompute(); first != second {
		t.Errorf("Recompute not idempotent: %q vs %q", first, second)
	}
}

func TestBuilderReset(t *testing.T) {
	fresh := NewBuilder()

	b := NewBuilder()
	b.SetTool(CLI)
	b.SetString(Tables, "a,b")
	b.SetString(ContextName, "Ctx")
	b.SetBool(UseAnnotations, true)
	b.Reset()

	if b.State() != DefaultState() {
		t.Errorf("state after reset = %+v", b.State())
	}
	if b.Command() != fresh.Command() {
		t.Errorf("command after reset = %q, want %q", b.Command(), fresh.Command())
	}
	for _, tool := range []Tool{PackageManager, CLI} {
		if RenderFor(tool, b.State()) != RenderFor(tool, fresh.State()) {
			t.Errorf("%s render differs after reset", tool)
		}
	}
}

func TestBuilderSetStateDefaultsTool(t *testing.T) {
	b := NewBuilder()
	b.SetState(FormState{ContextName: "Ctx"})
	if b.State().Tool != PackageManager {
		t.Errorf("tool = %q, want pmc", b.State().Tool)
	}
	if got, want := b.Command(), "Scaffold-DbContext -Context Ctx"; got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestBuilderCopy(t *testing.T) {
	b := NewBuilder()
	b.SetString(ConnectionString, "Host=x")

	c := &fakeCopier{ok: true}
	n := &fakeNotifier{}
	if !b.Copy(c, n) {
		t.Fatal("expected copy to succeed")
	}
	if len(c.copied) != 1 || c.copied[0] != b.Command() {
		t.Errorf("copied %v, want %q", c.copied, b.Command())
	}
	if len(n.success) != 1 || n.success[0] != CopiedMessage {
		t.Errorf("success notifications = %v", n.success)
	}

	before := b.State()
	c.ok = false
	if b.Copy(c, n) {
		t.Fatal("expected copy to fail")
	}
	if len(n.failure) != 1 || n.failure[0] != CopyFailedMessage {
		t.Errorf("error notifications = %v", n.failure)
	}
	if b.State() != before {
		t.Error("failed copy changed the form")
	}
}
