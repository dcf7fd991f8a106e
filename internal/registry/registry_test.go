package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/lemon-snake/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                  { return s.id }
func (s stubGame) Title() string               { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)    {}
func (s stubGame) HandleAction(core.Action)    {}
func (s stubGame) Tick() core.StepResult       { return core.StepResult{} }
func (s stubGame) Ticking() bool               { return true }
func (s stubGame) TickInterval() time.Duration { return time.Millisecond }
func (s stubGame) Render(*core.Screen)         {}
func (s stubGame) State() core.GameState       { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, expected zz_stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("Title = %q, expected 'Stub zz_stub'", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create() of unknown id should fail")
	}
	if Exists("does_not_exist") {
		t.Error("Exists() of unknown id should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}
