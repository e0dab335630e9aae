package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/crisscross/internal/config"
)

func TestRegisterCreate(t *testing.T) {
	Register("test-ray", func() Scenario {
		return Scenario{Title: "Test ray", Kind: KindRay, Scene: config.DefaultScene()}
	})

	if !Exists("test-ray") {
		t.Fatal("Exists() = false after Register")
	}

	sc, err := Create("test-ray")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if sc.ID != "test-ray" || sc.Kind != KindRay {
		t.Errorf("Create() = %+v", sc)
	}

	// factories hand out independent copies
	sc.Scene.Blocked = append(sc.Scene.Blocked, config.TileConfig{X: 1, Y: 1})
	again, _ := Create("test-ray")
	if len(again.Scene.Blocked) != 0 {
		t.Error("Create() should return a fresh scene")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if err == nil || !strings.Contains(err.Error(), "unknown scenario") {
		t.Errorf("Create() error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Scenario { return Scenario{Kind: KindBeam} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func() Scenario { return Scenario{Kind: KindBeam} })
}

func TestListSorted(t *testing.T) {
	Register("test-b", func() Scenario { return Scenario{Title: "B", Kind: KindCrossing} })
	Register("test-a", func() Scenario { return Scenario{Title: "A", Kind: KindRay} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindRay, KindBeam, KindCrossing} {
		if !k.Valid() {
			t.Errorf("%q should be valid", k)
		}
	}
	if Kind("cone").Valid() {
		t.Error("unknown kind should be invalid")
	}
}
