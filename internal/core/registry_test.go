package core

import (
	"strings"
	"testing"

	"github.com/JonMunkholm/dashboard/internal/config"
	"github.com/JonMunkholm/dashboard/internal/table"
)

func testView(key string) ListView {
	return ListView{
		Key:   key,
		Label: strings.ToUpper(key),
		Columns: []table.Column{
			{Key: "name", Header: "Name", Sortable: true},
			{Key: "status", Header: "Status"},
		},
		Options: table.Options{SearchKey: "name", FilterKey: "status"},
	}
}

func TestRegistry(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testView("zeta"))
	Register(testView("alpha"))

	if ViewCount() != 2 {
		t.Fatalf("ViewCount() = %d, want 2", ViewCount())
	}

	v, ok := Get("alpha")
	if !ok {
		t.Fatal("Get(alpha) not found")
	}
	if v.Options.PageSize != table.DefaultPageSize {
		t.Errorf("PageSize = %d, want default %d", v.Options.PageSize, table.DefaultPageSize)
	}
	if !v.Sortable("name") || v.Sortable("status") || v.Sortable("missing") {
		t.Error("Sortable() reports wrong columns")
	}

	all := All()
	if all[0].Key != "alpha" || all[1].Key != "zeta" {
		t.Errorf("All() order = %s, %s; want alpha, zeta", all[0].Key, all[1].Key)
	}

	if _, ok := Get("missing"); ok {
		t.Error("Get(missing) should not be found")
	}
}

func TestRegister_Panics(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testView("dup"))

	assertPanics(t, "duplicate view", func() { Register(testView("dup")) })

	bad := testView("cols")
	bad.Columns = append(bad.Columns, table.Column{Key: "name", Header: "Again"})
	assertPanics(t, "duplicate column", func() { Register(bad) })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestInitialState(t *testing.T) {
	v := testView("init")
	v.Options.PageSize = 4
	s := v.InitialState()

	if s.Page != 1 || s.PageSize != 4 || s.FilterValue != table.FilterAll {
		t.Errorf("InitialState() = %+v", s)
	}
	if s.SearchKey != "name" || s.FilterKey != "status" {
		t.Errorf("InitialState() keys = %q, %q", s.SearchKey, s.FilterKey)
	}
}

func TestApplyViewConfig(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testView("people"))
	Register(testView("others"))

	err := ApplyViewConfig(20, map[string]config.ViewOverride{
		"people": {
			PageSize:  5,
			SearchKey: "status",
			FilterOptions: []config.FilterOptionOverride{
				{Value: "pending", Label: "Waiting"},
			},
		},
	})
	if err != nil {
		t.Fatalf("ApplyViewConfig() error = %v", err)
	}

	people, _ := Get("people")
	if people.Options.PageSize != 5 {
		t.Errorf("people PageSize = %d, want 5", people.Options.PageSize)
	}
	if people.Options.SearchKey != "status" {
		t.Errorf("people SearchKey = %q, want status", people.Options.SearchKey)
	}
	if len(people.Options.FilterOptions) != 1 || people.Options.FilterOptions[0].Label != "Waiting" {
		t.Errorf("people FilterOptions = %+v", people.Options.FilterOptions)
	}

	others, _ := Get("others")
	if others.Options.PageSize != 20 {
		t.Errorf("others PageSize = %d, want 20", others.Options.PageSize)
	}
}

func TestApplyViewConfig_UnknownView(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testView("people"))

	err := ApplyViewConfig(0, map[string]config.ViewOverride{"staff": {PageSize: 5}})
	if err == nil {
		t.Fatal("expected error for unknown view")
	}
	if MapError(err).Code != "APP002" {
		t.Errorf("error %v should map to APP002", err)
	}

	people, _ := Get("people")
	if people.Options.PageSize != table.DefaultPageSize {
		t.Error("a rejected override must not change any view")
	}
}
