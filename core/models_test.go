package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same ID", content: "zte blade a75"},
		{name: "empty string", content: ""},
		{name: "long content", content: "Samsung Galaxy A55 5G 8GB 128GB Awesome Navy smartphone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}

	if IDFromContent("zte blade") == IDFromContent("tcl mw40") {
		t.Error("IDFromContent() produced the same ID for different content")
	}
}

func TestComputeSearchText(t *testing.T) {
	p := &Product{
		Id:       IDFromContent("zte blade a75"),
		Brand:    "ZTE",
		Model:    "Blade A75",
		Name:     "ZTE Blade A75",
		Category: CategorySmartphone,
		Price:    "25000 DA",
	}

	first := ComputeSearchText(p)
	second := ComputeSearchText(p)

	if first != second {
		t.Errorf("ComputeSearchText() is not deterministic: %q vs %q", first, second)
	}
	if first != "ZTE Blade A75 Smartphone Blade A75 25000 DA" {
		t.Errorf("ComputeSearchText() = %q", first)
	}
}

func TestCategoryDisplay(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryRouterModem, "routeur modem"},
		{CategorySmartphone, "smartphone"},
		{CategoryGeneral, "accessoire general"},
	}

	for _, tt := range tests {
		if got := tt.category.Display(); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	cats := Categories()
	if len(cats) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(cats))
	}
	if cats[0] != CategorySmartphone {
		t.Errorf("first category must be Smartphone, got %q", cats[0])
	}
	if cats[len(cats)-1] != CategoryGeneral {
		t.Errorf("last category must be the catch-all, got %q", cats[len(cats)-1])
	}
}
