package menu

import (
	"strings"
	"testing"
)

func TestExtractItems_InlineAndNextLinePrices(t *testing.T) {
	raw := "Tacos al Pastor $8.50\nBurrito Bowl\n9.25\nPLACEHOLDER TEXT\n"

	items := ExtractItems(raw)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0].Name != "Tacos al Pastor" || items[0].Price != 8.50 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Name != "Burrito Bowl" || items[1].Price != 9.25 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestExtractItems_AssignsItemIDs(t *testing.T) {
	items := ExtractItems("Elote $4.00\n")

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !strings.HasPrefix(items[0].ID, "m_") || len(items[0].ID) != 10 {
		t.Fatalf("unexpected item id %q", items[0].ID)
	}
}

func TestExtractItems_StripsDecoration(t *testing.T) {
	raw := "• Churros.....$4.00\ne Agua Fresca $3.00\n"

	items := ExtractItems(raw)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0].Name != "Churros" {
		t.Fatalf("expected Churros, got %q", items[0].Name)
	}
	if items[1].Name != "Agua Fresca" {
		t.Fatalf("expected Agua Fresca, got %q", items[1].Name)
	}
}

func TestExtractItems_SkipsTemplateNoise(t *testing.T) {
	raw := strings.Join([]string{
		"Insert your menu here 5.00",
		"Add Item $5.00",
		"Example Dish 6.00",
		"Company Logo 1.00",
		"Quesadilla $7.00",
	}, "\n")

	items := ExtractItems(raw)

	if len(items) != 1 || items[0].Name != "Quesadilla" {
		t.Fatalf("expected only Quesadilla, got %v", items)
	}
}

func TestExtractItems_RejectsImplausiblePrices(t *testing.T) {
	raw := strings.Join([]string{
		"Giant Platter 999.00",
		"Free Sample 0",
		"Lemonade 2.50",
	}, "\n")

	items := ExtractItems(raw)

	if len(items) != 1 || items[0].Name != "Lemonade" {
		t.Fatalf("expected only Lemonade, got %v", items)
	}
}

func TestExtractItems_RejectsDegenerateNames(t *testing.T) {
	raw := strings.Join([]string{
		"A 5.00",      // name too short
		"123 45",      // digits posing as a name
		"12345",       // bare number line
		"Pupusa 3.00", // the one real item
	}, "\n")

	items := ExtractItems(raw)

	if len(items) != 1 || items[0].Name != "Pupusa" {
		t.Fatalf("expected only Pupusa, got %v", items)
	}
}

func TestExtractItems_PriceOnlyLineNeedsAPrecedingName(t *testing.T) {
	// A consumed price line must not be re-parsed, and an orphan price
	// line produces nothing.
	raw := "Burrito Bowl\n9.25\n\n4.50\nHorchata $3.00\n"

	items := ExtractItems(raw)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0].Name != "Burrito Bowl" || items[1].Name != "Horchata" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestExtractItems_EmptyInput(t *testing.T) {
	if items := ExtractItems(""); len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
	if items := ExtractItems("\n\n  \n"); len(items) != 0 {
		t.Fatalf("expected no items from blank lines, got %v", items)
	}
}
