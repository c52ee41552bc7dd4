package analyzers

import (
	"context"
	"strings"
	"testing"

	"github.com/wonny/wbsight/internal/contracts"
)

type stubCharcs struct {
	required map[string]bool
}

func (s *stubCharcs) Required(ctx context.Context, subjectID int64) map[string]bool {
	return s.required
}

func goodProduct() *contracts.Product {
	return &contracts.Product{
		SKU:             "ABC-123",
		NmID:            111,
		Name:            "Новинка! Кружка керамическая с крышкой 350 мл",
		Brand:           "TestBrand",
		Description:     strings.Repeat("Описание товара. ", 20),
		PhotosCount:     6,
		VideosCount:     1,
		BasePriceRub:    1000,
		DiscountPercent: 20,
		Quantity:        8,
	}
}

func TestCardAnalyzerGoodCard(t *testing.T) {
	a := NewCardAnalyzer(&stubCharcs{})
	result := a.Analyze(context.Background(), goodProduct())

	if result.Failed() {
		t.Fatalf("Unexpected error marker: %s", result.Error)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("Expected single 'looks good' recommendation, got %v", result.Recommendations)
	}
	if !strings.Contains(result.Recommendations[0], "отлично") {
		t.Errorf("Unexpected recommendation: %s", result.Recommendations[0])
	}
	if result.SalePriceRub != 800 {
		t.Errorf("SalePriceRub = %v, want 800", result.SalePriceRub)
	}
	if result.StockQuantity != 8 {
		t.Errorf("StockQuantity = %d, want 8", result.StockQuantity)
	}
}

func TestCardAnalyzerWeakCard(t *testing.T) {
	p := &contracts.Product{
		SKU:  "short",
		NmID: 1,
		Name: "Кружка",
	}

	a := NewCardAnalyzer(&stubCharcs{})
	result := a.Analyze(context.Background(), p)

	// Failed checks: brand, title length, attention words, description,
	// photos, videos — six recommendations in fixed order.
	if len(result.Recommendations) != 6 {
		t.Fatalf("Expected 6 recommendations, got %d: %v", len(result.Recommendations), result.Recommendations)
	}
	if !strings.Contains(result.Recommendations[0], "Бренд") {
		t.Errorf("First recommendation should concern the brand, got %s", result.Recommendations[0])
	}
	if result.Brand != "нет данных" {
		t.Errorf("Brand = %q, want stand-in", result.Brand)
	}
}

func TestCardAnalyzerMissingCharacteristics(t *testing.T) {
	p := goodProduct()
	p.SubjectID = 1544
	p.Characteristics = []contracts.Characteristic{{Name: "Цвет"}}

	a := NewCardAnalyzer(&stubCharcs{required: map[string]bool{
		"Цвет":     true,
		"Материал": true,
		"Объем":    true,
	}})
	result := a.Analyze(context.Background(), p)

	var attrRec string
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "обязательные атрибуты") {
			attrRec = rec
		}
	}
	if attrRec == "" {
		t.Fatalf("Expected missing-attributes recommendation, got %v", result.Recommendations)
	}
	// Sorted for deterministic output
	if !strings.Contains(attrRec, "Материал, Объем") {
		t.Errorf("Expected sorted missing attributes, got %s", attrRec)
	}
	if strings.Contains(attrRec, "Цвет") {
		t.Errorf("Present attribute must not be listed as missing: %s", attrRec)
	}
}

func TestCardAnalyzerNoName(t *testing.T) {
	p := &contracts.Product{NmID: 1}

	a := NewCardAnalyzer(&stubCharcs{})
	result := a.Analyze(context.Background(), p)

	if result.Name != "NO_NAME" {
		t.Fatalf("Name = %q, want NO_NAME", result.Name)
	}

	last := result.Recommendations[len(result.Recommendations)-1]
	if !strings.Contains(last, "Личного кабинета") {
		t.Errorf("Expected legacy-cabinet note appended last, got %s", last)
	}
}

func TestCardAnalyzerNilProduct(t *testing.T) {
	a := NewCardAnalyzer(&stubCharcs{})
	result := a.Analyze(context.Background(), nil)

	if !result.Failed() {
		t.Error("Expected error marker for nil product")
	}
}

func TestCardAnalyzerWarningPropagates(t *testing.T) {
	p := goodProduct()
	p.Warning = "no detail card found in content API for nmId 111"

	a := NewCardAnalyzer(&stubCharcs{})
	result := a.Analyze(context.Background(), p)

	if result.Warning != p.Warning {
		t.Errorf("Warning = %q, want propagated", result.Warning)
	}
}

func TestHasAttentionWord(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Новинка! Кружка", true},
		{"Хит продаж", true},
		{"Premium подарок", true},
		{"Кружка керамическая", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := hasAttentionWord(tt.name); got != tt.want {
			t.Errorf("hasAttentionWord(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
