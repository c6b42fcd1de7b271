package content

import (
	"testing"
)

func TestDimensionMerger_Run_AllAxes(t *testing.T) {
	merger := NewDimensionMerger()

	characteristics := []Characteristic{
		{Key: "Ширина товара", Value: "94 см"},
		{Key: "Высота товара", Value: "22 см"},
		{Key: "Глубина товара", Value: "12 см"},
	}

	merged, ok := merger.Run(characteristics)
	if !ok {
		t.Fatal("Expected dimensions to merge")
	}
	if merged != "94 см x 22 см x 12 см" {
		t.Errorf("Expected '94 см x 22 см x 12 см', got '%s'", merged)
	}
}

func TestDimensionMerger_Run_PartialAxes(t *testing.T) {
	merger := NewDimensionMerger()

	characteristics := []Characteristic{
		{Key: "Высота", Value: "40 см"},
		{Key: "Длина", Value: "120 см"},
	}

	merged, ok := merger.Run(characteristics)
	if !ok {
		t.Fatal("Expected dimensions to merge")
	}
	if merged != "40 см x 120 см" {
		t.Errorf("Expected only present axes in W>H>L order, got '%s'", merged)
	}
}

func TestDimensionMerger_Run_FirstOccurrenceWins(t *testing.T) {
	merger := NewDimensionMerger()

	characteristics := []Characteristic{
		{Key: "Ширина", Value: "94 см"},
		{Key: "Ширина упаковки", Value: "100 см"},
	}

	merged, ok := merger.Run(characteristics)
	if !ok {
		t.Fatal("Expected dimensions to merge")
	}
	if merged != "94 см" {
		t.Errorf("Expected first width to win, got '%s'", merged)
	}
}

func TestDimensionMerger_Run_NoDimensions(t *testing.T) {
	merger := NewDimensionMerger()

	characteristics := []Characteristic{
		{Key: "Цвет", Value: "Белый"},
		{Key: "Мощность", Value: "2 кВт"},
	}

	if merged, ok := merger.Run(characteristics); ok {
		t.Errorf("Expected no merge without dimension keys, got '%s'", merged)
	}
}
