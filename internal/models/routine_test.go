package models

import "testing"

func TestRoutineItem_Toggle(t *testing.T) {
	item := RoutineItem{
		ID:       "test-id",
		Title:    "Hidratação",
		Category: RoutineNutrition,
	}

	item.Toggle()
	if !item.Completed || item.Streak != 1 {
		t.Errorf("after complete: completed=%v streak=%d, want true/1", item.Completed, item.Streak)
	}

	item.Toggle()
	if item.Completed || item.Streak != 0 {
		t.Errorf("after uncomplete: completed=%v streak=%d, want false/0", item.Completed, item.Streak)
	}

	// Streak never goes negative even when un-completing at zero.
	item.Streak = 0
	item.Completed = true
	item.Toggle()
	if item.Streak != 0 {
		t.Errorf("streak went negative: %d", item.Streak)
	}
}

func TestRoutineItem_ToggleAccumulates(t *testing.T) {
	item := RoutineItem{ID: "test-id", Title: "Exercício", Category: RoutineTraining}

	for i := 0; i < 3; i++ {
		item.Toggle() // complete
		item.Completed = false
	}
	if item.Streak != 3 {
		t.Errorf("streak = %d, want 3", item.Streak)
	}
}

func TestDefaultRoutineItems(t *testing.T) {
	items := DefaultRoutineItems()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			t.Errorf("default item %s invalid: %v", item.ID, err)
		}
		if item.Completed || item.Streak != 0 {
			t.Errorf("default item %s should start unchecked with zero streak", item.ID)
		}
	}
}
