package request

import (
	"testing"
	"time"
)

func TestOrderRequest_ToCommand(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	end := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	cmd := OrderRequest{
		Description: "  Monthly plan  ",
		Value:       150,
		StartDate:   start,
		EndDate:     end,
		ClientID:    " client-1 ",
	}.ToCommand()

	if cmd.Description != "Monthly plan" {
		t.Fatalf("expected trimmed description, got %q", cmd.Description)
	}
	if cmd.ClientID != "client-1" {
		t.Fatalf("expected trimmed client id, got %q", cmd.ClientID)
	}
	if cmd.StartDate.Location() != time.UTC || cmd.EndDate.Location() != time.UTC {
		t.Fatalf("expected UTC dates, got %v and %v", cmd.StartDate.Location(), cmd.EndDate.Location())
	}
	if !cmd.StartDate.Equal(start) {
		t.Fatalf("UTC conversion changed the instant: %v vs %v", cmd.StartDate, start)
	}
}

func TestUpdateOrderRequest_ToPatch(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		patch := UpdateOrderRequest{}.ToPatch()
		if patch.Description != nil || patch.Value != nil || patch.StartDate != nil || patch.EndDate != nil {
			t.Fatalf("expected empty patch, got %+v", patch)
		}
	})

	t.Run("present fields normalized", func(t *testing.T) {
		desc := "  Quarterly plan "
		start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600))
		patch := UpdateOrderRequest{Description: &desc, StartDate: &start}.ToPatch()

		if patch.Description == nil || *patch.Description != "Quarterly plan" {
			t.Fatalf("unexpected description: %v", patch.Description)
		}
		if patch.StartDate == nil || patch.StartDate.Location() != time.UTC {
			t.Fatalf("expected UTC start date, got %v", patch.StartDate)
		}
	})
}
