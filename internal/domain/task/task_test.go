package task

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

func strPtr(v string) *string { return &v }

// requireValidationField asserts err wraps domain.ErrValidation and the
// resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validInput() Input {
	return Input{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Category:    CategoryTodo,
	}
}

func TestInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Input)
		wantErr   bool
		wantField string
	}{
		{
			name:   "valid input passes",
			modify: func(_ *Input) {},
		},
		{
			name:      "empty title fails",
			modify:    func(in *Input) { in.Title = "" },
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace-only title fails",
			modify:    func(in *Input) { in.Title = "  \t" },
			wantErr:   true,
			wantField: "title",
		},
		{
			name:   "title at limit passes",
			modify: func(in *Input) { in.Title = strings.Repeat("a", MaxTitleLength) },
		},
		{
			name:      "title over limit fails",
			modify:    func(in *Input) { in.Title = strings.Repeat("a", MaxTitleLength+1) },
			wantErr:   true,
			wantField: "title",
		},
		{
			name:   "multibyte title counted in runes",
			modify: func(in *Input) { in.Title = strings.Repeat("é", MaxTitleLength) },
		},
		{
			name:   "empty description passes",
			modify: func(in *Input) { in.Description = "" },
		},
		{
			name:      "description over limit fails",
			modify:    func(in *Input) { in.Description = strings.Repeat("d", MaxDescriptionLength+1) },
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "invalid category fails",
			modify:    func(in *Input) { in.Category = "BACKLOG" },
			wantErr:   true,
			wantField: "category",
		},
		{
			name: "due date accepted",
			modify: func(in *Input) {
				d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
				in.DueDate = &d
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validInput()
			tt.modify(&in)
			err := in.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestInput_Normalize(t *testing.T) {
	t.Parallel()

	in := Input{Title: "  Plan sprint  ", Description: " notes "}
	in.Normalize()

	if in.Title != "Plan sprint" {
		t.Errorf("Title = %q, want %q", in.Title, "Plan sprint")
	}
	if in.Description != "notes" {
		t.Errorf("Description = %q, want %q", in.Description, "notes")
	}
	if in.Category != CategoryTodo {
		t.Errorf("Category = %q, want %q", in.Category, CategoryTodo)
	}
}

func TestInput_NormalizeKeepsCategory(t *testing.T) {
	t.Parallel()

	in := Input{Title: "x", Category: CategoryDone}
	in.Normalize()

	if in.Category != CategoryDone {
		t.Errorf("Category = %q, want %q", in.Category, CategoryDone)
	}
}

func TestPatch_Validate(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	bad := Category("LATER")

	tests := []struct {
		name      string
		patch     Patch
		wantErr   bool
		wantField string
	}{
		{name: "empty patch passes", patch: Patch{}},
		{name: "title change passes", patch: Patch{Title: strPtr("New title")}},
		{
			name:      "blank title fails",
			patch:     Patch{Title: strPtr(" ")},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "long title fails",
			patch:     Patch{Title: strPtr(strings.Repeat("t", MaxTitleLength+1))},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:  "clearing description passes",
			patch: Patch{Description: strPtr("")},
		},
		{
			name:      "long description fails",
			patch:     Patch{Description: strPtr(strings.Repeat("d", MaxDescriptionLength+1))},
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "invalid category fails",
			patch:     Patch{Category: &bad},
			wantErr:   true,
			wantField: "category",
		},
		{
			name:      "set and clear due date fails",
			patch:     Patch{DueDate: &due, ClearDueDate: true},
			wantErr:   true,
			wantField: "due_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.patch.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(&Patch{}).IsEmpty() {
		t.Error("zero Patch.IsEmpty() = false, want true")
	}
	if (&Patch{ClearDueDate: true}).IsEmpty() {
		t.Error("Patch{ClearDueDate}.IsEmpty() = true, want false")
	}
	if (&Patch{Title: strPtr("x")}).IsEmpty() {
		t.Error("Patch{Title}.IsEmpty() = true, want false")
	}
}
