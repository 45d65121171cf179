package collaborator

import (
	"errors"
	"slices"
	"testing"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

func validCollaborator() Collaborator {
	return Collaborator{
		ID:    1,
		Name:  "Alex Agent",
		Email: "alex@agency.example",
		Phone: "555 010 2030",
		Role:  RoleAgent,
	}
}

func TestRole_Label(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role Role
		want string
	}{
		{RoleAgent, "Real Estate Agent"},
		{RoleManager, "Manager"},
		{RoleAdmin, "Administrator"},
		{RoleAssistant, "Assistant"},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.role.Label(); got != tt.want {
				t.Errorf("Role(%q).Label() = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	if _, err := ParseRole("INTERN"); !errors.Is(err, domain.ErrInvalidChoice) {
		t.Errorf("ParseRole(INTERN) error = %v, want ErrInvalidChoice", err)
	}
	if got := RoleChoices(); len(got) != 4 || got[0].Code != "AGENT" {
		t.Errorf("RoleChoices() = %v", got)
	}
}

func TestCollaborator_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Collaborator)
		wantField string
	}{
		{name: "valid collaborator passes", modify: func(_ *Collaborator) {}},
		{name: "missing name fails", modify: func(c *Collaborator) { c.Name = "" }, wantField: "name"},
		{name: "missing email fails", modify: func(c *Collaborator) { c.Email = "" }, wantField: "email"},
		{name: "bad phone fails", modify: func(c *Collaborator) { c.Phone = "12345" }, wantField: "phone"},
		{name: "bad role fails", modify: func(c *Collaborator) { c.Role = "BOSS" }, wantField: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validCollaborator()
			tt.modify(&c)
			err := c.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("ValidationError.Fields missing key %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestWorkload_Total(t *testing.T) {
	t.Parallel()

	w := Workload{Properties: 2, Tasks: 3}
	if got := w.Total(); got != 5 {
		t.Errorf("Total() = %d, want 5", got)
	}
	if got := (Workload{}).Total(); got != 0 {
		t.Errorf("zero Workload Total() = %d, want 0", got)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	c := validCollaborator()

	if err := (Filter{Role: "BOSS"}).Validate(); !errors.Is(err, domain.ErrInvalidCriteria) {
		t.Errorf("Validate() = %v, want ErrInvalidCriteria", err)
	}
	if !(Filter{Role: RoleAgent, Query: "AGENCY"}).Matches(&c) {
		t.Error("Matches() = false for role+email search")
	}
	if (Filter{Role: RoleManager}).Matches(&c) {
		t.Error("Matches() = true for role mismatch")
	}

	cs := []Collaborator{{ID: 1, Name: "zed"}, {ID: 2, Name: "Amy"}}
	Sort(cs)
	if got := []int64{cs[0].ID, cs[1].ID}; !slices.Equal(got, []int64{2, 1}) {
		t.Errorf("Sort() order = %v, want [2 1]", got)
	}
}
