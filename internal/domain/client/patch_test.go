package client

import (
	"slices"
	"testing"
)

func TestPatch_Apply(t *testing.T) {
	t.Parallel()

	c := validClient()
	c.InterestedPropertyIDs = []int64{1}

	name := "Jane Seller"
	typ := TypeSeller
	ids := []int64{7, 3, 7}
	Patch{Name: &name, Type: &typ, InterestedPropertyIDs: &ids}.Apply(&c)

	if c.Name != name || c.Type != TypeSeller {
		t.Errorf("Apply() = %q/%q, want %q/%q", c.Name, c.Type, name, TypeSeller)
	}
	if want := []int64{3, 7}; !slices.Equal(c.InterestedPropertyIDs, want) {
		t.Errorf("InterestedPropertyIDs = %v, want %v", c.InterestedPropertyIDs, want)
	}
	if ids[0] != 7 {
		t.Error("Apply() mutated the patch slice")
	}

	empty := []int64{}
	Patch{InterestedPropertyIDs: &empty}.Apply(&c)
	if c.InterestCount() != 0 {
		t.Errorf("InterestCount() = %d after clearing, want 0", c.InterestCount())
	}
	if c.Email != "jane@example.com" {
		t.Errorf("Email changed to %q", c.Email)
	}
}
