package postgres

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func TestModels_ForeignKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		model        any
		relation     string
		wantColumn   string
		wantOnDelete string
	}{
		{name: "property collaborator", model: &propertyRow{}, relation: "Collaborator", wantColumn: "collaborator_id", wantOnDelete: "RESTRICT"},
		{name: "task assignee", model: &taskRow{}, relation: "Assignee", wantColumn: "assigned_to", wantOnDelete: "RESTRICT"},
		{name: "task property", model: &taskRow{}, relation: "RelatedProperty", wantColumn: "related_property_id", wantOnDelete: "RESTRICT"},
		{name: "task client", model: &taskRow{}, relation: "Client", wantColumn: "client_id", wantOnDelete: "RESTRICT"},
		{name: "interest property", model: &interestRow{}, relation: "Property", wantColumn: "property_id", wantOnDelete: "RESTRICT"},
		{name: "interest client", model: &interestRow{}, relation: "Client", wantColumn: "client_id", wantOnDelete: "CASCADE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sch, err := schema.Parse(tt.model, &sync.Map{}, schema.NamingStrategy{})
			if err != nil {
				t.Fatalf("schema.Parse() error = %v", err)
			}

			rel, ok := sch.Relationships.Relations[tt.relation]
			if !ok {
				t.Fatalf("relation %q not found", tt.relation)
			}

			c := rel.ParseConstraint()
			if c == nil {
				t.Fatalf("relation %q has no constraint", tt.relation)
			}
			if c.OnDelete != tt.wantOnDelete {
				t.Errorf("OnDelete = %q, want %q", c.OnDelete, tt.wantOnDelete)
			}
			if len(c.ForeignKeys) != 1 || c.ForeignKeys[0].DBName != tt.wantColumn {
				t.Errorf("foreign key columns = %v, want [%s]", c.ForeignKeys, tt.wantColumn)
			}
		})
	}
}
