package main

import (
	"path/filepath"
	"testing"
)

func TestLoadFixture(t *testing.T) {
	fixture, err := loadFixture(filepath.Join("testdata", "members.yaml"))
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}

	if len(fixture.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(fixture.Members))
	}
	alice := fixture.Members[0]
	if alice.Email != "alice@example.com" || len(alice.Reports) != 2 {
		t.Errorf("unexpected first member: %+v", alice)
	}
	if alice.Reports[1].Day != 2 || alice.Reports[1].Content != "Second day report" {
		t.Errorf("unexpected report: %+v", alice.Reports[1])
	}

	if err := validate(fixture); err != nil {
		t.Errorf("fixture should validate, got %v", err)
	}
}

func TestValidateRejectsBadFixtures(t *testing.T) {
	tests := []struct {
		name    string
		fixture Fixture
	}{
		{"empty", Fixture{}},
		{"missing email", Fixture{Members: []MemberFixture{
			{Name: "A", Password: "pw"},
		}}},
		{"duplicate email", Fixture{Members: []MemberFixture{
			{Name: "A", Email: "a@example.com", Password: "pw"},
			{Name: "B", Email: "a@example.com", Password: "pw"},
		}}},
		{"day zero", Fixture{Members: []MemberFixture{
			{Name: "A", Email: "a@example.com", Password: "pw",
				Reports: []ReportFixture{{Date: "2024-01-01", Day: 0}}},
		}}},
		{"missing date", Fixture{Members: []MemberFixture{
			{Name: "A", Email: "a@example.com", Password: "pw",
				Reports: []ReportFixture{{Day: 1}}},
		}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := validate(&tc.fixture); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
