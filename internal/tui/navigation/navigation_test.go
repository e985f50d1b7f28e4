// ABOUTME: Tests for role-gated navigation visibility
// ABOUTME: Verifies the exact entry set per role, including the fail-closed fallback

package navigation

import (
	"reflect"
	"testing"

	"github.com/smartsales365/console/internal/token"
)

var baseline = []Entry{EntryProfile, EntryOrders}

func TestVisibleClientSeesBaselineOnly(t *testing.T) {
	got := Visible(token.RoleClient)
	if !reflect.DeepEqual(got, baseline) {
		t.Errorf("Visible(RoleClient) = %v, want %v", got, baseline)
	}
}

func TestVisibleUnknownRoleFailsClosed(t *testing.T) {
	got := Visible(token.RoleUnknown)
	if !reflect.DeepEqual(got, baseline) {
		t.Errorf("Visible(RoleUnknown) = %v, want baseline only", got)
	}
}

func TestVisibleOperator(t *testing.T) {
	want := []Entry{EntryProfile, EntryOrders, EntryProducts, EntryInventory, EntryUsers}
	got := Visible(token.RoleOperator)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Visible(RoleOperator) = %v, want %v", got, want)
	}
}

func TestVisibleAdministratorSeesEverything(t *testing.T) {
	want := []Entry{EntryProfile, EntryOrders, EntryProducts, EntryInventory, EntryUsers, EntryReports, EntryAuditLog}

	// Both accepted administrator spellings resolve to the same role and
	// therefore the same visibility set
	for _, label := range []string{"Admin", "Administrador"} {
		got := Visible(token.ParseRole(label))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Visible(ParseRole(%q)) = %v, want full set", label, got)
		}
	}
}

func TestEntryTitles(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{EntryProfile, "Profile"},
		{EntryOrders, "Orders"},
		{EntryProducts, "Products"},
		{EntryInventory, "Inventory"},
		{EntryUsers, "Users"},
		{EntryReports, "Reports"},
		{EntryAuditLog, "Audit Log"},
		{Entry(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.entry.Title(); got != tc.want {
			t.Errorf("Title() = %q, want %q", got, tc.want)
		}
	}
}
