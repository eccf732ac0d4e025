package parser

import "testing"

func TestResolveRoles_ReturnExport(t *testing.T) {
	t.Parallel()

	columns := []string{
		"Sr No", "Return AWB No", "Forward AWB No", "Cust Order No",
		"RETURN ORDER NUMBER", "SELLER SKU", "Return Created Date",
	}
	m := ResolveRoles(columns, AllRoles())

	expect := map[Role]string{
		RoleReturnAWB:         "Return AWB No",
		RoleForwardAWB:        "Forward AWB No",
		RoleCustomerOrderNo:   "Cust Order No",
		RoleReturnOrderNo:     "RETURN ORDER NUMBER",
		RoleSellerSKU:         "SELLER SKU",
		RoleReturnCreatedDate: "Return Created Date",
	}
	for role, want := range expect {
		got, ok := m.Column(role)
		if !ok || got != want {
			t.Fatalf("role %s resolved to (%q, %v), want %q", role, got, ok, want)
		}
	}
	if _, ok := m.Column(RoleArticleName); ok {
		t.Fatal("article_name must be absent for a return export")
	}
}

func TestResolveRoles_FirstColumnWins(t *testing.T) {
	t.Parallel()

	columns := []string{"Old Seller SKU", "Seller SKU ID"}
	m := ResolveRoles(columns, []Role{RoleSellerSKU})
	if got := m[RoleSellerSKU]; got != "Old Seller SKU" {
		t.Fatalf("got %q, want first match %q", got, "Old Seller SKU")
	}
}

func TestResolveRoles_MissResolvesAbsent(t *testing.T) {
	t.Parallel()

	m := ResolveRoles([]string{"Foo", "Bar"}, AllRoles())
	if len(m) != 0 {
		t.Fatalf("expected no resolutions, got %v", m)
	}
}

func TestResolveRoles_CaseInsensitive(t *testing.T) {
	t.Parallel()

	m := ResolveRoles([]string{"seller sku id", "article name"}, []Role{RoleSellerSKU, RoleArticleName})
	if m[RoleSellerSKU] != "seller sku id" || m[RoleArticleName] != "article name" {
		t.Fatalf("unexpected resolution: %v", m)
	}
}
