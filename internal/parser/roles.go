package parser

import "strings"

// Role names a semantically-required field whose actual column name varies
// across export format revisions.
type Role string

const (
	RoleSellerSKU            Role = "seller_sku"
	RoleArticleName          Role = "article_name"
	RoleOrderDate            Role = "order_date"
	RoleReturnAWB            Role = "return_awb"
	RoleForwardAWB           Role = "forward_awb"
	RoleCustomerOrderNo      Role = "customer_order_no"
	RoleReturnOrderNo        Role = "return_order_no"
	RoleForwardSellerOrderID Role = "forward_seller_order_id"
	RoleReturnCreatedDate    Role = "return_created_date"
)

// roleTokens maps each role to its recognition substrings, most specific
// first. Column names are compared upper-cased; a column matches a role when
// it contains any token. Kept as one table so a new export variant means a
// new token here, not new matching code.
var roleTokens = map[Role][]string{
	RoleSellerSKU:            {"SELLER SKU", "SKU"},
	RoleArticleName:          {"ARTICLE NAME", "ARTICLE"},
	RoleOrderDate:            {"OPEN ORDER DATE", "ORDER DATE"},
	RoleReturnAWB:            {"RETURN AWB"},
	RoleForwardAWB:           {"FORWARD AWB", "FWD AWB"},
	RoleCustomerOrderNo:      {"CUST ORDER", "CUSTOMER ORDER"},
	RoleReturnOrderNo:        {"RETURN ORDER"},
	RoleForwardSellerOrderID: {"FORWARD SELLER ORDER", "SELLER ORDER ID"},
	RoleReturnCreatedDate:    {"RETURN CREATED", "CREATED DATE"},
}

// CandidateIDRoles are the identifier roles a return record may have been
// scanned under. Membership in the scan set under any of them marks the
// record Matched.
var CandidateIDRoles = []Role{
	RoleReturnAWB,
	RoleForwardAWB,
	RoleCustomerOrderNo,
	RoleReturnOrderNo,
	RoleForwardSellerOrderID,
}

// RoleMap holds the resolved column name per role. Unresolved roles are
// simply absent from the map; downstream logic degrades instead of failing.
type RoleMap map[Role]string

// Column returns the resolved column name for role, with ok=false when the
// role did not resolve.
func (m RoleMap) Column(role Role) (string, bool) {
	name, ok := m[role]
	return name, ok
}

// ResolveRoles maps each requested role to the first column whose name
// contains one of the role's tokens. Substring matching, not equality:
// column names are not stable across export revisions but share tokens.
func ResolveRoles(columns []string, roles []Role) RoleMap {
	upper := make([]string, len(columns))
	for i, col := range columns {
		upper[i] = strings.ToUpper(strings.TrimSpace(col))
	}

	resolved := make(RoleMap, len(roles))
	for _, role := range roles {
		tokens := roleTokens[role]
	search:
		for _, tok := range tokens {
			for i, col := range upper {
				if strings.Contains(col, tok) {
					resolved[role] = columns[i]
					break search
				}
			}
		}
	}
	return resolved
}

// AllRoles lists every known role, for callers that want a full resolution.
func AllRoles() []Role {
	return []Role{
		RoleSellerSKU, RoleArticleName, RoleOrderDate,
		RoleReturnAWB, RoleForwardAWB, RoleCustomerOrderNo,
		RoleReturnOrderNo, RoleForwardSellerOrderID, RoleReturnCreatedDate,
	}
}
