package constants

import "fmt"

// Role yang dikenal di token
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOperatorsCanAccess = "❌ Hanya admin atau operator yang boleh mengakses fitur %s."
)

var (
	AdminOnly     = []string{RoleAdmin}
	OperatorAndUp = []string{RoleAdmin, RoleOperator}
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOperator(feature string) string {
	return fmt.Sprintf(ErrOnlyOperatorsCanAccess, feature)
}
