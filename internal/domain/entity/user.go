package entity

// Roles conocidos. La membresía la decide el proveedor de identidad externo
// (tabla user_roles); este núcleo la trata como entrada opaca de autorización.
const (
	RoleViewer   = "viewer"
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

// CanInsert indica si el actor puede registrar movimientos.
// Es una comodidad de UX/API: la frontera de seguridad real es el RLS del store.
func CanInsert(roles []string) bool {
	for _, r := range roles {
		if r == RoleOperator || r == RoleAdmin {
			return true
		}
	}
	return false
}
