package types

// Role gates the teacher and admin surfaces. Public sees the access-required
// placeholder instead of gated content.
type Role string

const (
	RolePublic  Role = "public"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RolePublic, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// CanAccess reports whether the role may view a surface gated at required.
// Admin may view the teacher dashboard; teacher may not view admin.
func (r Role) CanAccess(required Role) bool {
	switch required {
	case RolePublic:
		return true
	case RoleTeacher:
		return r == RoleTeacher || r == RoleAdmin
	case RoleAdmin:
		return r == RoleAdmin
	}
	return false
}
