package role

// Role is the closed set of account roles. Every protected operation checks
// roles through Allows so that role semantics live in one place.
type Role string

const (
	User       Role = "USER"
	StoreOwner Role = "STORE_OWNER"
	Admin      Role = "ADMIN"
)

// Parse returns the role with exactly the given name.
func Parse(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case User, StoreOwner, Admin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Allows reports whether r is one of the allowed roles. There is no
// hierarchy: ADMIN does not imply USER or STORE_OWNER.
func Allows(r Role, allowed ...Role) bool {
	if !r.Valid() {
		return false
	}
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
