package user

type Role string

const (
	RoleOrganizer  Role = "organizer"
	RoleAdmin      Role = "admin"
	RoleTeamMember Role = "team_member"
	RoleClient     Role = "client"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOrganizer, RoleAdmin, RoleTeamMember, RoleClient:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
