// Package auth maps a caller identity onto a query scope. The reference
// behavior is a bare string comparison against one elevated identity; it lives
// behind an interface so a token-based scheme can replace it without touching
// query logic.
package auth

// Scope restricts metadata queries. When Global is true no owner restriction
// applies; otherwise results are limited to records owned by Owner.
type Scope struct {
	Owner  string
	Global bool
}

// Authorizer resolves an opaque caller identity to a Scope.
type Authorizer interface {
	ScopeFor(identity string) Scope
}

// IdentityAuthorizer grants a global scope to the single administrator
// identity and an owner-restricted scope to everyone else.
type IdentityAuthorizer struct {
	AdminIdentity string
}

func NewIdentityAuthorizer(adminIdentity string) *IdentityAuthorizer {
	return &IdentityAuthorizer{AdminIdentity: adminIdentity}
}

func (a *IdentityAuthorizer) ScopeFor(identity string) Scope {
	if identity == a.AdminIdentity {
		return Scope{Global: true}
	}
	return Scope{Owner: identity}
}
