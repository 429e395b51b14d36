// Package validation holds the field checks applied to transfer, deposit and
// balance requests. All checks are pure and return a *domain.Error of the
// matching kind (wrapped with detail) on the first violated rule.
package validation
