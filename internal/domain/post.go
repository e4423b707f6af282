package domain

import "strings"

// StandbyOncallPost is the reserved weekend-only post name requiring
// Sat/Sun pairing to the same doctor (spec.md §3).
const StandbyOncallPost = "Standby Oncall"

// ClinicPostPrefix marks a synthesized per-unit clinic post, e.g. "clinic:U1".
const ClinicPostPrefix = "clinic:"

// ClinicPostName builds the synthesized clinic post name for a unit.
func ClinicPostName(unitID string) string {
	return ClinicPostPrefix + unitID
}

// IsClinicPost reports whether a post name is a synthesized clinic post.
func IsClinicPost(post string) bool {
	return strings.HasPrefix(post, ClinicPostPrefix)
}

// ClinicUnitID extracts the unit id from a clinic post name, or "" if post
// is not a clinic post.
func ClinicUnitID(post string) string {
	if !IsClinicPost(post) {
		return ""
	}
	return strings.TrimPrefix(post, ClinicPostPrefix)
}

// ResolvePostRole classifies a post name into its engine-visible family.
// This resolves spec.md §9's open question: an explicit tag rather than ad
// hoc prefix checks scattered through the constraint builder. Prefix
// matching is preserved as the mechanism (no post_role field exists on the
// wire), but it now happens in exactly one place. The role is not stored on
// the catalogue; the constraint builder calls this for each assignment
// variable when it applies category penalties.
func ResolvePostRole(post string) PostRole {
	switch {
	case IsClinicPost(post):
		return RoleClinic
	case post == StandbyOncallPost:
		return RoleStandby
	case strings.HasPrefix(post, "Ward"):
		return RoleWard
	case strings.HasPrefix(post, "ED"):
		return RoleED
	case strings.HasPrefix(post, "Registrar"):
		return RoleRegistrar
	default:
		return RoleOnCall
	}
}
