package mip

import "fmt"

// Stable, deterministic variable-id strings. The exact format is never
// parsed back — only used as a map key and, for diagnostics, echoed in
// solver logs — so it only has to be unique and stable across a single
// build, not pretty.

func assignVarName(doctorID string, dayIndex int, post string) string {
	return fmt.Sprintf("x|%s|%d|%s", doctorID, dayIndex, post)
}

func weekendVarName(doctorID string, weekendIndex int) string {
	return fmt.Sprintf("y|%s|%d", doctorID, weekendIndex)
}

func restViolationVarName(doctorID string, dayIndex int) string {
	return fmt.Sprintf("rest|%s|%d", doctorID, dayIndex)
}

func gapVarName(doctorID string, dayIndex int) string {
	return fmt.Sprintf("gap|%s|%d", doctorID, dayIndex)
}

func minOneSlackVarName(doctorID string) string {
	return fmt.Sprintf("minone|%s", doctorID)
}

func coverageSlackVarName(dayIndex int, post string) string {
	return fmt.Sprintf("covslack|%d|%s", dayIndex, post)
}

func unitOverVarName(unitID string, dayIndex int) string {
	return fmt.Sprintf("unitover|%s|%d", unitID, dayIndex)
}

func overflowVarName(doctorID string) string {
	return fmt.Sprintf("standbyk|%s", doctorID)
}
