package repository

import "strings"

// setClause accumulates column assignments for partial updates.  Handlers
// bind optional fields as pointers; only fields that actually arrived are
// added, so omitted fields keep their stored value without resorting to
// COALESCE tricks in SQL.
type setClause struct {
	cols []string
	args []any
}

// add unconditionally includes an assignment.
func (s *setClause) add(col string, v any) {
	s.cols = append(s.cols, col+" = ?")
	s.args = append(s.args, v)
}

// addString includes the assignment only when the pointer is non-nil.
func (s *setClause) addString(col string, v *string) {
	if v != nil {
		s.add(col, *v)
	}
}

// addInt includes the assignment only when the pointer is non-nil.
func (s *setClause) addInt(col string, v *int) {
	if v != nil {
		s.add(col, *v)
	}
}

// addBool includes the assignment only when the pointer is non-nil.
func (s *setClause) addBool(col string, v *bool) {
	if v != nil {
		s.add(col, *v)
	}
}

// addFloat includes the assignment only when the pointer is non-nil.
func (s *setClause) addFloat(col string, v *float64) {
	if v != nil {
		s.add(col, *v)
	}
}

// empty reports whether no assignment was collected.
func (s *setClause) empty() bool { return len(s.cols) == 0 }

// assignments joins the collected column expressions for the SET list.
func (s *setClause) assignments() string { return strings.Join(s.cols, ", ") }
