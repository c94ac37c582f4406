package domain

// TestSpec identifies a declared test method
type TestSpec struct {
	ClassName  string
	MethodName string
}

// String returns the canonical "Class::method" form used for suite names
func (s TestSpec) String() string {
	return s.ClassName + "::" + s.MethodName
}
