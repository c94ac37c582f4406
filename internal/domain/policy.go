package domain

// TriState models a policy flag that can be explicitly enabled, explicitly
// disabled, or left unset so the runner default applies
type TriState int

const (
	// TriStateUnset leaves the runner default untouched
	TriStateUnset TriState = iota
	// TriStateEnabled explicitly enables the flag
	TriStateEnabled
	// TriStateDisabled explicitly disables the flag
	TriStateDisabled
)

// TriStateOf converts a bool into the matching explicit TriState value
func TriStateOf(enabled bool) TriState {
	if enabled {
		return TriStateEnabled
	}
	return TriStateDisabled
}

// IsSet reports whether the flag carries an explicit value
func (t TriState) IsSet() bool {
	return t != TriStateUnset
}

// Enabled reports whether the flag is explicitly enabled
func (t TriState) Enabled() bool {
	return t == TriStateEnabled
}

// ExecutionPolicy bundles the isolation and state-backup flags applied
// uniformly to every test instance built from one method
type ExecutionPolicy struct {
	RunTestInSeparateProcess  bool
	RunClassInSeparateProcess bool
	PreserveGlobalState       TriState
	BackupGlobals             TriState
	BackupStaticAttributes    TriState
}

// ApplyTo pushes the resolved policy onto a test instance. Unset optional
// flags leave the instance's runner defaults untouched. Application is
// idempotent and order-independent across the four settings.
func (p ExecutionPolicy) ApplyTo(c Case) {
	if p.RunTestInSeparateProcess {
		c.SetRunTestInSeparateProcess(true)
	}
	if p.RunClassInSeparateProcess {
		c.SetRunClassInSeparateProcess(true)
	}
	if (p.RunTestInSeparateProcess || p.RunClassInSeparateProcess) && p.PreserveGlobalState.IsSet() {
		c.SetPreserveGlobalState(p.PreserveGlobalState.Enabled())
	}
	if p.BackupGlobals.IsSet() {
		c.SetBackupGlobals(p.BackupGlobals.Enabled())
	}
	if p.BackupStaticAttributes.IsSet() {
		c.SetBackupStaticAttributes(p.BackupStaticAttributes.Enabled())
	}
}
