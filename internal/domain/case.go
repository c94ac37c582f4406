package domain

// Case is the capability surface every case-like test exposes to the
// builder and the runner
type Case interface {
	Test
	SetName(name string)
	SetRunTestInSeparateProcess(enabled bool)
	SetRunClassInSeparateProcess(enabled bool)
	SetPreserveGlobalState(enabled bool)
	SetBackupGlobals(enabled bool)
	SetBackupStaticAttributes(enabled bool)
}

// TestCase is the base test instance concrete test classes embed. It holds
// the case name, the provider data it was instantiated with, and the
// isolation/backup flags the runner acts on.
type TestCase struct {
	name    string
	data    []any
	dataKey string
	hasData bool

	runTestInSeparateProcess  bool
	runClassInSeparateProcess bool
	preserveGlobalState       TriState
	backupGlobals             TriState
	backupStaticAttributes    TriState
}

// NewTestCase creates a plain, non-parameterized test instance
func NewTestCase(name string) *TestCase {
	return &TestCase{name: name}
}

// NewParameterizedTestCase creates a test instance bound to one data set row
func NewParameterizedTestCase(name string, data []any, dataKey string) *TestCase {
	return &TestCase{
		name:    name,
		data:    data,
		dataKey: dataKey,
		hasData: true,
	}
}

// Kind returns KindParameterizedCase when the case carries provider data
func (c *TestCase) Kind() Kind {
	if c.hasData {
		return KindParameterizedCase
	}
	return KindPlainCase
}

// Name returns the case's name
func (c *TestCase) Name() string {
	return c.name
}

// Data returns the argument tuple the case was instantiated with
func (c *TestCase) Data() []any {
	return c.data
}

// DataKey returns the data set key the case was instantiated under
func (c *TestCase) DataKey() string {
	return c.dataKey
}

// SetName sets the case's name
func (c *TestCase) SetName(name string) {
	c.name = name
}

// SetRunTestInSeparateProcess marks the case for separate-process execution
func (c *TestCase) SetRunTestInSeparateProcess(enabled bool) {
	c.runTestInSeparateProcess = enabled
}

// SetRunClassInSeparateProcess marks the case for class-level
// separate-process execution
func (c *TestCase) SetRunClassInSeparateProcess(enabled bool) {
	c.runClassInSeparateProcess = enabled
}

// SetPreserveGlobalState records whether global state carries over into the
// isolated process
func (c *TestCase) SetPreserveGlobalState(enabled bool) {
	c.preserveGlobalState = TriStateOf(enabled)
}

// SetBackupGlobals records whether globals are backed up around the case
func (c *TestCase) SetBackupGlobals(enabled bool) {
	c.backupGlobals = TriStateOf(enabled)
}

// SetBackupStaticAttributes records whether static attributes are backed up
// around the case
func (c *TestCase) SetBackupStaticAttributes(enabled bool) {
	c.backupStaticAttributes = TriStateOf(enabled)
}

// RunTestInSeparateProcess reports whether the case runs in its own process
func (c *TestCase) RunTestInSeparateProcess() bool {
	return c.runTestInSeparateProcess
}

// RunClassInSeparateProcess reports whether the whole class runs in its own
// process
func (c *TestCase) RunClassInSeparateProcess() bool {
	return c.runClassInSeparateProcess
}

// PreserveGlobalState returns the preserve-global-state flag; unset means
// the runner default applies
func (c *TestCase) PreserveGlobalState() TriState {
	return c.preserveGlobalState
}

// BackupGlobals returns the backup-globals flag; unset means the runner
// default applies
func (c *TestCase) BackupGlobals() TriState {
	return c.backupGlobals
}

// BackupStaticAttributes returns the backup-static-attributes flag; unset
// means the runner default applies
func (c *TestCase) BackupStaticAttributes() TriState {
	return c.backupStaticAttributes
}
