package log

const (
	// Run
	FieldRunID = "run_id"
	FieldSeed  = "seed"

	// Group
	FieldPrefix    = "prefix"
	FieldRequested = "requested"
	FieldAccepted  = "accepted"
	FieldAttempts  = "attempts"
	FieldRejected  = "rejected"

	// Output
	FieldPath    = "path"
	FieldEntries = "entries"

	// Service
	FieldService = "service"
)
