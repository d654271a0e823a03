package cli

// Exit codes for snipsync.
const (
	// ExitSuccess indicates no document needed changes (or all updates
	// were applied).
	ExitSuccess = 0

	// ExitError indicates one or more documents failed to process.
	ExitError = 1

	// ExitChangesRequired indicates check mode found documents whose
	// snippet blocks are out of date.
	ExitChangesRequired = 2
)
