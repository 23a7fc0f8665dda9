package trial

// Result captures the outcome of one decryption trial. Results are immutable
// after creation; the orchestrator collects one per registry entry and
// discards them after reporting.
type Result struct {
	// Scheme is the registry name of the trial.
	Scheme string

	// KeyName labels the key derivation the trial used.
	KeyName string

	// Preview holds the leading bytes of the candidate plaintext.
	Preview []byte

	// Valid is the content validator's verdict.
	Valid bool

	// MIME is a detected content-type label, set only for accepted candidates.
	MIME string

	// Output is the persisted path, set only for accepted candidates.
	Output string

	// OutputSize is the persisted candidate size in bytes.
	OutputSize int64

	// Err records a per-trial failure. It never aborts sibling trials.
	Err error
}
