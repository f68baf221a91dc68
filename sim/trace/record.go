package trace

// SeekEvent marks a seek that follows a change of sweep.
type SeekEvent string

const (
	// SeekEventNone is an ordinary seek within a sweep.
	SeekEventNone SeekEvent = ""
	// SeekEventReversal is the first seek after the head changed direction.
	SeekEventReversal SeekEvent = "reversal"
	// SeekEventWrap is the end-to-end jump of a circular sweep.
	SeekEventWrap SeekEvent = "wrap"
)

// SeekRecord captures a single head movement.
type SeekRecord struct {
	Algorithm string
	Step      int // 0-based index into the service order
	From      int
	To        int
	Distance  int
	Event     SeekEvent
}
