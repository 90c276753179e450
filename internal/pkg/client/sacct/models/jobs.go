package models

import "strings"

// Jobs is an ordered list of accounting job records, in sacct output order.
type Jobs []Job

// Job is one accounted batch job (an allocation, not a step).
// The zero value means "nothing reported"; only the columns requested via
// --format and actually present in the output populate fields.
type Job struct {
	ID            string   `json:"id"`                       // JobIDRaw/JobID
	Name          string   `json:"name"`                     // JobName
	User          string   `json:"user"`                     // User
	State         JobState `json:"state"`                    // State
	Time          string   `json:"time"`                     // Elapsed (HH:MM:SS)
	Nodes         uint32   `json:"nodes"`                    // NNodes
	Node          string   `json:"node,omitempty"`           // NodeList
	CPUs          uint32   `json:"cpus"`                     // AllocCPUS/NCPUS
	Memory        string   `json:"memory"`                   // ReqMem
	Partition     string   `json:"partition"`                // Partition
	QoS           string   `json:"qos"`                      // QOS
	Account       string   `json:"account,omitempty"`        // Account
	Priority      *uint32  `json:"priority,omitempty"`       // Priority
	WorkDir       string   `json:"work_dir,omitempty"`       // WorkDir
	SubmitTime    string   `json:"submit_time,omitempty"`    // Submit
	StartTime     string   `json:"start_time,omitempty"`     // Start
	EndTime       string   `json:"end_time,omitempty"`       // End
	PendingReason string   `json:"pending_reason,omitempty"` // Reason
}

// JobState is a Slurm job state in its canonical sacct spelling.
type JobState string

const (
	StatePending   JobState = "PENDING"
	StateRunning   JobState = "RUNNING"
	StateCompleted JobState = "COMPLETED"
	StateFailed    JobState = "FAILED"
	StateCancelled JobState = "CANCELLED"
	// StateOther covers states the monitoring surface does not distinguish
	// (TIMEOUT, NODE_FAIL, OUT_OF_MEMORY, ...) and unparsable values.
	StateOther JobState = "OTHER"
)

func (s JobState) String() string { return string(s) }

// ParseJobState maps a sacct State column value to a JobState.
// sacct reports cancellations as "CANCELLED by <uid>"; anything not
// recognized collapses to StateOther rather than failing.
func ParseJobState(s string) JobState {
	v := strings.ToUpper(strings.TrimSpace(s))
	if strings.HasPrefix(v, "CANCELLED") {
		return StateCancelled
	}
	switch v {
	case "PENDING":
		return StatePending
	case "RUNNING":
		return StateRunning
	case "COMPLETED":
		return StateCompleted
	case "FAILED":
		return StateFailed
	default:
		return StateOther
	}
}
