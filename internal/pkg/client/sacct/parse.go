package sacct

import (
	"bufio"
	"strconv"
	"strings"

	"saqd/internal/pkg/client/sacct/models"
)

// Sentinels sacct emits for "not reported". Values equal to these leave
// the Job field at its zero value instead of being stored literally.
// Note "None" is deliberately not in this set: sacct uses it as a real
// Reason value, not as a missing-value marker.
const (
	sentinelUnknown = "Unknown"
	sentinelNA      = "N/A"
)

// parseOutput turns raw sacct stdout into job records, one per non-empty
// line, in input order. formatFields is the caller's original list; the
// dedup-and-default step is recomputed here so the column mapping matches
// what ToArgs requested.
//
// Parsing is best effort per line and per field: sentinel or empty columns
// skip assignment, extra columns are ignored, bad numerics fall back to
// zero values, and a line that never produced a job id is dropped.
func parseOutput(stdout string, formatFields []string) models.Jobs {
	jobs := make(models.Jobs, 0)
	fields := dedupeFields(formatFields)

	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var job models.Job
		for idx, raw := range strings.Split(line, "|") {
			if idx >= len(fields) {
				break
			}
			value := strings.TrimSpace(raw)
			if value == "" || value == sentinelUnknown || value == sentinelNA {
				continue
			}
			assignField(&job, fields[idx], value)
		}

		// A line that never populated an id is not a job (stray summary
		// or malformed row).
		if job.ID == "" {
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs
}

// assignField sets the Job attribute named by a sacct field. Field names
// are exact and case-sensitive; anything outside the vocabulary consumes
// its column without assigning. Numeric coercion never fails the line:
// counters fall back to 0, State to StateOther, Priority to absent.
func assignField(job *models.Job, field, value string) {
	switch field {
	case "JobIDRaw", "JobID":
		job.ID = value
	case "JobName":
		job.Name = value
	case "User":
		job.User = value
	case "State":
		job.State = models.ParseJobState(value)
	case "Elapsed":
		job.Time = value
	case "NNodes":
		job.Nodes = parseUint32(value)
	case "NodeList":
		job.Node = value
	case "AllocCPUS", "NCPUS":
		job.CPUs = parseUint32(value)
	case "ReqMem":
		job.Memory = value
	case "Partition":
		job.Partition = value
	case "QOS":
		job.QoS = value
	case "Account":
		job.Account = value
	case "Priority":
		if n, err := strconv.ParseUint(value, 10, 32); err == nil {
			p := uint32(n)
			job.Priority = &p
		}
	case "WorkDir":
		job.WorkDir = value
	case "Submit":
		job.SubmitTime = value
	case "Start":
		job.StartTime = value
	case "End":
		job.EndTime = value
	case "Reason":
		job.PendingReason = value
	}
}

func parseUint32(s string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}
