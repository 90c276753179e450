package sacct

import (
	"fmt"
	"strings"

	"saqd/internal/pkg/client/sacct/models"
)

// defaultFormatFields is the field list requested when the caller passes
// none. Kept explicit to avoid surprising default output shapes.
var defaultFormatFields = []string{"JobIDRaw", "JobName", "User", "State", "Elapsed", "NodeList", "AllocCPUS"}

// Options describes one query against Slurm accounting for recent-ended
// jobs. The zero value is valid and queries the last hour with the default
// field list.
type Options struct {
	// User limits results to this user when non-empty.
	User string
	// States limits results to these terminal states (empty = no filter).
	States []models.JobState
	// Partitions limits results to these partitions (empty = no filter).
	Partitions []string
	// Qos limits results to these QoS values (empty = no filter).
	Qos []string
	// RecentHours is the lookback window; 0 is treated as 1.
	RecentHours uint32
	// FormatFields are the sacct fields to request, in order. Order is
	// significant: it fixes the column order the parser relies on.
	FormatFields []string
}

// ToArgs renders the sacct argument list. Pure function of the options;
// the flag order is fixed because sacct is positionally picky about some
// repeated flags.
func (o *Options) ToArgs() []string {
	args := make([]string, 0, 16)

	// Output shape: no header, parsable '|' delimited, allocations only
	// (no job steps).
	args = append(args, "-n", "-P", "-X")

	// Time window. Never let the lookback collapse to zero.
	hours := o.RecentHours
	if hours < 1 {
		hours = 1
	}
	args = append(args, "-S", fmt.Sprintf("now-%dhours", hours))
	args = append(args, "-E", "now")

	// Filters.
	if o.User != "" {
		args = append(args, "--user", o.User)
	}
	if len(o.Partitions) > 0 {
		args = append(args, "--partition", strings.Join(o.Partitions, ","))
	}
	if len(o.Qos) > 0 {
		args = append(args, "--qos", strings.Join(o.Qos, ","))
	}
	if len(o.States) > 0 {
		states := make([]string, 0, len(o.States))
		for _, s := range o.States {
			states = append(states, s.String())
		}
		args = append(args, "--state", strings.Join(states, ","))
	}

	// Format fields, always last. Must dedupe exactly as the parser does
	// so column indexes match.
	fields := dedupeFields(o.FormatFields)
	args = append(args, "--format", strings.Join(fields, ","))

	return args
}

// dedupeFields drops repeated field names keeping first-occurrence order,
// and substitutes the default vocabulary when the result is empty. Both
// ToArgs and parseOutput call this independently; that is what keeps the
// requested column order and the parsed column order in agreement without
// handing a mutated list around.
func dedupeFields(fields []string) []string {
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	if len(out) == 0 {
		out = append(out, defaultFormatFields...)
	}
	return out
}
