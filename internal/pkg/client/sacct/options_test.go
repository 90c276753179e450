package sacct

import (
	"reflect"
	"strings"
	"testing"

	"saqd/internal/pkg/client/sacct/models"
)

func TestToArgs_ZeroOptions(t *testing.T) {
	opts := &Options{}
	args := opts.ToArgs()

	want := []string{
		"-n", "-P", "-X",
		"-S", "now-1hours",
		"-E", "now",
		"--format", "JobIDRaw,JobName,User,State,Elapsed,NodeList,AllocCPUS",
	}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("ToArgs() = %v, want %v", args, want)
	}
}

func TestToArgs_RecentHoursNeverZero(t *testing.T) {
	for _, tc := range []struct {
		hours uint32
		want  string
	}{
		{0, "now-1hours"},
		{1, "now-1hours"},
		{48, "now-48hours"},
	} {
		opts := &Options{RecentHours: tc.hours}
		args := opts.ToArgs()
		found := ""
		for i, a := range args {
			if a == "-S" && i+1 < len(args) {
				found = args[i+1]
			}
		}
		if found != tc.want {
			t.Errorf("RecentHours=%d: start token %q, want %q", tc.hours, found, tc.want)
		}
	}
}

func TestToArgs_Filters(t *testing.T) {
	opts := &Options{
		User:        "alice",
		States:      []models.JobState{models.StateCompleted, models.StateFailed},
		Partitions:  []string{"p1", "p2"},
		Qos:         []string{"normal"},
		RecentHours: 6,
	}
	args := opts.ToArgs()

	want := []string{
		"-n", "-P", "-X",
		"-S", "now-6hours",
		"-E", "now",
		"--user", "alice",
		"--partition", "p1,p2",
		"--qos", "normal",
		"--state", "COMPLETED,FAILED",
		"--format", "JobIDRaw,JobName,User,State,Elapsed,NodeList,AllocCPUS",
	}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("ToArgs() = %v, want %v", args, want)
	}
}

func TestToArgs_EmptyFiltersOmitted(t *testing.T) {
	opts := &Options{User: "", Partitions: nil, Qos: []string{}, States: nil}
	joined := strings.Join(opts.ToArgs(), " ")
	for _, flag := range []string{"--user", "--partition", "--qos", "--state"} {
		if strings.Contains(joined, flag) {
			t.Errorf("args %q must not contain %s for empty filter", joined, flag)
		}
	}
}

func TestToArgs_DedupesFormatFields(t *testing.T) {
	opts := &Options{FormatFields: []string{"State", "JobID", "State"}}
	args := opts.ToArgs()
	if got, want := args[len(args)-1], "State,JobID"; got != want {
		t.Fatalf("format token %q, want %q", got, want)
	}
}

func TestDedupeFields_PreservesFirstOccurrenceOrder(t *testing.T) {
	got := dedupeFields([]string{"JobIDRaw", "State", "JobIDRaw", "Elapsed", "State"})
	want := []string{"JobIDRaw", "State", "Elapsed"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("dedupeFields = %v, want %v", got, want)
	}
}

func TestDedupeFields_EmptySubstitutesDefaults(t *testing.T) {
	got := dedupeFields(nil)
	if !reflect.DeepEqual(got, defaultFormatFields) {
		t.Fatalf("dedupeFields(nil) = %v, want default vocabulary %v", got, defaultFormatFields)
	}
	// The substituted slice must not alias the package default.
	got[0] = "mutated"
	if defaultFormatFields[0] != "JobIDRaw" {
		t.Fatal("dedupeFields leaked the default field slice")
	}
}
