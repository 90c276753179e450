package model

import (
	"fmt"

	"saqd/internal/pkg/client/sacct/models"
)

// JobRows is a slice of JobRow.
type JobRows []JobRow

// JobRow represents a row in <cluster>_job_table. Only the columns the
// monitoring surface needs are mapped; the physical table name is
// cluster-specific, use DB.Table to target it.
type JobRow struct {
	JobDBInx   uint64 `gorm:"column:job_db_inx;primaryKey" json:"job_db_inx"`
	Deleted    int8   `gorm:"column:deleted" json:"deleted"`
	IDJob      uint32 `gorm:"column:id_job" json:"id_job"`
	JobName    string `gorm:"column:job_name" json:"job_name"`
	Account    string `gorm:"column:account" json:"account"`
	IDUser     uint32 `gorm:"column:id_user" json:"id_user"`
	CPUsReq    uint32 `gorm:"column:cpus_req" json:"cpus_req"`
	MemReq     uint64 `gorm:"column:mem_req" json:"mem_req"`
	Nodelist   string `gorm:"column:nodelist" json:"nodelist"`
	NodesAlloc uint32 `gorm:"column:nodes_alloc" json:"nodes_alloc"`
	Partition  string `gorm:"column:partition" json:"partition"`
	Priority   uint32 `gorm:"column:priority" json:"priority"`
	State      uint64 `gorm:"column:state" json:"state"`
	TimeSubmit uint64 `gorm:"column:time_submit" json:"time_submit"`
	TimeStart  uint64 `gorm:"column:time_start" json:"time_start"`
	TimeEnd    uint64 `gorm:"column:time_end" json:"time_end"`
	WorkDir    string `gorm:"column:work_dir" json:"work_dir"`
}

// JobTableName returns the cluster-specific job table name.
func JobTableName(clusterName string) string {
	return fmt.Sprintf("%s_job_table", clusterName)
}

// Slurm base job states as stored numerically in the state column.
// slurm.h: JOB_PENDING..JOB_OOM.
const (
	jobPending   = 0
	jobRunning   = 1
	jobComplete  = 3
	jobCancelled = 4
	jobFailed    = 5
)

// BaseState maps the numeric state column (low byte, flags masked off) to
// the JobState vocabulary used by the sacct client.
func (r JobRow) BaseState() models.JobState {
	switch r.State & 0xff {
	case jobPending:
		return models.StatePending
	case jobRunning:
		return models.StateRunning
	case jobComplete:
		return models.StateCompleted
	case jobCancelled:
		return models.StateCancelled
	case jobFailed:
		return models.StateFailed
	default:
		return models.StateOther
	}
}

// StateCode is the inverse of BaseState for building WHERE clauses.
// The second return is false for states with no single numeric code.
func StateCode(s models.JobState) (uint64, bool) {
	switch s {
	case models.StatePending:
		return jobPending, true
	case models.StateRunning:
		return jobRunning, true
	case models.StateCompleted:
		return jobComplete, true
	case models.StateCancelled:
		return jobCancelled, true
	case models.StateFailed:
		return jobFailed, true
	default:
		return 0, false
	}
}
