package sacct

import (
	"github.com/gin-gonic/gin"
)

type Router struct{}

func (rt Router) Register(r *gin.Engine) {
	v1 := r.Group("/api/v1/slurm/accounting")
	{
		v1.GET("/job/recent", HandlerGetRecentJobs) // GET /api/v1/slurm/accounting/job/recent?user=xxx&states=xxx&hours=xxx
	}
}
