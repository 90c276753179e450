package slurmdb

import (
	"github.com/gin-gonic/gin"
)

type Router struct{}

func (rt Router) Register(r *gin.Engine) {
	v1 := r.Group("/api/v1/slurm/accounting")
	{
		v1.GET("/job/all", HandlerGetJobHistory) // GET /api/v1/slurm/accounting/job/all?uid=xxx&states=xxx&page=xxx
	}
}
