package slurmdb

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"saqd/internal/pkg/client/sacct/models"
	slurmdbc "saqd/internal/pkg/client/slurmdb"
	"saqd/internal/pkg/common/response"
	"saqd/internal/pkg/model"
)

// jobHistoryQuery binds the filter parameters of the DB-backed job
// history endpoint. job_table stores the numeric uid, so the user filter
// is a uid here, unlike the sacct endpoint.
type jobHistoryQuery struct {
	UID       *uint32 `form:"uid"`
	States    string  `form:"states"`
	Partition string  `form:"partition"`
	Hours     uint32  `form:"hours"`
}

// HandlerGetJobHistory 直接从 slurmdbd 数据库获取近期结束作业（分页）。
//
// @Summary 获取近期结束的作业（slurmdbd 数据库直查）
// @Description 从 <cluster>_job_table 查询回溯窗口内的作业记录；需要在配置中启用 slurmdb
// @Tags slurm-accounting, job
// @Produce json
// @Param uid query int false "限定用户 uid"
// @Param states query string false "状态列表，逗号分隔" example("COMPLETED,FAILED")
// @Param partition query string false "限定分区"
// @Param hours query int false "回溯窗口（小时），0 按 1 处理"
// @Param page query int false "页号(从1开始)" default(1) minimum(1)
// @Param page_size query int false "每页数量" default(20) minimum(1)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/slurm/accounting/job/all [get]
func HandlerGetJobHistory(c *gin.Context) {
	client := slurmdbc.Default()
	if client == nil {
		c.JSON(http.StatusInternalServerError, response.Response{Detail: "slurmdb client not initialized"})
		return
	}

	var q jobHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "invalid query parameters"})
		return
	}

	states := make([]models.JobState, 0)
	for _, name := range strings.Split(q.States, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		states = append(states, models.ParseJobState(name))
	}

	var pq model.PagingQuery
	_ = c.ShouldBindQuery(&pq)
	pq.SetDefaults(1, 20, 100)
	if err := pq.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "invalid paging parameters"})
		return
	}

	filter := slurmdbc.JobsFilter{
		UID:         q.UID,
		States:      states,
		Partition:   strings.TrimSpace(q.Partition),
		RecentHours: q.Hours,
	}
	rows, total, err := client.GetJobsPaged(c.Request.Context(), filter, pq.Offset(), pq.Limit())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Response{Detail: err.Error()})
		return
	}

	prevURL, nextURL := response.BuildPageLinks(c.Request.URL, pq.Page, pq.PageSize, int(total))
	totalInt := int(total)
	c.JSON(http.StatusOK, response.Response{
		Count:    &totalInt,
		Previous: prevURL,
		Next:     nextURL,
		Results:  rows,
	})
}
