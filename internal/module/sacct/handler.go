package sacct

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	sacctc "saqd/internal/pkg/client/sacct"
	"saqd/internal/pkg/client/sacct/models"
	"saqd/internal/pkg/common/response"
	"saqd/internal/pkg/model"
)

// recentJobsQuery binds the filter parameters of the recent-jobs endpoint.
// List parameters are comma-separated in a single query value.
type recentJobsQuery struct {
	User       string `form:"user"`
	States     string `form:"states"`
	Partitions string `form:"partitions"`
	Qos        string `form:"qos"`
	Hours      uint32 `form:"hours"`
	Fields     string `form:"fields"`
}

// splitCSV splits a comma-separated query value, dropping empty members.
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseStates maps comma-separated state names to the JobState vocabulary.
// Unrecognized names are rejected so a typo does not silently turn into an
// unfiltered sacct call.
func parseStates(s string) ([]models.JobState, error) {
	names := splitCSV(s)
	states := make([]models.JobState, 0, len(names))
	for _, name := range names {
		st := models.ParseJobState(name)
		if st == models.StateOther && !strings.EqualFold(name, string(models.StateOther)) {
			return nil, fmt.Errorf("unknown state %q", name)
		}
		states = append(states, st)
	}
	return states, nil
}

// HandlerGetRecentJobs 获取近期结束作业列表（可分页）。
//
// @Summary 获取近期结束的作业（sacct）
// @Description 通过 sacct 查询回溯窗口内的作业记录；支持用户/状态/分区/QoS 过滤与分页返回
// @Tags slurm-accounting, job
// @Produce json
// @Param user query string false "限定用户"
// @Param states query string false "状态列表，逗号分隔" example("COMPLETED,FAILED")
// @Param partitions query string false "分区列表，逗号分隔" example("p1,p2")
// @Param qos query string false "QoS 列表，逗号分隔" example("normal")
// @Param hours query int false "回溯窗口（小时），0 按 1 处理"
// @Param fields query string false "sacct 字段列表，逗号分隔；为空使用默认字段"
// @Param paging query bool false "是否开启分页" default(true)
// @Param page query int false "页号(从1开始)" default(1) minimum(1)
// @Param page_size query int false "每页数量" default(20) minimum(1)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/slurm/accounting/job/recent [get]
func HandlerGetRecentJobs(c *gin.Context) {
	client := sacctc.Default()
	if client == nil {
		c.JSON(http.StatusInternalServerError, response.Response{Detail: "sacct client not initialized"})
		return
	}

	var q recentJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "invalid query parameters"})
		return
	}

	states, err := parseStates(q.States)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{Detail: err.Error()})
		return
	}

	hours := q.Hours
	if hours == 0 {
		hours = client.DefaultRecentHours()
	}

	opts := &sacctc.Options{
		User:         strings.TrimSpace(q.User),
		States:       states,
		Partitions:   splitCSV(q.Partitions),
		Qos:          splitCSV(q.Qos),
		RecentHours:  hours,
		FormatFields: splitCSV(q.Fields),
	}

	jobs, err := client.RecentJobs(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Response{Detail: err.Error()})
		return
	}

	total := len(jobs)

	// 分页开关，默认 true
	var pagingFlag struct {
		Paging *bool `form:"paging"`
	}
	_ = c.ShouldBindQuery(&pagingFlag)
	paging := true
	if pagingFlag.Paging != nil {
		paging = *pagingFlag.Paging
	}

	if paging {
		var pq model.PagingQuery
		_ = c.ShouldBindQuery(&pq)
		pq.SetDefaults(1, 20, 100)
		if err := pq.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{Detail: "invalid paging parameters"})
			return
		}
		start := pq.Offset()
		if start > total {
			start = total
		}
		end := start + pq.Limit()
		if end > total {
			end = total
		}
		pageSlice := jobs[start:end]
		prevURL, nextURL := response.BuildPageLinks(c.Request.URL, pq.Page, pq.PageSize, total)
		c.JSON(http.StatusOK, response.Response{Count: &total, Previous: prevURL, Next: nextURL, Results: pageSlice})
		return
	}

	c.JSON(http.StatusOK, response.Response{Count: &total, Results: jobs})
}
