package slurmdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"saqd/config"
	"saqd/internal/pkg/client/sacct/models"
	"saqd/internal/pkg/model"
)

// Client wraps a read-only GORM connection to slurmdbd's database. It is
// an optional alternative source for job history on installs where the
// daemon can reach the accounting database directly.
type Client struct {
	DB          *gorm.DB
	ClusterName string
	logger      *slog.Logger
}

// Close closes the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// New creates a read-only GORM Client configured from config.Slurmdb.
func New(cfg config.Slurmdb, logger *slog.Logger) (*Client, error) {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("build dsn", "dsn", dsn)

	gcfg := &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Warn),
	}

	db, err := gorm.Open(mysql.Open(dsn), gcfg)
	if err != nil {
		return nil, err
	}

	// Tune the underlying connection pool
	if sqlDB, err := db.DB(); err == nil {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if d := parseDuration(cfg.ConnMaxLifetime); d > 0 {
			sqlDB.SetConnMaxLifetime(d)
		}
		// Proactive connectivity check with timeout to avoid hanging on unreachable DB
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}
	}

	// Enforce read-only at ORM layer
	enforceReadOnly(db)

	return &Client{DB: db, ClusterName: cfg.ClusterName, logger: logger}, nil
}

// buildDSN constructs a DSN string without importing the mysql driver package.
// Format: user:pass@tcp(host:port)/dbname?param=value
func buildDSN(cfg config.Slurmdb) (string, error) {
	creds := cfg.User
	if cfg.Password != "" {
		creds = fmt.Sprintf("%s:%s", cfg.User, cfg.Password)
	}

	addr := fmt.Sprintf("tcp(%s:%d)", cfg.Host, cfg.Port)
	dbname := cfg.Database

	params := make([]string, 0, 8)
	if cfg.Charset != "" {
		params = append(params, fmt.Sprintf("charset=%s", cfg.Charset))
	}
	if cfg.ParseTime {
		params = append(params, "parseTime=true")
	} else {
		params = append(params, "parseTime=false")
	}
	if cfg.Loc != "" {
		params = append(params, fmt.Sprintf("loc=%s", url.QueryEscape(cfg.Loc)))
	}
	if cfg.TLS != "" {
		params = append(params, fmt.Sprintf("tls=%s", cfg.TLS))
	}
	// Conservative timeouts to prevent hangs on connect/read/write
	params = append(params, "timeout=5s")
	params = append(params, "readTimeout=5s")
	params = append(params, "writeTimeout=5s")

	dsn := fmt.Sprintf("%s@%s/%s", creds, addr, dbname)
	if len(params) > 0 {
		dsn = dsn + "?" + strings.Join(params, "&")
	}
	return dsn, nil
}

// parseDuration returns 0 on empty or invalid duration strings.
func parseDuration(s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

// Package-level default Client for convenience wiring.
var defaultClient *Client

// SetDefault sets the package-level default SlurmDB Client.
func SetDefault(c *Client) { defaultClient = c }

// Default returns the package-level default SlurmDB Client.
func Default() *Client { return defaultClient }

// enforceReadOnly installs GORM callbacks that reject write operations and non-read raw SQL.
func enforceReadOnly(db *gorm.DB) {
	block := func(tx *gorm.DB) {
		tx.AddError(errors.New("slurmdb Client is read-only"))
	}
	_ = db.Callback().Create().Before("gorm:create").Register("saqd:readonly_create", block)
	_ = db.Callback().Update().Before("gorm:update").Register("saqd:readonly_update", block)
	_ = db.Callback().Delete().Before("gorm:delete").Register("saqd:readonly_delete", block)

	_ = db.Callback().Raw().Before("gorm:raw").Register("saqd:readonly_raw", func(tx *gorm.DB) {
		sql := strings.TrimSpace(tx.Statement.SQL.String())
		up := strings.ToUpper(sql)
		if strings.HasPrefix(up, "SELECT") || strings.HasPrefix(up, "SHOW") || strings.HasPrefix(up, "DESCRIBE") || strings.HasPrefix(up, "EXPLAIN") {
			return
		}
		tx.AddError(errors.New("read-only: raw SQL must be SELECT/SHOW/DESCRIBE/EXPLAIN"))
	})
}

// JobsFilter narrows a job-history query. Zero values mean "no filter",
// mirroring the sacct Options semantics: RecentHours 0 still looks back
// one hour.
type JobsFilter struct {
	// UID filters on id_user; job_table stores the numeric uid, not the
	// user name. Nil means no user filter.
	UID         *uint32
	States      []models.JobState
	Partition   string
	RecentHours uint32
}

// GetJobsPaged queries <ClusterName>_job_table for jobs that ended inside
// the lookback window, newest first, with pagination. Returns the page and
// the total count before paging.
func (c *Client) GetJobsPaged(ctx context.Context, filter JobsFilter, offset, limit int) (model.JobRows, int64, error) {
	if c == nil || c.DB == nil {
		return nil, 0, fmt.Errorf("nil slurmdb Client")
	}
	if strings.TrimSpace(c.ClusterName) == "" {
		return nil, 0, fmt.Errorf("cluster name is empty in slurmdb Client")
	}
	table := model.JobTableName(c.ClusterName)

	hours := filter.RecentHours
	if hours < 1 {
		hours = 1
	}
	since := time.Now().Add(-time.Duration(hours) * time.Hour).Unix()

	base := c.DB.WithContext(ctx).Table(table).
		Where("deleted = 0 AND time_end >= ?", since)
	if filter.UID != nil {
		base = base.Where("id_user = ?", *filter.UID)
	}
	if filter.Partition != "" {
		base = base.Where("`partition` = ?", filter.Partition)
	}
	if len(filter.States) > 0 {
		codes := make([]uint64, 0, len(filter.States))
		for _, s := range filter.States {
			if code, ok := model.StateCode(s); ok {
				codes = append(codes, code)
			}
		}
		if len(codes) > 0 {
			base = base.Where("state & 0xff IN ?", codes)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows model.JobRows
	q := base.Order("time_end DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
