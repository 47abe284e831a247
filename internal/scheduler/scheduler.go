package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"teamup/internal/model"
	"teamup/internal/pkg/config"
)

// Scheduler 调度器
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	db            *gorm.DB
	cronSchedules map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(db *gorm.DB, logger *zap.Logger) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		db:            db,
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg *config.Config) error {
	log := s.logger.Sugar()

	log.Info("启动定时任务调度器...")

	// 获取配置的 cron 表达式，默认每天凌晨3点执行
	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.Audit.Cron
	if cronExpr == "" {
		cronExpr = "0 0 3 * * *" // 默认: 每天凌晨3点
		log.Warnw("未配置audit.cron, 使用默认值", "cron", cronExpr)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		log.Info("执行定时任务: 名额对账")
		if err := s.AuditRosterCounts(); err != nil {
			log.Errorf("名额对账任务执行失败: %v", err)
		}
	})

	if err != nil {
		log.Errorf("注册名额对账任务: %v 失败: %v", cronExpr, err)
		return err
	}

	s.cronSchedules["roster_audit"] = entryID
	log.Infof("名额对账任务已注册: %s entry_id=%d", cronExpr, entryID)

	// 启动 cron
	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 停止 cron（等待正在执行的任务完成）
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// positionCount 按团队按职位的在岗人数统计
type positionCount struct {
	TeamID   int64          `gorm:"column:team_id"`
	Position model.Position `gorm:"column:position"`
	Cnt      int8           `gorm:"column:cnt"`
}

// AuditRosterCounts 名额对账
// 以 team_members 中 ACTIVE 记录重算每个团队每个职位的人数,
// 与团队上的冗余计数比对, 发现不一致仅记录日志, 不自动修正
func (s *Scheduler) AuditRosterCounts() error {
	log := s.logger.Sugar()

	var teams []*model.Team
	if err := s.db.Find(&teams).Error; err != nil {
		return err
	}

	var counts []positionCount
	err := s.db.Model(&model.TeamMember{}).
		Select("team_id, position, COUNT(*) AS cnt").
		Where("status = ?", model.TeamMemberStatusActive).
		Group("team_id, position").
		Scan(&counts).Error
	if err != nil {
		return err
	}

	// team_id -> position -> 实际人数
	actual := make(map[int64]map[model.Position]int8, len(teams))
	for _, c := range counts {
		if actual[c.TeamID] == nil {
			actual[c.TeamID] = make(map[model.Position]int8, len(model.AllPositions))
		}
		actual[c.TeamID][c.Position] = c.Cnt
	}

	mismatched := 0
	for _, team := range teams {
		for _, position := range model.AllPositions {
			want := actual[team.ID][position]
			got := team.CurrentCnt(position)
			if got != want {
				mismatched++
				log.Warnw("团队名额计数不一致",
					"team_id", team.ID,
					"position", position,
					"current_cnt", got,
					"active_members", want,
				)
			}
		}
	}

	log.Infow("名额对账完成", "teams", len(teams), "mismatched", mismatched)
	return nil
}
