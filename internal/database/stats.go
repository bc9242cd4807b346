package database

import "context"

// Stats 统计数据
type Stats struct {
	SessionCount        int     `json:"sessionCount"`
	DefinitionCount     int     `json:"definitionCount"`
	TodayNewSessions    int     `json:"todayNewSessions"`
	ActiveSessions7Days int     `json:"activeSessions7Days"`
	AvgSessionVersion   float64 `json:"avgSessionVersion"`
}

// GetAllStats 获取所有统计信息
func GetAllStats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM sessions) AS session_count,
			(SELECT COUNT(*) FROM definitions) AS definition_count,
			(SELECT COUNT(*) FROM sessions WHERE created_at >= CURRENT_DATE) AS today_new_sessions,
			(SELECT COUNT(*) FROM sessions WHERE updated_at >= NOW() - INTERVAL '7 days') AS active_sessions_7days,
			(SELECT COALESCE(AVG(version), 0) FROM sessions) AS avg_session_version
	`).Scan(
		&s.SessionCount, &s.DefinitionCount,
		&s.TodayNewSessions, &s.ActiveSessions7Days,
		&s.AvgSessionVersion,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
