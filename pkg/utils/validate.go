package utils

import "regexp"

// SessionIDRegex 会话ID正则表达式（UUID格式）
var SessionIDRegex = regexp.MustCompile(`^[\da-f]{8}-([\da-f]{4}-){3}[\da-f]{12}$`)

// MaxBodySize 最大请求体大小 (1MB)
const MaxBodySize = 1 * 1024 * 1024

// ValidateSessionID 验证会话ID格式
func ValidateSessionID(sessionID string) bool {
	return SessionIDRegex.MatchString(sessionID)
}
