package logger

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// SQLWriter 将gorm的SQL日志桥接到zap的输出
type SQLWriter struct {
	zapcore.WriteSyncer
}

func (w *SQLWriter) Printf(format string, args ...interface{}) {
	_, _ = w.WriteSyncer.Write([]byte(fmt.Sprintf(format, args...)))
	_, _ = w.WriteSyncer.Write([]byte("\n"))
	_ = w.WriteSyncer.Sync()
}

// GetSQLWriter 获取SQL日志writer, 供gorm logger使用
func GetSQLWriter() *SQLWriter {
	return sqlWriter
}
