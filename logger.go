package main

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/a-bouts/hems-lookout/alert"
)

// NotificationLog keeps one line per notification sent, apart from the
// diagnostics on stderr.
type NotificationLog struct {
	logger *log.Logger
	closer io.Closer
}

// foldLinesFormatter writes each entry on a single line, newlines folded
// into spaces.
type foldLinesFormatter struct{}

func (foldLinesFormatter) Format(entry *log.Entry) ([]byte, error) {
	msg := strings.ReplaceAll(entry.Message, "\n", " ")
	return []byte(fmt.Sprintf("%s %s\n", entry.Time.Format("2006-01-02 15:04:05,000"), msg)), nil
}

func NewNotificationLog(w io.Writer) *NotificationLog {
	logger := log.New()
	logger.Out = w
	logger.Formatter = foldLinesFormatter{}
	logger.Level = log.DebugLevel

	return &NotificationLog{logger: logger}
}

// OpenNotificationLog appends to the file at path, rotated once it grows
// past maxSize megabytes.
func OpenNotificationLog(path string, maxSize int) *NotificationLog {
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: 3,
		MaxAge:     28,
	}

	l := NewNotificationLog(file)
	l.closer = file
	return l
}

func (l *NotificationLog) Sent(n alert.Notification) {
	l.logger.Infof("? %s", n.Message)
}

func (l *NotificationLog) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
