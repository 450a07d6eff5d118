package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Logger struct {
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
}

func NewLogger() *Logger {
	return &Logger{
		infoLog:  log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime),
		warnLog:  log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime),
		errorLog: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime),
	}
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.infoLog.Println(format(msg, args...))
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.warnLog.Println(format(msg, args...))
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.errorLog.Println(format(msg, args...))
}

// format appends key=value pairs to the message.
func format(msg string, args ...interface{}) string {
	if len(args) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	if len(args)%2 != 0 {
		fmt.Fprintf(&b, " %v", args[len(args)-1])
	}
	return b.String()
}
