package logfile

import (
	"sync"

	"go.uber.org/zap"
)

//Warner receives the warnings found while reading a logfile. Warnings never
//stop the reading.
type Warner interface {
	Warn(msg string)
}

//WarnFunc adapts a function to the Warner interface.
type WarnFunc func(msg string)

func (f WarnFunc) Warn(msg string) { f(msg) }

//Collector is a Warner that keeps every message it gets. It can be shared by
//logfiles read concurrently.
type Collector struct {
	mu       sync.Mutex
	Messages []string
}

func (C *Collector) Warn(msg string) {
	C.mu.Lock()
	C.Messages = append(C.Messages, msg)
	C.mu.Unlock()
}

//ZapWarner logs warnings with a zap logger. With a nil Logger, the global
//logger (zap.L()) is used, which discards everything until the application
//replaces it.
type ZapWarner struct {
	Logger *zap.Logger
}

func (Z ZapWarner) Warn(msg string) {
	l := Z.Logger
	if l == nil {
		l = zap.L()
	}
	l.Warn(msg, zap.String("source", "logfile"))
}
