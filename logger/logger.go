package logger

import (
	log "github.com/sirupsen/logrus"
)

type Log interface {
	Debug(content string)
	Debugf(content string, args ...interface{})
	Info(content string)
	Infof(content string, args ...interface{})
	Error(content string)
	Errorf(content string, args ...interface{})
}

// Default logs through the process-wide logrus logger.
func Default() Log {
	return logrusLog{}
}

type logrusLog struct{}

func (l logrusLog) Debug(content string) {
	log.Debug(content)
}

func (l logrusLog) Debugf(content string, args ...interface{}) {
	log.Debugf(content, args...)
}

func (l logrusLog) Info(content string) {
	log.Info(content)
}

func (l logrusLog) Infof(content string, args ...interface{}) {
	log.Infof(content, args...)
}

func (l logrusLog) Error(content string) {
	log.Error(content)
}

func (l logrusLog) Errorf(content string, args ...interface{}) {
	log.Errorf(content, args...)
}

// Discard drops everything; tests use this to keep output quiet.
func Discard() Log {
	return discardLog{}
}

type discardLog struct{}

func (l discardLog) Debug(content string)                       {}
func (l discardLog) Debugf(content string, args ...interface{}) {}
func (l discardLog) Info(content string)                        {}
func (l discardLog) Infof(content string, args ...interface{})  {}
func (l discardLog) Error(content string)                       {}
func (l discardLog) Errorf(content string, args ...interface{}) {}
