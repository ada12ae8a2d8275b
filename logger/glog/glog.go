// Go support for leveled logs, analogous to https://code.google.com/p/google-glog/
//
// Copyright 2013 Google Inc. All Rights Reserved.
// Modifications copyright 2017 ETC Dev Team. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package glog implements a leveled logger in the style of the Google-internal
// C++ INFO/ERROR/V setup, trimmed to the subset core/vm, core and ethdb
// actually call: V-gated tracing and an unconditional error line, both
// written to stderr.
//
//	glog.V(logger.Detail).Infof("pc=%-5d op=%-14s", pc, op)
//
//	glog.Errorf("eth: DB %s: %s", file, err)
//
// Whether a V call logs depends on the verbosity threshold set by SetV,
// which cmd/frontier-evm wires to its -verbosity flag.
package glog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// output is where formatted log lines are written. Swapped out in tests.
var output io.Writer = os.Stderr

// timeNow stubbed out for testing.
var timeNow = time.Now

// trimPrefixes are stripped from a caller's file path for display.
var trimPrefixes = []string{
	"/github.com/eth-classic/go-ethereum",
}

func trimToImportPath(file string) string {
	// This file's own path locates the module root, however the source
	// tree is laid out on disk.
	if _, self, _, ok := runtime.Caller(0); ok {
		root := strings.TrimSuffix(self, "logger/glog/glog.go")
		if root != self && strings.HasPrefix(file, root) {
			return file[len(root):]
		}
	}
	if root := strings.LastIndex(file, "src/"); root >= 0 {
		file = file[root+3:]
	}
	for _, p := range trimPrefixes {
		if strings.HasPrefix(file, p) {
			file = file[len(p):]
			break
		}
	}
	return strings.TrimPrefix(file, "/")
}

// severity identifies the sort of log line: info or error. The character
// printed in the header is severityChar[s].
type severity int

const (
	infoLog severity = iota
	errorLog
)

const severityChar = "IE"

// Level is the verbosity threshold controlled by SetV (and, indirectly, by
// cmd/frontier-evm's -verbosity flag). A V(level) call only logs when level
// is at or below the configured threshold.
//
// Level is treated as a sync/atomic int32.
type Level int32

func (l *Level) get() Level  { return Level(atomic.LoadInt32((*int32)(l))) }
func (l *Level) set(v Level) { atomic.StoreInt32((*int32)(l), int32(v)) }

// loggingT collects the global state of the logging setup.
type loggingT struct {
	mu sync.Mutex

	toStderr  bool // kept for parity with the upstream SetToStderr flag
	verbosity Level
}

var logging = loggingT{toStderr: true}

// SetToStderr toggles whether log output goes to stderr. This fork has no
// other destination, so it exists only so callers ported from upstream
// glog still compile; it does not change where output goes.
func SetToStderr(toStderr bool) {
	logging.mu.Lock()
	logging.toStderr = toStderr
	logging.mu.Unlock()
}

// SetV sets the global verbosity threshold.
func SetV(v int) {
	logging.verbosity.set(Level(v))
}

// Verbose implements Infof, gated by whether V's argument was at or below
// the configured verbosity threshold.
type Verbose bool

// V reports whether verbosity at the call site is at least the requested
// level. The returned value is a boolean of type Verbose, which implements
// Infof. One may write either:
//
//	if glog.V(2) { glog.Infof(...) }
//
// or the shorter:
//
//	glog.V(2).Infof(...)
func V(level Level) Verbose {
	return Verbose(logging.verbosity.get() >= level)
}

// Infof logs to the INFO severity, guarded by the value of v.
func (v Verbose) Infof(format string, args ...interface{}) {
	if v {
		logging.printfmt(infoLog, format, args...)
	}
}

// Errorf logs to the ERROR severity unconditionally.
func Errorf(format string, args ...interface{}) {
	logging.printfmt(errorLog, format, args...)
}

// printfmt formats a header in the manner of the C++ implementation --
//
//	Lmmdd hh:mm:ss.uuuuuu file:line] msg
//
// -- and writes the result to output.
func (l *loggingT) printfmt(s severity, format string, args ...interface{}) {
	now := timeNow()
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "???", 0
	} else {
		file = trimToImportPath(file)
	}
	month, day := now.Month(), now.Day()
	hour, minute, second := now.Clock()

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(output, "%c%02d%02d %02d:%02d:%02d.%06d %s:%d] %s\n",
		severityChar[s], month, day, hour, minute, second, now.Nanosecond()/1000,
		file, line, fmt.Sprintf(format, args...))
}
