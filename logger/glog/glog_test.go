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

package glog

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// swapOutput sets output to a fresh buffer and returns a restore func.
func swapOutput() (*bytes.Buffer, func()) {
	old := output
	buf := new(bytes.Buffer)
	output = buf
	return buf, func() { output = old }
}

func TestVGatesInfof(t *testing.T) {
	buf, restore := swapOutput()
	defer restore()

	SetV(0)
	V(2).Infof("should not appear")
	if buf.Len() != 0 {
		t.Errorf("V(2).Infof logged below threshold: %q", buf.String())
	}

	SetV(2)
	V(2).Infof("test %d", 7)
	if !strings.Contains(buf.String(), "test 7") {
		t.Errorf("V(2).Infof at threshold did not log: %q", buf.String())
	}
}

func TestInfofHeaderChar(t *testing.T) {
	buf, restore := swapOutput()
	defer restore()

	SetV(1)
	V(1).Infof("hello")
	if !strings.HasPrefix(buf.String(), "I") {
		t.Errorf("Infof header has wrong severity character: %q", buf.String())
	}
}

func TestErrorfAlwaysLogs(t *testing.T) {
	buf, restore := swapOutput()
	defer restore()

	SetV(0)
	Errorf("boom %s", "now")
	if !strings.Contains(buf.String(), "boom now") {
		t.Errorf("Errorf did not log regardless of verbosity: %q", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "E") {
		t.Errorf("Errorf header has wrong severity character: %q", buf.String())
	}
}

func TestHeaderIncludesCallerFileLine(t *testing.T) {
	buf, restore := swapOutput()
	defer restore()
	defer func(previous func() time.Time) { timeNow = previous }(timeNow)
	timeNow = func() time.Time {
		return time.Date(2006, 1, 2, 15, 4, 5, .067890e9, time.UTC)
	}

	SetV(1)
	V(1).Infof("test")
	want := "I0102 15:04:05.067890 logger/glog/glog_test.go:"
	if !strings.HasPrefix(buf.String(), want) {
		t.Errorf("header mismatch: got %q, want prefix %q", buf.String(), want)
	}
}

func TestSetToStderrDoesNotPanic(t *testing.T) {
	SetToStderr(true)
	SetToStderr(false)
}
