// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

var NoLog Logger = noLog{}

// noLog discards all messages. Useful in tests.
type noLog struct{}

func (noLog) Fatal(string, ...zap.Field) {}

func (noLog) Error(string, ...zap.Field) {}

func (noLog) Warn(string, ...zap.Field) {}

func (noLog) Info(string, ...zap.Field) {}

func (noLog) Debug(string, ...zap.Field) {}

func (noLog) Stop() {}
