// Package zapsink provides a sink that logs through a *zap.Logger.
//
// The Sink adds caller skip so that zap's caller annotation names the code
// that called the policy in front of it. New assumes one ThresholdLogger or
// KeyedLogger; use WithCallerSkip for other stacks:
//
//	s := zapsink.New(z, zapsink.WithCallerSkip(
//		zapsink.PolicyCallerSkip+zapsink.PrefixCallerSkip))
//
// zap has no trace level, so Sink deliberately does not implement
// core.TraceSink: trace calls dispatched to it are dropped by the policy
// before they reach zap. Sync flushes the underlying logger and is picked
// up by the config package's fx lifecycle hook.
package zapsink
