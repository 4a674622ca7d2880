package virtual

import "time"

// HookPos defines the enum of possible hooking positions.
type HookPos struct {
	Name string
}

// HookPosBeforeUpdate is a hook position that triggers before a subsystem's
// periodic update runs.
var HookPosBeforeUpdate = &HookPos{Name: "BeforeUpdate"}

// HookPosAfterUpdate is a hook position that triggers after a subsystem's
// periodic update returns, with timing attached.
var HookPosAfterUpdate = &HookPos{Name: "AfterUpdate"}

// UpdateInfo describes one subsystem update within a drive cycle. Duration
// and Overrun are only meaningful at HookPosAfterUpdate.
type UpdateInfo struct {
	Cycle     uint64
	Subsystem string
	Duration  time.Duration
	Overrun   bool
}

// HookCtx is the context that holds all the information about the site that
// a hook is triggered.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   UpdateInfo
}

// A Hook is a short piece of program that can be invoked by a hookable
// object.
type Hook interface {
	// Func determines what to do if the hook is invoked.
	Func(ctx HookCtx)
}

// Hookable defines an object that accepts Hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)
}

// A HookableBase provides the hook bookkeeping for types that implement the
// Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers the registered Hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
