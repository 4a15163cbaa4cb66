// Package vclock implements the virtual time engine: a linear mapping
// from real elapsed time to a rate-scaled display timeline, driven by
// a ticker-based refresh loop and observed through a subscribable
// snapshot store.
package vclock
