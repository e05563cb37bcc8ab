// Package dispatcher implements the multi-queue round-robin dispatch
// engine. Orders are admitted into fixed-capacity lines and serviced by
// visiting lines in creation order, granting each a bounded quantum of
// work per turn. The engine is fully synchronous and designed for a
// single owner; every operation returns the event-log lines it produced
// so the caller can forward them verbatim.
package dispatcher
