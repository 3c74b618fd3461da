// Package control provides the runtime-control layer around block
// pools: resilient configuration with reload listeners, a thread-safe
// metrics registry, a pool monitor with bounded snapshot history, and
// debug probe registration.
//
// Nothing here is required to use a pool; simulation loops that only
// need checkout/return never touch this package.
package control
