// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

All poll routes are wrapped with request logging. See the handlers package
for endpoint semantics.
*/
package router
