// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of go-user-keeper.
//
// It wires chi routes to the service layer and carries the cross-cutting
// concerns that belong at the edge: request tracing, access logging,
// Prometheus request metrics, response compression, bearer-token
// authentication and role checks. The caller identity is placed into the
// request context by the auth middleware and passed explicitly to the
// services from there.
package http
