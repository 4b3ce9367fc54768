// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive admin client runtime.
//
// It restores the persisted admin session and hands the terminal to the
// UI for the lifetime of the process.
package client
