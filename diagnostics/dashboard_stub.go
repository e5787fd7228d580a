//go:build !statsview
// +build !statsview

package diagnostics

import "io"

// StartDashboard is a no-op in builds without the statsview tag.
func StartDashboard(output io.Writer) {}

// DashboardAvailable reports whether StartDashboard does anything in this
// build.
func DashboardAvailable() bool { return false }
