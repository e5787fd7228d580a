//go:build statsview
// +build statsview

package diagnostics

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DashboardAddress is where the live stats dashboard listens.
const DashboardAddress = "localhost:12600"

const dashboardPath = "/debug/statsview"

// StartDashboard launches a background goroutine serving Go runtime
// statistics (goroutine count, GC pauses, memory) while the core runs its
// FrameUpdate loop. Grounded on the teacher's
// statsview package, kept behind the same build tag so ordinary builds
// don't pull in the HTTP server.
func StartDashboard(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(DashboardAddress))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats dashboard available at %s%s\n", DashboardAddress, dashboardPath)
}

// DashboardAvailable reports whether StartDashboard does anything in this
// build.
func DashboardAvailable() bool { return true }
