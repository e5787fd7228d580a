// Command vectrex runs the Vectrex core for a fixed number of frames
// (or until a fault) and optionally captures its output streams.
//
// Grounded on the teacher's cmd/gopher2600 entry point for flag handling
// and colourised status reporting, reworked from an interactive front-end
// selector into a small headless driver for the core.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/vectrexcore/vectrexcore/cartridgeloader"
	"github.com/vectrexcore/vectrexcore/diagnostics"
	"github.com/vectrexcore/vectrexcore/environment"
	"github.com/vectrexcore/vectrexcore/hardware"
)

var (
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleInfo = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("vectrex", flag.ContinueOnError)
	biosPath := fs.String("bios", "", "path to the BIOS image (required)")
	frames := fs.Int("frames", 60, "number of frames to run before exiting")
	audioOut := fs.String("audio-out", "", "capture audio to this WAV file")
	busGraph := fs.String("bus-graph", "", "dump the MemoryBus binding graph to this DOT file")
	dashboard := fs.Bool("dashboard", false, "start the optional runtime stats dashboard")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	cartPath := fs.Arg(0)

	if *biosPath == "" {
		fmt.Fprintln(os.Stderr, styleFail.Render("a -bios image is required"))
		return 1
	}

	biosLoader := cartridgeloader.NewLoader(*biosPath)
	if err := biosLoader.Load(); err != nil {
		fmt.Fprintln(os.Stderr, styleFail.Render(fmt.Sprintf("failed to read BIOS: %v", err)))
		return 1
	}

	var cartridge []byte
	if cartPath != "" {
		cartLoader := cartridgeloader.NewLoader(cartPath)
		if err := cartLoader.Load(); err != nil {
			fmt.Fprintln(os.Stderr, styleFail.Render(fmt.Sprintf("failed to read cartridge: %v", err)))
			return 1
		}
		cartridge = cartLoader.Data
	}

	emu, err := hardware.NewEmulator(biosLoader.Data, cartridge, environment.Main)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleFail.Render(fmt.Sprintf("failed to initialize core: %v", err)))
		return 1
	}

	if *dashboard {
		diagnostics.StartDashboard(os.Stdout)
	}

	if *busGraph != "" {
		f, err := os.Create(*busGraph)
		if err != nil {
			fmt.Fprintln(os.Stderr, styleFail.Render(fmt.Sprintf("failed to create bus graph file: %v", err)))
			return 1
		}
		diagnostics.DumpBusGraph(f, emu.Bus)
		f.Close()
		fmt.Println(styleInfo.Render(fmt.Sprintf("bus graph written to %s", *busGraph)))
	}

	var sink *diagnostics.WavSink
	if *audioOut != "" {
		sink = diagnostics.NewWavSink(*audioOut, emu.Env.AudioSampleRate)
	}

	const frameDelta = 1.0 / 50.0 // Vectrex BIOS targets a 50Hz refresh

	totalLines := 0
	for i := 0; i < *frames; i++ {
		lines, samples, err := emu.FrameUpdate(frameDelta)
		if err != nil {
			fmt.Fprintln(os.Stderr, styleFail.Render(fmt.Sprintf("emulation fault at frame %d: %v", i, err)))
			return 1
		}
		totalLines += len(lines)
		if sink != nil {
			sink.Append(samples)
		}
	}

	if sink != nil {
		if err := sink.Close(); err != nil {
			fmt.Fprintln(os.Stderr, styleFail.Render(fmt.Sprintf("failed to write audio: %v", err)))
			return 1
		}
		fmt.Println(styleInfo.Render(fmt.Sprintf("audio written to %s", *audioOut)))
	}

	fmt.Println(styleOK.Render(fmt.Sprintf("ran %d frames, %d line segments drawn", *frames, totalLines)))
	return 0
}
