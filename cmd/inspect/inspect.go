package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kevmo314/go-mvf"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/rivo/tview"
	"github.com/spf13/pflag"
)

func main() {
	flagSet := pflag.NewFlagSet("inspect", pflag.ExitOnError)
	formatName := flagSet.StringP("format", "f", "Mono8", "pixel format of the file")
	width := flagSet.Uint32P("width", "w", 0, "image width in pixels")
	height := flagSet.Uint32P("height", "h", 0, "image height in pixels")
	stride := flagSet.IntP("stride", "s", 0, "row stride in bytes (default: packed)")
	thumb := flagSet.Int("thumb", 64, "preview width in characters")
	_ = flagSet.Parse(os.Args[1:])

	if flagSet.NArg() != 1 {
		log.Fatalf("usage: inspect [flags] <raw frame file>")
	}
	path := flagSet.Arg(0)

	f, err := pixfmt.Parse(*formatName)
	if err != nil {
		log.Fatalf("Failed to parse format: %v", err)
	}
	if !flagSet.Changed("stride") {
		*stride = packedStride(f, *width)
	}

	app := tview.NewApplication()

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")
	log.SetOutput(logText)
	mvf.SetLogger(slog.New(slog.NewTextHandler(logText, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r, err := inspectFile(f, path, *width, *height, *stride, *thumb)
	if err != nil {
		// The TUI is not running yet, so report on the terminal.
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	info := tview.NewTextView()
	info.SetBorder(true).SetTitle("Frame")
	fmt.Fprintf(info, "%s\n\nfile: %s\nbytes: %d\nrows: %d\ndigest: %s\n", r.Geometry, path, r.Length, len(r.Rows), r.Digest)

	rows := tview.NewList()
	rows.SetBorder(true).SetTitle("Rows")
	for y, d := range r.Rows {
		rows.AddItem(fmt.Sprintf("Row %d", y), d.String(), 0, func() {
			log.Printf("row %d: %s", y, d)
		})
	}

	flex := tview.NewFlex().
		AddItem(info, 0, 1, false).
		AddItem(rows, 0, 1, true)

	if r.Preview != nil {
		preview := tview.NewImage()
		preview.SetColors(256).SetDithering(tview.DitheringNone).SetBorder(true).SetTitle("Preview")
		preview.SetImage(r.Preview)
		flex.AddItem(preview, 0, 2, false)
	} else {
		log.Printf("no preview for %s", f)
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(tview.NewFlex().SetDirection(tview.FlexRow).AddItem(flex, 0, 1, true).AddItem(logText, 10, 0, false), true).Run(); err != nil {
		panic(err)
	}
}
