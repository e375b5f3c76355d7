package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type formatInfo struct {
	Name         string `yaml:"name"`
	BitsPerPixel uint8  `yaml:"bits_per_pixel"`
	FourCC       string `yaml:"fourcc,omitempty"`
	GUID         string `yaml:"guid,omitempty"`
}

func describe(f pixfmt.PixFmt) formatInfo {
	info := formatInfo{Name: f.String(), BitsPerPixel: f.BitsPerPixel()}
	if g, ok := f.GUID(); ok {
		fourcc := pixfmt.FourCCOf(g)
		info.FourCC = string(fourcc[:])
		info.GUID = g.String()
	}
	return info
}

func main() {
	flagSet := pflag.NewFlagSet("dump_formats", pflag.ExitOnError)
	asYAML := flagSet.Bool("yaml", false, "print the catalog as YAML")
	only := flagSet.StringP("format", "f", "", "print a single format by name")
	_ = flagSet.Parse(os.Args[1:])

	formats := pixfmt.All()
	if *only != "" {
		f, err := pixfmt.Parse(*only)
		if err != nil {
			log.Fatalf("Failed to parse format: %v", err)
		}
		formats = []pixfmt.PixFmt{f}
	}

	infos := make([]formatInfo, 0, len(formats))
	for _, f := range formats {
		infos = append(infos, describe(f))
	}

	if *asYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			log.Fatalf("Failed to encode formats: %v", err)
		}
		if err := enc.Close(); err != nil {
			log.Fatalf("Failed to flush formats: %v", err)
		}
		return
	}

	fmt.Println("=== Pixel Formats ===")
	for _, info := range infos {
		fmt.Printf("  %-12s %2d bpp", info.Name, info.BitsPerPixel)
		if info.FourCC != "" {
			fmt.Printf("  (FourCC: %s, GUID: %s)", info.FourCC, info.GUID)
		}
		fmt.Println()
	}
}
