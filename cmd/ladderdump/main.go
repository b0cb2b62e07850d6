// ladderdump extracts the ladder-logic model from a legacy binary PLC
// project file and prints it as JSON or canonical CBOR.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/plcview/ladderbin/format"
	"github.com/plcview/ladderbin/ladder"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	outFormat := flag.String("format", "json", "Output format: json or cbor")
	paramsFile := flag.String("params", "", "TOML file overriding heuristic scan parameters")
	outPath := flag.String("o", "", "Write output to file instead of stdout")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ladderdump [options] <project-file>\n\n")
		fmt.Fprintf(os.Stderr, "Extracts ladder logic from a legacy binary project file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ladderdump plant.rss                    # JSON model to stdout\n")
		fmt.Fprintf(os.Stderr, "  ladderdump -format cbor -o out.cbor plant.rss\n")
		fmt.Fprintf(os.Stderr, "  ladderdump -params tuned.toml plant.rss # adjusted scan constants\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kind := format.Sniff(data)
	if kind != format.KindCompound {
		fmt.Fprintf(os.Stderr, "Error: %s is a %s file; only legacy compound project files are supported here\n", path, kind)
		os.Exit(1)
	}

	opts := []ladder.Option{
		ladder.WithName(projectName(path)),
	}
	if *paramsFile != "" {
		p, err := ladder.LoadParams(*paramsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, ladder.WithParams(p))
	}

	project, err := ladder.Parse(data, opts...)
	if err != nil {
		if errors.Is(err, ladder.ErrNoLadderLogic) {
			fmt.Fprintf(os.Stderr, "Error: no ladder logic found in %s\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	var out []byte
	switch *outFormat {
	case "json":
		out, err = json.MarshalIndent(project, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case "cbor":
		out, err = ladder.MarshalProject(project)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", *outFormat)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, out, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	os.Stdout.Write(out)
}

func projectName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
