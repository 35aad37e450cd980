// Command bmsdump parses a BMS score file and dumps the assembled chart.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	bms "github.com/cbegin/bms-go"
	"github.com/cbegin/bms-go/assemble"
)

type fileConfig struct {
	Layout  string `koanf:"layout"`
	Relaxed bool   `koanf:"relaxed"`
	Format  string `koanf:"format"`
}

func main() {
	var (
		layoutName = pflag.String("layout", "beat", "channel layout: beat|pms|pms-bme|nanasi|dsc-oct-fp")
		relaxed    = pflag.Bool("relaxed", false, "recover from unbalanced #RANDOM/#SWITCH scopes instead of failing")
		format     = pflag.String("format", "text", "output format: text|yaml")
		configPath = pflag.String("config", "", "optional TOML config file overriding the flags above")
	)
	pflag.Parse()

	logger := log.New(os.Stderr)

	if *configPath != "" {
		var fc fileConfig
		k := koanf.New(".")
		if err := k.Load(file.Provider(*configPath), toml.Parser()); err != nil {
			logger.Fatal("loading config", "path", *configPath, "err", err)
		}
		if err := k.Unmarshal("", &fc); err != nil {
			logger.Fatal("parsing config", "err", err)
		}
		if fc.Layout != "" {
			*layoutName = fc.Layout
		}
		if fc.Format != "" {
			*format = fc.Format
		}
		*relaxed = *relaxed || fc.Relaxed
	}

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bmsdump [flags] <path.bms>")
		os.Exit(2)
	}
	path := pflag.Arg(0)

	layout, ok := bms.LayoutByName(*layoutName)
	if !ok {
		logger.Fatal("unknown layout", "layout", *layoutName)
	}

	result, err := bms.ParseFile(path, bms.WithLayout(layout), bms.WithRelaxed(*relaxed))
	if err != nil {
		logger.Fatal("parse failed", "path", path, "err", err)
	}

	for _, w := range result.Warnings {
		logger.Warn(w.Msg, "stage", "lex", "range", w.Range)
	}
	for _, d := range result.Diags {
		logger.Warn(d.Msg, "stage", "control-flow", "range", d.Range)
	}
	for _, w := range result.AsmWarns {
		logger.Warn(w.Msg, "stage", "assemble", "range", w.Range)
	}

	switch *format {
	case "yaml":
		out, err := yaml.Marshal(result.Score)
		if err != nil {
			logger.Fatal("marshal yaml", "err", err)
		}
		os.Stdout.Write(out)
	default:
		dumpText(result.Score)
	}
}

// dumpText is a thin, human-scannable summary; callers wanting the full
// model should use --format yaml.
func dumpText(sc *assemble.Score) {
	fmt.Printf("title:    %s\n", sc.Title)
	fmt.Printf("artist:   %s\n", sc.Artist)
	fmt.Printf("genre:    %s\n", sc.Genre)
	fmt.Printf("bpm:      %g\n", sc.Bpm)
	fmt.Printf("rank:     %v\n", sc.Rank.Kind())
	fmt.Printf("wavs:     %d\n", len(sc.Wavs))
	fmt.Printf("bmps:     %d\n", len(sc.Bmps))
	fmt.Printf("bgm objs: %d\n", len(sc.Bgm))
	fmt.Printf("notes:    %d\n", len(sc.Notes))
	fmt.Printf("bpm chgs: %d\n", len(sc.BpmChanges))
	fmt.Printf("stops:    %d\n", len(sc.Stops))
}
