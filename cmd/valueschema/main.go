package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	"github.com/joeshaw/envdecode"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/catalog"
	"github.com/reoring/valueschema/i18n"
	js "github.com/reoring/valueschema/jsonschema"
)

// config is read from the environment.
type config struct {
	// ENV: VALUESCHEMA_LANG ("en" or "ja")
	Lang string `env:"VALUESCHEMA_LANG,default=en"`
	// ENV: VALUESCHEMA_LOG_LEVEL (debug, info, warn, error)
	LogLevel string `env:"VALUESCHEMA_LOG_LEVEL,default=info"`
	// ENV: VALUESCHEMA_CATALOG, used when -catalog is not given.
	Catalog string `env:"VALUESCHEMA_CATALOG"`
}

func loadConfig() (config, error) {
	cfg := config{Lang: "en", LogLevel: "info"}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, errors.Wrap(err, "read environment")
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries the per-invocation state shared by subcommands.
type app struct {
	cfg    config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	a := &app{cfg: cfg, log: newLogger(stderr, cfg.LogLevel), stdout: stdout, stderr: stderr}
	i18n.SetLanguage(cfg.Lang)

	if len(args) < 1 {
		a.usage()
		return 2
	}
	switch args[0] {
	case "check":
		return a.checkCmd(args[1:])
	case "describe":
		return a.describeCmd(args[1:])
	case "record":
		return a.recordCmd(args[1:])
	default:
		a.usage()
		return 2
	}
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, "valueschema CLI\n\nUsage:\n  valueschema check -schema S [-json] value...\n  valueschema describe -schema S | -catalog file\n  valueschema record [-catalog file] -json '{...}'\n\nEnvironment:\n  VALUESCHEMA_LANG, VALUESCHEMA_LOG_LEVEL, VALUESCHEMA_CATALOG")
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// valueReport is the JSON form of a single check result.
type valueReport struct {
	Input  string    `json:"input"`
	OK     bool      `json:"ok"`
	Value  string    `json:"value,omitempty"`
	Issues vs.Issues `json:"issues,omitempty"`
}

func (a *app) checkCmd(args []string) int {
	fs := a.flags("check")
	var short string
	var asJSON bool
	fs.StringVar(&short, "schema", "", "schema short string, e.g. decimal(min=0,max=100)")
	fs.BoolVar(&asJSON, "json", false, "print a JSON report")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if short == "" || fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	ad, err := catalog.ParseSchema(short)
	if err != nil {
		a.log.Error("invalid schema", "schema", short, "err", err)
		return 2
	}
	a.log.Debug("checking values", "schema", ad.ShortString(), "count", fs.NArg())

	code := 0
	reports := make([]valueReport, 0, fs.NArg())
	for _, in := range fs.Args() {
		rep := valueReport{Input: in}
		v, err := ad.Check(in)
		if err != nil {
			iss, ok := vs.AsIssues(err)
			if !ok {
				a.log.Error("check failed", "input", in, "err", err)
				return 2
			}
			rep.Issues = iss
			code = 1
		} else {
			rep.OK = true
			rep.Value, _ = ad.Encode(v)
		}
		reports = append(reports, rep)
	}

	if asJSON {
		if err := a.writeJSON(reports); err != nil {
			return 2
		}
		return code
	}
	for _, rep := range reports {
		if rep.OK {
			fmt.Fprintf(a.stdout, "ok\t%s\t%s\n", rep.Input, rep.Value)
			continue
		}
		for _, it := range rep.Issues {
			fmt.Fprintf(a.stdout, "fail\t%s\t%s: %s\n", rep.Input, it.Code, it.Message)
		}
	}
	return code
}

func (a *app) describeCmd(args []string) int {
	fs := a.flags("describe")
	var short, catalogPath string
	fs.StringVar(&short, "schema", "", "schema short string")
	fs.StringVar(&catalogPath, "catalog", "", "catalog file (YAML or JSON)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	var (
		s   *js.Schema
		err error
	)
	switch {
	case short != "":
		ad, perr := catalog.ParseSchema(short)
		if perr != nil {
			a.log.Error("invalid schema", "schema", short, "err", perr)
			return 2
		}
		fmt.Fprintln(a.stdout, ad.ShortString())
		s, err = ad.JSONSchema()
	case catalogPath != "":
		c, lerr := catalog.LoadFile(catalogPath)
		if lerr != nil {
			a.log.Error("load catalog", "path", catalogPath, "err", lerr)
			return 2
		}
		s, err = c.JSONSchema()
	default:
		fs.Usage()
		return 2
	}
	if err != nil {
		a.log.Error("json schema", "err", err)
		return 2
	}
	out, err := js.Marshal(s)
	if err != nil {
		a.log.Error("marshal json schema", "err", err)
		return 2
	}
	fmt.Fprintln(a.stdout, string(out))
	return 0
}

// recordReport is the JSON form of a record check.
type recordReport struct {
	OK     bool              `json:"ok"`
	Values map[string]string `json:"values,omitempty"`
	Issues vs.Issues         `json:"issues,omitempty"`
}

func (a *app) recordCmd(args []string) int {
	fs := a.flags("record")
	var catalogPath, record string
	fs.StringVar(&catalogPath, "catalog", a.cfg.Catalog, "catalog file (YAML or JSON)")
	fs.StringVar(&record, "json", "", "record as a JSON object of scalars")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if catalogPath == "" || record == "" {
		fs.Usage()
		return 2
	}
	c, err := catalog.LoadFile(catalogPath)
	if err != nil {
		a.log.Error("load catalog", "path", catalogPath, "err", err)
		return 2
	}
	rec, err := catalog.RecordFromJSON([]byte(record))
	if err != nil {
		a.log.Error("read record", "err", err)
		return 2
	}
	a.log.Debug("checking record", "catalog", catalogPath, "columns", len(c.Columns()), "fields", len(rec))

	values, err := c.Check(rec)
	rep := recordReport{OK: err == nil, Values: make(map[string]string, len(values))}
	if err != nil {
		iss, ok := vs.AsIssues(err)
		if !ok {
			a.log.Error("check record", "err", err)
			return 2
		}
		rep.Issues = iss
	}
	for name, v := range values {
		ad, _ := c.Schema(name)
		rep.Values[name], _ = ad.Encode(v)
	}
	if err := a.writeJSON(rep); err != nil {
		return 2
	}
	if !rep.OK {
		return 1
	}
	return 0
}

func (a *app) writeJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		a.log.Error("marshal report", "err", err)
		return err
	}
	fmt.Fprintln(a.stdout, string(b))
	return nil
}
