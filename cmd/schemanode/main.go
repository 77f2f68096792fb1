package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/schemanode"
	"github.com/reoring/schemanode/i18n"
	"github.com/reoring/schemanode/kubeopenapi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	var err error
	switch sub {
	case "fmt":
		err = fmtCmd(os.Args[2:], os.Stdout)
	case "walk":
		err = walkCmd(os.Args[2:], os.Stdout)
	case "refs":
		err = refsCmd(os.Args[2:], os.Stdout)
	case "crd":
		err = crdCmd(os.Args[2:], os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "schemanode CLI\n\nUsage:\n  schemanode fmt   [flags] [file]   print the schema as normalized JSON\n  schemanode walk  [flags] [file]   list every sub-schema pointer with its variant\n  schemanode refs  [flags] [file]   print $ref, id and definitions sites\n  schemanode crd   -kind K|-name N [flags] bundle.yaml\n\nInput is read from stdin when file is omitted or '-'. Files ending in .yaml/.yml are read as YAML.")
}

// common holds the flags shared by every subcommand.
type common struct {
	yaml         bool
	lang         string
	verbose      bool
	dropUnknown  bool
	strictBounds bool
	failFast     bool
	placeholder  bool
	maxDepth     int
	maxBytes     int64
	dup          string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.yaml, "yaml", false, "read input as YAML")
	fs.StringVar(&c.lang, "lang", "en", "message language (en|ja)")
	fs.BoolVar(&c.verbose, "v", false, "enable verbose logs")
	fs.BoolVar(&c.dropUnknown, "drop-unknown", false, "discard keywords outside the vocabulary")
	fs.BoolVar(&c.strictBounds, "strict-bounds", false, "report minimum > maximum style pairs")
	fs.BoolVar(&c.failFast, "fail-fast", false, "stop at the first issue")
	fs.BoolVar(&c.placeholder, "placeholder", false, "replace malformed sub-schemas with true and report them as warnings")
	fs.IntVar(&c.maxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")
	fs.Int64Var(&c.maxBytes, "max-bytes", 0, "maximum input size in bytes (0 = unlimited)")
	fs.StringVar(&c.dup, "dup", "ignore", "duplicate JSON key handling (ignore|warn|error)")
}

func (c *common) logf(format string, a ...any) {
	if c.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", a...)
	}
}

func (c *common) opt() (schemanode.ParseOpt, error) {
	o := schemanode.ParseOpt{
		MaxDepth:     c.maxDepth,
		MaxBytes:     c.maxBytes,
		FailFast:     c.failFast,
		StrictBounds: c.strictBounds,
		Placeholder:  c.placeholder,
	}
	if c.dropUnknown {
		o.Unknown = schemanode.UnknownDrop
	}
	switch c.dup {
	case "ignore", "":
		o.Strictness.OnDuplicateKey = schemanode.Ignore
	case "warn":
		o.Strictness.OnDuplicateKey = schemanode.Warn
		o.OnIssue = func(iss schemanode.Issue) {
			fmt.Fprintf(os.Stderr, "warning: %s at %s: %s\n", iss.Code, iss.Path, iss.Message)
		}
	case "error":
		o.Strictness.OnDuplicateKey = schemanode.Error
	default:
		return o, fmt.Errorf("unknown -dup value %q", c.dup)
	}
	return o, nil
}

// load parses the schema named by the first positional argument.
func (c *common) load(ctx context.Context, fs *flag.FlagSet) (*schemanode.SchemaOrBool, error) {
	i18n.SetLanguage(c.lang)
	opt, err := c.opt()
	if err != nil {
		return nil, err
	}
	name := fs.Arg(0)
	data, err := readInput(name)
	if err != nil {
		return nil, err
	}
	asYAML := c.yaml || isYAMLName(name)
	c.logf("%s: input=%s bytes=%d yaml=%t driver=%s", fs.Name(), displayName(name), len(data), asYAML, schemanode.CurrentJSONDriver().Name())
	var root *schemanode.SchemaOrBool
	if asYAML {
		root, err = schemanode.ParseYAML(ctx, data, opt)
	} else {
		root, err = schemanode.ParseBytes(ctx, data, opt)
	}
	if iss, ok := schemanode.AsIssues(err); ok && root != nil {
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "warning: %s at %s: %s\n", it.Code, it.Path, it.Message)
		}
		return root, nil
	}
	return root, err
}

func fmtCmd(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	var c common
	var indent string
	var compact bool
	c.register(fs)
	fs.StringVar(&indent, "indent", "  ", "indentation")
	fs.BoolVar(&compact, "compact", false, "print without indentation")
	_ = fs.Parse(args)

	root, err := c.load(context.Background(), fs)
	if err != nil {
		return err
	}
	var out []byte
	if compact {
		out, err = root.MarshalJSON()
	} else {
		out, err = schemanode.MarshalIndent(root, "", indent)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

func walkCmd(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("walk", flag.ExitOnError)
	var c common
	var maxLevel int
	c.register(fs)
	fs.IntVar(&maxLevel, "depth", -1, "do not descend below this many levels (-1 = unlimited)")
	_ = fs.Parse(args)

	root, err := c.load(context.Background(), fs)
	if err != nil {
		return err
	}
	count := 0
	err = schemanode.Walk(root, func(path schemanode.PathRef, node *schemanode.SchemaOrBool) error {
		count++
		ptr := path.Pointer()
		if ptr == "" {
			ptr = "#"
		}
		line := ptr + "\t" + node.Variant().String()
		if s := node.Schema(); s != nil {
			line += "\t" + strings.Join(s.Keywords(), ",")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if maxLevel >= 0 && len(path.Tokens()) >= maxLevel {
			return schemanode.SkipChildren
		}
		return nil
	})
	c.logf("walk: visited %d nodes", count)
	return err
}

func refsCmd(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("refs", flag.ExitOnError)
	var c common
	var unresolved bool
	c.register(fs)
	fs.BoolVar(&unresolved, "unresolved", false, "only list local $ref values that point nowhere")
	_ = fs.Parse(args)

	root, err := c.load(context.Background(), fs)
	if err != nil {
		return err
	}
	ix := schemanode.BuildIndex(root)
	c.logf("refs: %d refs, %d ids, %d definitions", len(ix.Refs), len(ix.IDs), len(ix.Definitions))
	if unresolved {
		return printSites(w, ix.Unresolved())
	}
	for _, group := range [][]schemanode.RefSite{ix.IDs, ix.Definitions, ix.Refs} {
		if err := printSites(w, group); err != nil {
			return err
		}
	}
	return nil
}

func crdCmd(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("crd", flag.ExitOnError)
	var c common
	var kind, name, version string
	c.register(fs)
	fs.StringVar(&kind, "kind", "", "CRD spec.names.kind to import")
	fs.StringVar(&name, "name", "", "CRD metadata.name to import")
	fs.StringVar(&version, "version", "", "CRD version (default: first served)")
	_ = fs.Parse(args)
	if (kind == "") == (name == "") {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(c.lang)
	data, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	opts := kubeopenapi.Options{Version: version, FailFast: c.failFast, StrictBounds: c.strictBounds}
	if c.dropUnknown {
		opts.Unknown = schemanode.UnknownDrop
	}
	ctx := context.Background()
	var (
		root *schemanode.SchemaOrBool
		diag kubeopenapi.Diag
	)
	if kind != "" {
		root, diag, err = kubeopenapi.ImportYAMLForCRDKind(ctx, data, kind, opts)
	} else {
		root, diag, err = kubeopenapi.ImportYAMLForCRDName(ctx, data, name, opts)
	}
	if diag != nil {
		for _, ws := range diag.Warnings() {
			fmt.Fprintln(os.Stderr, "warning:", ws)
		}
		c.logf("crd: schema at %s", diag.SchemaPointer())
	}
	if err != nil {
		return err
	}
	out, err := schemanode.MarshalIndent(root, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

func printSites(w io.Writer, sites []schemanode.RefSite) error {
	for _, s := range sites {
		ptr := s.Pointer
		if ptr == "" {
			ptr = "#"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", ptr, s.Keyword, s.Value); err != nil {
			return err
		}
	}
	return nil
}

func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func isYAMLName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}

func reportError(err error) {
	if iss, ok := schemanode.AsIssues(err); ok {
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
		}
		return
	}
	var de *kubeopenapi.DuplicateKeyError
	if errors.As(err, &de) {
		fmt.Fprintf(os.Stderr, "%d:%d\tduplicate_key\t%s\n", de.Line, de.Col, de.Error())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
