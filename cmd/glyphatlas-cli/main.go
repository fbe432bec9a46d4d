package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/npillmayer/glyphatlas"
	"github.com/npillmayer/glyphatlas/glyph"
	"github.com/npillmayer/glyphatlas/internal/fontload"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphatlas")
}

func main() {
	initDisplay()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.glyphatlas": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font file to load")
	outdir := flag.String("out", "", "Directory to write SVG previews to (optional)")
	flag.Parse()

	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("invalid trace level: %s", *tlevel)
		os.Exit(5)
	}

	if *fontname == "" {
		pterm.Error.Println("no -font given")
		os.Exit(2)
	}

	pterm.Info.Println("Welcome to glyphatlas CLI")
	font, err := fontload.LoadOpenTypeFont(*fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %v", *fontname, err)
		os.Exit(4)
	}
	pterm.Printf("loaded %s %s: %d glyphs, %d units/em\n",
		font.FamilyName(), font.StyleName(), font.GlyphCount(), font.UnitsPerEm())
	for _, diag := range font.Diagnostics() {
		pterm.Warning.Println(diag)
	}

	repl, err := readline.New("glyphatlas > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	intp := &interp{font: font, repl: repl, outdir: *outdir}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.run()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

type interp struct {
	font   *glyphatlas.Font
	repl   *readline.Instance
	outdir string
}

func (intp *interp) run() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF on ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := intp.dispatch(line); err != nil {
			pterm.Error.Println(err)
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *interp) dispatch(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "glyph":
		if len(fields) != 2 {
			return fmt.Errorf("usage: glyph <id|U+codepoint|name>")
		}
		return intp.cmdGlyph(fields[1])
	case "path":
		if len(fields) != 2 {
			return fmt.Errorf("usage: path <id|U+codepoint|name>")
		}
		return intp.cmdPath(fields[1])
	case "list":
		intp.cmdList()
		return nil
	case "quit":
		os.Exit(0)
	default:
		return fmt.Errorf("unknown command: %s (try: glyph, path, list, quit)", fields[0])
	}
	return nil
}

func (intp *interp) resolveGlyph(ref string) (*glyph.Glyph, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		if g := intp.font.GlyphByID(id); g != nil {
			return g, nil
		}
		return nil, fmt.Errorf("no glyph with id %d", id)
	}
	if strings.HasPrefix(ref, "U+") || strings.HasPrefix(ref, "u+") {
		cp, err := strconv.ParseInt(ref[2:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad codepoint %q: %w", ref, err)
		}
		if g := intp.font.GlyphByCodepoint(rune(cp)); g != nil {
			return g, nil
		}
		return nil, fmt.Errorf("no glyph for codepoint %s", ref)
	}
	if g := intp.font.GlyphNamed(ref); g != nil {
		return g, nil
	}
	return nil, fmt.Errorf("no glyph named %q", ref)
}

func (intp *interp) cmdGlyph(ref string) error {
	g, err := intp.resolveGlyph(ref)
	if err != nil {
		return err
	}
	cp, hasCp := g.Codepoint()
	cpStr := "-"
	if hasCp {
		cpStr = fmt.Sprintf("U+%04X", cp)
	}
	pterm.Printf("id=%d name=%s codepoint=%s bbox=%+v contours=%d\n",
		g.ID, g.Name(), cpStr, g.BBox, len(g.Contours))
	return nil
}

func (intp *interp) cmdPath(ref string) error {
	g, err := intp.resolveGlyph(ref)
	if err != nil {
		return err
	}
	pterm.Println(glyphatlas.SvgPath(g))
	if intp.outdir != "" {
		preview, err := glyphatlas.SvgPreview(g, intp.font.UnitsPerEm())
		if err != nil {
			return err
		}
		path := fmt.Sprintf("%s/%s.svg.url", intp.outdir, g.Name())
		if err := os.WriteFile(path, []byte(preview), 0o644); err != nil {
			return err
		}
		pterm.Info.Printf("wrote preview to %s\n", path)
	}
	return nil
}

func (intp *interp) cmdList() {
	data := pterm.TableData{{"id", "name", "codepoint"}}
	intp.font.Glyphs(func(g *glyph.Glyph) bool {
		cp, hasCp := g.Codepoint()
		cpStr := "-"
		if hasCp {
			cpStr = fmt.Sprintf("U+%04X", cp)
		}
		data = append(data, []string{strconv.Itoa(g.ID), g.Name(), cpStr})
		return true
	})
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
