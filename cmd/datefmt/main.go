// The datefmt command formats and parses calendar dates with chronia
// patterns. With no -format or -parse flag it starts a read-eval-print
// loop.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	chronia "github.com/t0k0sh1/chronia-sub003"
)

// instantPatterns are tried in order when reading an instant from the
// command line, so times may be given at whatever precision is handy.
var instantPatterns = []string{
	"yyyy-MM-dd HH:mm:ss.SSS",
	"yyyy-MM-dd HH:mm:ss",
	"yyyy-MM-dd HH:mm",
	"yyyy-MM-dd",
}

// pathsFlag collects a repeatable file flag.
type pathsFlag struct {
	items []string
}

func (f *pathsFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *pathsFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("empty path")
	}
	f.items = append(f.items, value)
	return nil
}

// flags
var (
	formatPat = flag.String("format", "", "format the input instant with this `pattern`")
	parsePat  = flag.String("parse", "", "parse the input text with this `pattern`")
	localeTag = flag.String("locale", "", "BCP 47 `tag` selecting the locale for text tokens")
	refText   = flag.String("ref", "", "reference `instant` filling fields a parse pattern omits")
	input     = flag.String("in", "", "input text; -format defaults to the current time")

	localeFiles pathsFlag
)

func init() {
	flag.Var(&localeFiles, "locales", "locale definition `file` (.json, .yaml or .yml) to register; repeat to add more")
}

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("datefmt: ")
	log.SetFlags(0)
	flag.Parse()

	if len(localeFiles.items) > 0 {
		if err := chronia.NewLocaleLoader(localeFiles.items...).LoadAndRegister(); err != nil {
			log.Print(err)
			return 1
		}
	}

	s := &session{pattern: instantPatterns[0]}
	if *localeTag != "" {
		if err := s.setLocale(*localeTag); err != nil {
			log.Print(err)
			return 1
		}
	}
	if *refText != "" {
		ref, ok := parseInstant(*refText, s.options())
		if !ok {
			log.Printf("unreadable reference instant %q", *refText)
			return 1
		}
		s.ref, s.hasRef = ref, true
	}

	switch {
	case *formatPat != "" && *parsePat != "":
		log.Print("-format and -parse are mutually exclusive")
		return 1
	case *formatPat != "":
		s.pattern = *formatPat
		out, err := s.format(*input)
		if err != nil {
			log.Print(err)
			return 1
		}
		fmt.Println(out)
	case *parsePat != "":
		s.pattern = *parsePat
		d := chronia.Parse(*input, s.pattern, s.options()...)
		if !d.IsValid() {
			log.Printf("input %q does not match pattern %q", *input, s.pattern)
			return 1
		}
		fmt.Printf("%s (unix ms %d)\n", d, d.UnixMilli())
	default:
		runREPL(s)
	}
	return 0
}

// session carries the REPL state; the one-shot flag modes reuse it so
// both paths build options the same way.
type session struct {
	pattern string
	locale  *chronia.Locale
	ref     chronia.DateTime
	hasRef  bool
}

func (s *session) options() []chronia.Option {
	var opts []chronia.Option
	if s.locale != nil {
		opts = append(opts, chronia.WithLocale(s.locale))
	}
	if s.hasRef {
		opts = append(opts, chronia.WithReferenceDate(s.ref))
	}
	return opts
}

func (s *session) setLocale(tag string) error {
	loc, ok := chronia.LookupLocale(tag)
	if !ok {
		return fmt.Errorf("%w %q", chronia.ErrUnknownLocale, tag)
	}
	s.locale = loc
	return nil
}

func (s *session) format(in string) (string, error) {
	d := chronia.Now()
	if in != "" {
		var ok bool
		if d, ok = parseInstant(in, s.options()); !ok {
			return "", fmt.Errorf("unreadable instant %q", in)
		}
	}
	return chronia.Format(d, s.pattern, s.options()...), nil
}

func parseInstant(in string, opts []chronia.Option) (chronia.DateTime, bool) {
	for _, pattern := range instantPatterns {
		if d := chronia.Parse(in, pattern, opts...); d.IsValid() {
			return d, true
		}
	}
	return chronia.DateTime{}, false
}

func runREPL(s *session) {
	rl, err := readline.New("datefmt> ")
	if err != nil {
		log.Print(err)
		return
	}
	defer rl.Close()

	fmt.Println("datefmt interactive mode; try help")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		if quit := s.exec(strings.TrimSpace(line)); quit {
			break
		}
	}
	fmt.Println()
}

// exec runs one REPL line and reports whether the loop should end.
func (s *session) exec(line string) bool {
	cmd, rest := splitCommand(line)
	switch cmd {
	case "":
	case "help", "?":
		printHelp()
	case "exit", "quit":
		return true
	case "pattern":
		if rest == "" {
			fmt.Println(s.pattern)
			break
		}
		s.pattern = rest
	case "locale":
		if rest == "" {
			fmt.Println(localeLabel(s.locale))
			break
		}
		if err := s.setLocale(rest); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	case "ref":
		if rest == "" {
			if s.hasRef {
				fmt.Println(s.ref)
			} else {
				fmt.Println("none (parse falls back to the current time)")
			}
			break
		}
		ref, ok := parseInstant(rest, s.options())
		if !ok {
			fmt.Fprintf(os.Stderr, "unreadable instant %q\n", rest)
			break
		}
		s.ref, s.hasRef = ref, true
	case "format":
		out, err := s.format(rest)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			break
		}
		fmt.Println(out)
	case "parse":
		d := chronia.Parse(rest, s.pattern, s.options()...)
		if !d.IsValid() {
			fmt.Fprintf(os.Stderr, "input %q does not match pattern %q\n", rest, s.pattern)
			break
		}
		fmt.Printf("%s (unix ms %d)\n", d, d.UnixMilli())
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q; try help\n", cmd)
	}
	return false
}

func splitCommand(line string) (cmd, rest string) {
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}
	return line, ""
}

func localeLabel(loc *chronia.Locale) string {
	if loc == nil {
		return chronia.DefaultLocale().Code + " (default)"
	}
	return loc.Code
}

func printHelp() {
	fmt.Print(`commands:
  pattern [tokens]  show or set the active pattern
  locale [tag]      show or switch the locale, e.g. locale fr
  ref [instant]     show or set the reference date for parsing
  format [instant]  format the instant (default now) with the pattern
  parse <text>      parse text with the pattern
  help              show this help
  exit              leave
`)
}
