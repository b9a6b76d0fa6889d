// Command ringtail prints the last (or first) lines or bytes of its input.
// In the default tail mode it holds no more than it prints in memory; --head
// reads the whole input before cutting it down.
//
//	ringtail [-n N | -c SIZE] [--head] [-r] [--log-level LEVEL] [FILE...]
package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	ring "github.com/sushydev/ring_go"
)

var logger = loggo.GetLogger("ringtail")

// maxLineLength bounds a single input line.
const maxLineLength = 1 << 20

type commandLineArgs struct {
	lines       int
	rawBytes    string
	bytes       uint64
	head        bool
	reverse     bool
	rawLogLevel string
	logLevel    loggo.Level
	files       []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a, err := parseArgs(args, stderr)
	if errors.Is(err, gnuflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "ringtail: %v\n", err)
		return 2
	}

	if err := setupLogging(stderr, a.logLevel); err != nil {
		fmt.Fprintf(stderr, "ringtail: setup logging: %v\n", err)
		return 1
	}

	if err := ringtail(a, stdin, stdout); err != nil {
		logger.Errorf("%v", err)
		return 1
	}

	return 0
}

func parseArgs(args []string, stderr io.Writer) (commandLineArgs, error) {
	flags := gnuflag.NewFlagSet("ringtail", gnuflag.ContinueOnError)
	flags.SetOutput(stderr)

	var a commandLineArgs
	flags.IntVar(&a.lines, "n", 10, "")
	flags.IntVar(&a.lines, "lines", 10, "number of lines to keep")
	flags.StringVar(&a.rawBytes, "c", "", "")
	flags.StringVar(&a.rawBytes, "bytes", "", "number of bytes to keep instead of lines, e.g. 512, 4KiB, 1MB")
	flags.BoolVar(&a.head, "head", false, "keep the first lines or bytes instead of the last")
	flags.BoolVar(&a.reverse, "r", false, "")
	flags.BoolVar(&a.reverse, "reverse", false, "print lines newest first")
	flags.StringVar(&a.rawLogLevel, "log-level", "WARNING", "log level to use (TRACE/DEBUG/INFO/WARNING/ERROR)")

	if err := flags.Parse(true, args); err != nil {
		return a, err
	}
	a.files = flags.Args()

	if a.lines <= 0 {
		return a, errors.NotValidf("line count %d", a.lines)
	}

	if a.rawBytes != "" {
		n, err := humanize.ParseBytes(a.rawBytes)
		if err != nil {
			return a, errors.Annotatef(err, "byte count %q", a.rawBytes)
		}
		if n == 0 || n > math.MaxInt {
			return a, errors.NotValidf("byte count %q", a.rawBytes)
		}
		a.bytes = n
	}

	level, ok := loggo.ParseLevel(a.rawLogLevel)
	if !ok {
		return a, errors.NotValidf("log level %q", a.rawLogLevel)
	}
	a.logLevel = level

	return a, nil
}

func setupLogging(w io.Writer, logLevel loggo.Level) error {
	writer := loggo.NewSimpleWriter(w, logFormatter)
	if _, err := loggo.ReplaceDefaultWriter(writer); err != nil {
		return errors.Trace(err)
	}
	return loggo.ConfigureLoggers(fmt.Sprintf("<root>=%s", logLevel.String()))
}

func logFormatter(entry loggo.Entry) string {
	ts := entry.Timestamp.In(time.UTC).Format("2006-01-02 15:04:05")
	return fmt.Sprintf("%s %s %s", ts, entry.Level, entry.Message)
}

func ringtail(a commandLineArgs, stdin io.Reader, stdout io.Writer) error {
	input, closeInput, err := openInput(a.files, stdin)
	if err != nil {
		return errors.Trace(err)
	}
	defer closeInput()

	out := bufio.NewWriter(stdout)
	if a.bytes > 0 {
		err = copyBytes(a, input, out)
	} else {
		err = copyLines(a, input, out)
	}
	if err != nil {
		return errors.Trace(err)
	}

	return errors.Annotate(out.Flush(), "writing output")
}

// openInput concatenates the named files, or returns stdin when there are
// none.
func openInput(files []string, stdin io.Reader) (io.Reader, func(), error) {
	if len(files) == 0 {
		return stdin, func() {}, nil
	}

	readers := make([]io.Reader, 0, len(files))
	closers := make([]io.Closer, 0, len(files))
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			closeAll()
			return nil, nil, errors.Annotatef(err, "opening %q", name)
		}
		logger.Debugf("reading %s", name)
		readers = append(readers, f)
		closers = append(closers, f)
	}

	return io.MultiReader(readers...), closeAll, nil
}

func scanLines(scanner *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}

func copyLines(a commandLineArgs, input io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var lines *ring.Ring[string]
	if a.head {
		// The whole input is read before the tail is cut off.
		lines = ring.FromSeq(a.lines, scanLines(scanner))
	} else {
		lines = ring.New[string](a.lines)
		var seen int
		for line := range scanLines(scanner) {
			lines.PushBack(line)
			seen++
		}
		logger.Debugf("read %d lines, evicted %d", seen, seen-lines.Len())
	}
	if err := scanner.Err(); err != nil {
		return errors.Annotate(err, "reading input")
	}

	var values iter.Seq[string] = lines.Values()
	if a.reverse {
		values = func(yield func(string) bool) {
			for _, line := range lines.Backward() {
				if !yield(line) {
					return
				}
			}
		}
	}
	for line := range values {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errors.Trace(err)
		}
	}

	return nil
}

func copyBytes(a commandLineArgs, input io.Reader, out io.Writer) error {
	if a.reverse {
		logger.Warningf("--reverse has no effect on byte counts")
	}
	logger.Debugf("keeping %s", humanize.IBytes(a.bytes))

	if a.head {
		data, err := io.ReadAll(input)
		if err != nil {
			return errors.Annotate(err, "reading input")
		}
		kept := ring.FromSlice(int(a.bytes), data, ring.WithSliceStore[byte]())
		contiguous, _ := kept.Data()
		_, err = out.Write(contiguous)
		return errors.Trace(err)
	}

	tail := ring.NewTailBuffer(int64(a.bytes), 0)
	written, err := io.Copy(tail, input)
	if err != nil {
		return errors.Annotate(err, "reading input")
	}
	logger.Debugf("read %s, kept %s", humanize.IBytes(uint64(written)), humanize.IBytes(uint64(tail.GetSize())))

	_, err = tail.WriteTo(out)
	return errors.Trace(err)
}
