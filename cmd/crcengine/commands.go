package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/GardenTools/CrcEngine/cmd/crcengine/server"
	"github.com/GardenTools/CrcEngine/internel/utils"
	"github.com/GardenTools/CrcEngine/pkg/async"
	"github.com/GardenTools/CrcEngine/pkg/bitset"
	"github.com/GardenTools/CrcEngine/pkg/codegen"
	"github.com/GardenTools/CrcEngine/pkg/crc"
)

// fileList collects repeated -f flags.
type fileList []string

func (f *fileList) String() string { return strings.Join(*f, ",") }

func (f *fileList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	return nil
}

type input struct {
	name string
	data []byte
	err  error
}

func calculate(a *app, args []string) error {
	fs := newFlagSet("calculate")
	algorithm := fs.String("a", "", "variant name")
	str := fs.String("s", "", "checksum this string")
	bits := fs.String("bits", "", "checksum this bit string, e.g. 1_0010_1011")
	start := fs.Int("start", 0, "first bit of -bits to use")
	length := fs.Int("length", -1, "number of bits of -bits to use, -1 for the rest")
	var files fileList
	fs.Var(&files, "f", "checksum this file (repeatable)")
	stdin := fs.Bool("stdin", false, "checksum standard input")
	port := fs.String("port", "", "checksum what arrives on this serial port")
	engineName := fs.String("engine", "", "engine: "+fmt.Sprint(crc.Engines()))
	encoding := fs.String("encoding", "", "character set of -s")
	hexPrefix := fs.Bool("hex-prefix", false, "prefix results with 0x")
	if err := parse(fs, args); err != nil {
		return err
	}
	files = append(files, fs.Args()...)

	sources := 0
	for _, set := range []bool{isFlagSet(fs, "s"), isFlagSet(fs, "bits"), len(files) > 0, *stdin, *port != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("%w: calculate needs exactly one of -s, -bits, -f, -stdin and -port", errUsage)
	}
	if *algorithm == "" {
		return fmt.Errorf("%w: calculate needs -a", errUsage)
	}

	p, err := a.registry.Lookup(*algorithm)
	if err != nil {
		return err
	}
	engine, err := crc.ParseEngine(*engineName)
	if err != nil {
		return err
	}
	calc, err := crc.NewCRC(p, engine)
	if err != nil {
		return err
	}
	log.Debugf("calculating %v with engine %s", p, engine)

	prefix := ""
	if *hexPrefix {
		prefix = "0x"
	}

	if isFlagSet(fs, "bits") {
		bs, err := bitset.Parse(*bits)
		if err != nil {
			return err
		}
		if *start < 0 || *start > bs.Len() {
			return fmt.Errorf("%w: start bit %d outside %d bits", crc.ErrBitRange, *start, bs.Len())
		}
		if *length < 0 {
			*length = bs.Len() - *start
		}
		if *start+*length > bs.Len() {
			return fmt.Errorf("%w: %d bits from bit %d exceed %d bits", crc.ErrBitRange, *length, *start, bs.Len())
		}
		window := bs.Slice(*start, *length)
		log.Debugf("bit window %s", window)
		fmt.Fprintln(a.stdout, prefix+server.Hex(crc.ComputeBits(p, window.Bools()), p.Width))
		return nil
	}

	var inputs []input
	switch {
	case len(files) > 0:
		inputs = <-async.Map(files, runtime.NumCPU(), func(name string) input {
			data, err := utils.ReadFile(name)
			return input{name: name, data: data, err: err}
		})
	case *stdin:
		data, err := utils.ReadAll(a.stdin)
		inputs = []input{{name: "-", data: data, err: err}}
	case *port != "":
		data, err := utils.ReadSerial(utils.SerialConfig{
			Port:     *port,
			BaudRate: a.cfg.Serial.BaudRate,
			Timeout:  a.cfg.Serial.Timeout,
		})
		inputs = []input{{name: *port, data: data, err: err}}
	default:
		data, err := utils.Encode(*str, *encoding)
		inputs = []input{{data: data, err: err}}
	}

	sums := <-async.Map(inputs, runtime.NumCPU(), func(in input) uint64 {
		if in.err != nil {
			return 0
		}
		return calc.Checksum(in.data)
	})

	var failed error
	for i, in := range inputs {
		if in.err != nil {
			log.Errorf("%s: %v", in.name, in.err)
			failed = in.err
			continue
		}
		line := prefix + server.Hex(sums[i], p.Width)
		if len(inputs) > 1 {
			line += "  " + in.name
		}
		fmt.Fprintln(a.stdout, line)
	}
	return failed
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

type checkResult struct {
	name    string
	engine  crc.Engine
	got     uint64
	want    uint64
	invalid error
}

func check(a *app, args []string) error {
	fs := newFlagSet("check")
	algorithm := fs.String("a", "", "only check this variant")
	if err := parse(fs, args); err != nil {
		return err
	}

	entries := a.registry.Entries()
	if *algorithm != "" {
		p, err := a.registry.Lookup(*algorithm)
		if err != nil {
			return err
		}
		entries = []crc.Entry{{Params: p}}
	}

	var jobs []checkResult
	for _, e := range entries {
		for _, engine := range crc.Engines() {
			jobs = append(jobs, checkResult{name: e.Params.Name, engine: engine, want: e.Params.Check})
		}
	}
	results := <-async.Map(jobs, runtime.NumCPU(), func(r checkResult) checkResult {
		p, _ := a.registry.Lookup(r.name)
		calc, err := crc.NewCRC(p, r.engine)
		if err != nil {
			r.invalid = err
			return r
		}
		r.got = calc.Checksum([]byte(crc.CheckString))
		return r
	})

	failures := 0
	for _, r := range results {
		switch {
		case r.invalid != nil:
			failures++
			log.Errorf("%s/%s: %v", r.name, r.engine, r.invalid)
		case r.got != r.want:
			failures++
			log.Errorf("%s/%s: computed %#x, expected %#x", r.name, r.engine, r.got, r.want)
		default:
			log.Debugf("%s/%s: %#x", r.name, r.engine, r.got)
		}
	}
	fmt.Fprintf(a.stdout, "%d variants, %d engines, %d failures\n", len(entries), len(crc.Engines()), failures)
	if failures > 0 {
		return fmt.Errorf("%w: %d failures", crc.ErrCheckMismatch, failures)
	}
	return nil
}

func list(a *app, args []string) error {
	fs := newFlagSet("list")
	if err := parse(fs, args); err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWIDTH\tPOLY\tINIT\tREFIN\tREFOUT\tXOROUT\tCHECK\tALIASES")
	for _, e := range a.registry.Entries() {
		p := e.Params
		fmt.Fprintf(w, "%s\t%d\t0x%s\t0x%s\t%t\t%t\t0x%s\t0x%s\t%s\n",
			p.Name, p.Width,
			server.Hex(p.Poly, p.Width), server.Hex(p.Init, p.Width),
			p.RefIn, p.RefOut,
			server.Hex(p.XorOut, p.Width), server.Hex(p.Check, p.Width),
			strings.Join(e.Aliases, ", "))
	}
	return w.Flush()
}

func generate(a *app, args []string) error {
	fs := newFlagSet("generate")
	algorithm := fs.String("a", "", "variant name")
	dir := fs.String("d", ".", "output directory")
	ident := fs.String("ident", "", "C identifier, derived from the name by default")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *algorithm == "" {
		return fmt.Errorf("%w: generate needs -a", errUsage)
	}

	p, err := a.registry.Lookup(*algorithm)
	if err != nil {
		return err
	}
	files, err := codegen.Generate(p, codegen.Options{Ident: *ident})
	if err != nil {
		return err
	}
	if err := codegen.WriteFiles(*dir, files); err != nil {
		return err
	}
	for _, f := range files {
		log.Infof("wrote %s", f.Name)
	}
	return nil
}

func serve(a *app, args []string) error {
	fs := newFlagSet("serve")
	addr := fs.String("addr", a.cfg.Server.Addr, "listen address")
	if err := parse(fs, args); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    *addr,
		Handler: server.New(a.registry, a.cfg.Server.MaxConcurrent),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := async.Promise(func() error {
		log.Infof("listening on %s", *addr)
		return srv.ListenAndServe()
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-done; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
