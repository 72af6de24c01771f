package main

import (
	"bitcat/config"
	"bitcat/pkg/certstream"
	"bitcat/pkg/worker"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"

	"github.com/arl/statsviz"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	a := kingpin.New(filepath.Base(os.Args[0]), "Generates the single bit flip variants of a name and catches squatted domains in certificate transparency logs")

	gen := a.Command("gen", "Generate the single bit flip variants of an input")
	genOpts := genOptions{}
	gen.Flag("raw", "Flip raw bytes and print every variant quoted, invalid text included").BoolVar(&genOpts.raw)
	gen.Flag("ascii", "Never flip the high bit of a byte").BoolVar(&genOpts.ascii)
	gen.Flag("charset", "Character class the variants must fit, ignored with --raw: dns, alnum, print or any").Default("any").StringVar(&genOpts.charset)
	gen.Flag("punycode", "Show the punycode form next to each variant").BoolVar(&genOpts.punycode)
	gen.Flag("table", "Render the variants as a table").BoolVar(&genOpts.table)
	gen.Flag("no-color", "Disable colored output").BoolVar(&genOpts.noColor)
	gen.Arg("input", "input to derive the variants from").Required().StringVar(&genOpts.input)

	check := a.Command("check", "Tell how candidate names relate to a domain, exits 1 when one looks squatted")
	checkDomain := check.Flag("domain", "domain to compare the candidates against").Required().String()
	checkNoColor := check.Flag("no-color", "Disable colored output").Bool()
	checkCandidates := check.Arg("candidate", "candidate domain names").Required().Strings()

	monitor := a.Command("monitor", "Watch certificate transparency logs for squatted domains")
	configFile := monitor.Flag("configfile", "config file").Short('c').ExistingFile()

	a.HelpFlag.Short('h')

	command, err := a.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "Error parsing commandline arguments"))
		a.Usage(os.Args[1:])
		os.Exit(2)
	}

	switch command {
	case gen.FullCommand():
		runGen(genOpts)
	case check.FullCommand():
		runCheck(*checkDomain, *checkCandidates, *checkNoColor)
	case monitor.FullCommand():
		runMonitor(configFile)
	}
}

func runMonitor(configFile *string) {
	cfg := config.GetConfig(configFile)
	if cfg.MetricsAddr != "" {
		if err := statsviz.RegisterDefault(); err != nil {
			cfg.Log.Warnf("Could not register runtime metrics: %v", err)
		} else {
			go func() {
				if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
					cfg.Log.Warnf("Metrics server stopped: %v", err)
				}
			}()
		}
	}
	for i := 0; i < cfg.Workers; i++ {
		go worker.RunCertCheckWorker(cfg)
	}
	go worker.Notifier(cfg)
	certstream.StartLoopCertStream(cfg)
}
