package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/gosat/cdcl/drat"
	"github.com/gosat/cdcl/solver"
)

const version = "0.1.0"

func main() {
	cfg := solver.DefaultConfig()
	var (
		verbose   bool
		showVer   bool
		proofPath string
	)
	pflag.Float64Var(&cfg.EmaGlueFast, "emagluefast", cfg.EmaGlueFast, "target alpha for the fast learned-glue EMA")
	pflag.Float64Var(&cfg.EmaGlueSlow, "emaglueslow", cfg.EmaGlueSlow, "target alpha for the slow learned-glue EMA")
	pflag.Float64Var(&cfg.EmaJump, "emajump", cfg.EmaJump, "target alpha for the jump-level EMA")
	pflag.Float64Var(&cfg.EmaResolved, "emaresolved", cfg.EmaResolved, "target alpha for the resolved-clause glue/size EMAs")
	pflag.BoolVar(&cfg.Reduce, "reduce", cfg.Reduce, "enable clause-database reduction")
	pflag.BoolVar(&cfg.ReduceDynamic, "reducedynamic", cfg.ReduceDynamic, "protect recent-quality clauses during reduction")
	pflag.Int64Var(&cfg.ReduceInc, "reduceinc", cfg.ReduceInc, "conflicts added to the reduce limit after each reduction")
	pflag.Int64Var(&cfg.ReduceInit, "reduceinit", cfg.ReduceInit, "initial conflicts before the first reduction")
	pflag.BoolVar(&cfg.Restart, "restart", cfg.Restart, "enable restarts")
	pflag.BoolVar(&cfg.RestartDelay, "restartdelay", cfg.RestartDelay, "enable the restart delay heuristic")
	pflag.Float64Var(&cfg.RestartDelayLim, "restartdelaylim", cfg.RestartDelayLim, "level/jump-EMA ratio below which restart is delayed")
	pflag.Int64Var(&cfg.RestartInt, "restartint", cfg.RestartInt, "minimum conflict spacing between restart checks")
	pflag.Float64Var(&cfg.RestartMargin, "restartmargin", cfg.RestartMargin, "required slow-to-fast glue margin")
	pflag.BoolVar(&cfg.ReuseTrail, "reusetrail", cfg.ReuseTrail, "enable trail reuse on restart")
	pflag.StringVar(&proofPath, "drat", "", "write a DRAT proof to this path")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "emit progress reports")
	pflag.BoolVar(&showVer, "version", false, "print the version and exit")
	pflag.Parse()

	if showVer {
		fmt.Println(version)
		return
	}
	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <file.cnf>\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(1)
	}
	path := pflag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "c could not open %q: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	pb, err := solver.ParseCNF(path, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "c %v\n", err)
		os.Exit(1)
	}

	s := solver.New(pb, cfg)
	s.Verbose = verbose

	if proofPath != "" {
		pf, err := os.Create(proofPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "c could not create proof file %q: %v\n", proofPath, err)
			os.Exit(1)
		}
		w := drat.NewFileWriter(pf)
		defer w.Close()
		s.SetProof(w)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		recv := <-sig
		printStats(s.Stats)
		signal.Stop(sig)
		proc, err := os.FindProcess(os.Getpid())
		if err == nil {
			_ = proc.Signal(recv)
		}
	}()

	res := s.Solve()
	if res != solver.Sat {
		assertOnlyUnsat(res)
	}

	switch res {
	case solver.Sat:
		fmt.Println("s SATISFIABLE")
		model := s.Model()
		fmt.Print("v")
		for v, val := range model {
			if val {
				fmt.Printf(" %d", v+1)
			} else {
				fmt.Printf(" -%d", v+1)
			}
		}
		fmt.Println(" 0")
	case solver.Unsat:
		fmt.Println("s UNSATISFIABLE")
	}
	if verbose {
		printStats(s.Stats)
	}
	os.Exit(res.ExitCode())
}

func printStats(st solver.Stats) {
	fmt.Fprintf(os.Stderr, "c conflicts: %d, decisions: %d, restarts: %d, propagations: %d\n",
		st.Conflicts, st.Decisions, st.Restarts, st.Propagations)
	fmt.Fprintf(os.Stderr, "c learned: %d (unit %d, binary %d), deleted: %d, reductions: %d\n",
		st.Learned, st.UnitLearned, st.BinaryLearned, st.Deleted, st.Reductions)
}
