// Command depcheck runs data-quality checks over dependency corpora.
//
//	depcheck check  [-v] FILE...                     report ill-formed or non-projective trees
//	depcheck bucket [-k N] [-seed S] [-batch B] FILE...  show length buckets and mini-batch counts
//
// Defaults for -k, -seed and -batch come from DEPCHECK_BUCKETS, DEPCHECK_SEED
// and DEPCHECK_BATCH, which may be set in a .env file in the working directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/depdecode/bucket"
	"github.com/katalvlaran/depdecode/conllu"
	"github.com/katalvlaran/depdecode/deptree"
)

const (
	envBuckets = "DEPCHECK_BUCKETS"
	envSeed    = "DEPCHECK_SEED"
	envBatch   = "DEPCHECK_BATCH"

	defaultBuckets = 32
	defaultBatch   = 64

	exitOK      = 0
	exitInvalid = 1 // corpus has ill-formed trees
	exitUsage   = 2
)

func main() {
	_ = godotenv.Load(".env")
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: depcheck check [-v] FILE...")
	fmt.Fprintln(w, "       depcheck bucket [-k N] [-seed S] [-batch B] FILE...")
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		usage(os.Stderr)
		return exitUsage
	}
	switch args[0] {
	case "check":
		return runCheck(args[1:], stdout)
	case "bucket":
		return runBucket(args[1:], stdout)
	default:
		log.Printf("[DEPCHECK] unknown command %q", args[0])
		usage(os.Stderr)
		return exitUsage
	}
}

// envInt reads an integer environment variable, falling back to def when it
// is unset or unparsable.
func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[DEPCHECK] WARNING: %s=%q is not an integer, using %d", key, v, def)
		return def
	}

	return n
}

// readCorpus concatenates the sentences of every file.
func readCorpus(paths []string) ([]conllu.Sentence, error) {
	var all []conllu.Sentence
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		sents, err := conllu.Read(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, sents...)
	}

	return all, nil
}

func runCheck(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "print the token/head table of every bad sentence")
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		usage(os.Stderr)
		return exitUsage
	}
	sents, err := readCorpus(fs.Args())
	if err != nil {
		log.Printf("[CHECK] ERROR: %v", err)
		return exitUsage
	}

	var tokens, punct, bad int
	for i, s := range sents {
		tokens += s.Len()
		for _, tok := range s.Tokens[1:] {
			if conllu.IsPunct(tok) {
				punct++
			}
		}
		ok, err := deptree.IsProjectiveTree(s.Heads)
		switch {
		case err != nil:
			fmt.Fprintf(stdout, "sentence %d: %v\n", i+1, err)
		case !ok:
			fmt.Fprintf(stdout, "sentence %d: not a single-rooted projective tree\n", i+1)
		default:
			continue
		}
		bad++
		if *verbose {
			printSentence(stdout, s)
		}
	}
	fmt.Fprintf(stdout, "%d sentences, %d tokens (%d punctuation), %d ill-formed\n", len(sents), tokens, punct, bad)
	if bad > 0 {
		return exitInvalid
	}

	return exitOK
}

// printSentence writes an aligned id/token/head table. Token widths are
// measured in terminal cells so wide (CJK) forms line up.
func printSentence(w io.Writer, s conllu.Sentence) {
	width := 0
	for _, tok := range s.Tokens[1:] {
		width = max(width, runewidth.StringWidth(tok))
	}
	for i := 1; i < len(s.Tokens); i++ {
		fmt.Fprintf(w, "  %3d  %s  %d\n", i, runewidth.FillRight(s.Tokens[i], width), s.Heads[i])
	}
}

func runBucket(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("bucket", flag.ContinueOnError)
	k := fs.Int("k", envInt(envBuckets, defaultBuckets), "number of length buckets")
	seed := fs.Int64("seed", int64(envInt(envSeed, 0)), "random seed (0: time-seeded)")
	size := fs.Int("batch", envInt(envBatch, defaultBatch), "sentences per mini-batch")
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		usage(os.Stderr)
		return exitUsage
	}
	sents, err := readCorpus(fs.Args())
	if err != nil {
		log.Printf("[BUCKET] ERROR: %v", err)
		return exitUsage
	}
	if len(sents) == 0 {
		log.Printf("[BUCKET] ERROR: no sentences in %v", fs.Args())
		return exitUsage
	}

	var opts []bucket.Option
	if *seed != 0 {
		opts = append(opts, bucket.WithSeed(*seed))
	}
	res, err := bucket.Cluster(conllu.Lengths(sents), *k, opts...)
	if err != nil {
		log.Printf("[BUCKET] ERROR: %v", err)
		return exitUsage
	}
	batches, err := res.Batches(*size)
	if err != nil {
		log.Printf("[BUCKET] ERROR: %v", err)
		return exitUsage
	}

	for c, members := range res.Clusters {
		fmt.Fprintf(stdout, "bucket %d: centroid %.2f, %d sentences\n", c, res.Centroids[c], len(members))
	}
	fmt.Fprintf(stdout, "%d sentences, %d buckets, %d batches of at most %d\n", len(sents), len(res.Clusters), len(batches), *size)

	return exitOK
}
