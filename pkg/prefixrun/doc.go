// Package prefixrun runs the files in a directory that carry an integer
// prefix, in the order of those prefixes.
//
// A directory like
//
//	1-transfer_data.sh
//	2-build_tables.hql
//	3-pull_ingest.py
//	4-model.py
//	5-visualize_present.R
//	myproject.py
//	random.txt
//
// yields a five-step pipeline: the prefixed files are sorted ascending by
// their integer prefix and executed one at a time, each with an interpreter
// chosen by file extension (.sh via bash, .py via python, and so on). Files
// without a prefix are ignored. The first failing step stops the pipeline.
//
// Discovery and execution are exposed separately ([Discover], [Runner]) so
// callers can inspect the schedule without running it. A [Runner] is built
// with functional options and executes the whole pipeline with one call:
//
//	r := prefixrun.New(
//		prefixrun.WithDirectory("etl"),
//		prefixrun.WithExtensions(prefixrun.Map{".xyz": {"mytool", "-f"}}),
//	)
//	report, err := r.Run(ctx)
//
// The returned [Report] records timing and outcome for every scheduled step,
// also when the run fails partway.
package prefixrun
