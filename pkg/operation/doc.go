/*
Package operation runs the rewrite pipeline over the targets of a directory.

	+-------------+
	|  Enumerate  |
	|  (targets)  |
	+------+------+
	       |
	+------+------+
	|   Process   |
	| (Transform) |
	+------+------+
	       |
	+------+------+
	|   Status    |
	|  (Results)  |
	+-------------+

🎯 Purpose:
- Resolves which rule sets run and in what order
- Lists the targets under the root, in lexical order
- Reads each target once, applies the pipeline and writes at most once

🔄 Flow:
1. ResolvePipeline checks requires and applies --only selection
2. Enumerate matches file names against the configured glob
3. Process reads, transforms and atomically writes each target
4. Results are reduced into a status.Summary in enumeration order

⚡ Outcomes:
- no rule applied: Skipped("no match"), nothing written
- rules applied but content identical: Skipped("unchanged"), nothing written
- content changed: Updated, or Updated with a diff on dry run
- read, decode, render or write error: Failed, the run continues
- missing targets root: ErrDirectoryNotFound, the run aborts

🔍 Example:

	runner, err := operation.NewRunner(operation.Options{
		Config:   config.Default(),
		Reporter: logger,
	})
	if err != nil {
		return err
	}

	summary, err := runner.Run(ctx)
*/
package operation
